package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aircnc/aircnc-server/internal/token"
)

// AuthHandler issues bearer tokens for identity payloads the frontend
// obtained from its auth provider.
type AuthHandler struct {
	tokens *token.Service
}

func NewAuthHandler(tokens *token.Service) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs the posted identity payload into a 1-hour token.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var identity map[string]any
	if err := c.BodyParser(&identity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	signed, err := h.tokens.Issue(identity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"token": signed})
}
