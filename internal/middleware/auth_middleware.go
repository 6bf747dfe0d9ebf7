package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aircnc/aircnc-server/internal/token"
)

// Locals keys set by RequireAuth for downstream handlers.
const (
	LocalsClaims = "claims"
	LocalsEmail  = "email"
)

// RequireAuth validates the Bearer token and stores the decoded claims in
// the request context. Any verification failure rejects the request before
// the handler body runs.
func RequireAuth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized access"})
		}

		raw := strings.TrimPrefix(authorization, "Bearer ")
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized access"})
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized access"})
		}

		c.Locals(LocalsClaims, claims)
		if email, ok := claims["email"].(string); ok {
			c.Locals(LocalsEmail, email)
		}

		return c.Next()
	}
}
