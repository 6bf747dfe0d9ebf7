package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aircnc/aircnc-server/internal/payment"
)

// IntentCreator creates payment intents with the external provider.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type PaymentHandler struct {
	payments IntentCreator
}

func NewPaymentHandler(payments IntentCreator) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent creates a payment intent for the posted price and returns the
// client secret. A missing or non-positive price is rejected without ever
// reaching the provider.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must be a positive number"})
	}

	secret, err := h.payments.CreateIntent(c.Context(), body.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must be a positive number"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "payment provider error"})
	}

	return c.JSON(fiber.Map{"clientSecret": secret})
}
