package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore is the persistence surface the user routes need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (bson.M, error)
	Upsert(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error)
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// GetUser fetches one user by email. An unknown email is a 200 with a null
// body, not an error.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.store.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err, "failed to fetch user")
	}
	return c.JSON(user)
}

// UpsertUser merges the posted fields into the user keyed by the path email.
func (h *UserHandler) UpsertUser(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := validate.Var(email, "required,email"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}

	var fields bson.M
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	delete(fields, "_id")

	result, err := h.store.Upsert(c.Context(), email, fields)
	if err != nil {
		return storeError(c, err, "failed to save user")
	}
	return c.JSON(newUpdateResponse(result))
}
