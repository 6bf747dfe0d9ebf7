package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aircnc/aircnc-server/internal/middleware"
	"github.com/aircnc/aircnc-server/internal/models"
)

// RoomStore is the persistence surface the room routes need.
type RoomStore interface {
	ListAll(ctx context.Context) ([]bson.M, error)
	ListByHost(ctx context.Context, email string) ([]bson.M, error)
	FindByID(ctx context.Context, id string) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	SetBooked(ctx context.Context, id string, booked bool) (*mongo.UpdateResult, error)
	Replace(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type RoomHandler struct {
	store RoomStore
}

func NewRoomHandler(store RoomStore) *RoomHandler {
	return &RoomHandler{store: store}
}

// ListRooms returns every listing.
func (h *RoomHandler) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.store.ListAll(c.Context())
	if err != nil {
		return storeError(c, err, "failed to fetch rooms")
	}
	return c.JSON(rooms)
}

// ListHostRooms returns the listings of one host. The path email must match
// the email claim of the verified token.
func (h *RoomHandler) ListHostRooms(c *fiber.Ctx) error {
	email := c.Params("email")
	decoded, _ := c.Locals(middleware.LocalsEmail).(string)
	if email != decoded {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	rooms, err := h.store.ListByHost(c.Context(), email)
	if err != nil {
		return storeError(c, err, "failed to fetch rooms")
	}
	return c.JSON(rooms)
}

// GetRoom fetches one listing by id.
func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	room, err := h.store.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err, "failed to fetch room")
	}
	return c.JSON(room)
}

// CreateRoom validates and stores a new listing.
func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var room models.Room
	var doc bson.M
	if err := decodeBody(c, &room, &doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(room); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := h.store.Insert(c.Context(), doc)
	if err != nil {
		return storeError(c, err, "failed to save room")
	}
	return c.JSON(insertResponse{InsertedID: id.Hex()})
}

// UpdateStatus sets the booked flag of one listing.
func (h *RoomHandler) UpdateStatus(c *fiber.Ctx) error {
	var body struct {
		Status *bool `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status is required"})
	}

	result, err := h.store.SetBooked(c.Context(), c.Params("id"), *body.Status)
	if err != nil {
		return storeError(c, err, "failed to update room status")
	}
	return c.JSON(newUpdateResponse(result))
}

// UpdateRoom merges the posted listing fields into the room keyed by id.
func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	var room models.Room
	var doc bson.M
	if err := decodeBody(c, &room, &doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(room); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.store.Replace(c.Context(), c.Params("id"), doc)
	if err != nil {
		return storeError(c, err, "failed to update room")
	}
	return c.JSON(newUpdateResponse(result))
}

// DeleteRoom removes one listing by id. Deleting an id with no matching
// document reports a zero count, not an error. Ownership is not checked;
// existing clients delete without a token, so adding a check would break
// them (known gap).
func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	result, err := h.store.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err, "failed to delete room")
	}
	return c.JSON(deleteResponse{DeletedCount: result.DeletedCount})
}
