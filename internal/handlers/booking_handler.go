package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aircnc/aircnc-server/internal/models"
)

// BookingStore is the persistence surface the booking routes need.
type BookingStore interface {
	ListByGuest(ctx context.Context, email string) ([]bson.M, error)
	ListByHost(ctx context.Context, email string) ([]bson.M, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// Mailer dispatches transactional email. Implementations never report
// failure to the caller.
type Mailer interface {
	Enqueue(subject, html, to string)
}

type BookingHandler struct {
	store BookingStore
	mail  Mailer
}

func NewBookingHandler(store BookingStore, mail Mailer) *BookingHandler {
	return &BookingHandler{store: store, mail: mail}
}

// ListGuestBookings returns the bookings of the guest email in the query
// string. A missing email yields an empty list.
func (h *BookingHandler) ListGuestBookings(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]bson.M{})
	}

	bookings, err := h.store.ListByGuest(c.Context(), email)
	if err != nil {
		return storeError(c, err, "failed to fetch bookings")
	}
	return c.JSON(bookings)
}

// ListHostBookings returns the bookings received by the host email in the
// query string. A missing email yields an empty list.
func (h *BookingHandler) ListHostBookings(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]bson.M{})
	}

	bookings, err := h.store.ListByHost(c.Context(), email)
	if err != nil {
		return storeError(c, err, "failed to fetch bookings")
	}
	return c.JSON(bookings)
}

// CreateBooking stores a booking and queues confirmation email for guest and
// host. Email is fire-and-forget: the booking succeeds whether or not the
// messages ever leave the building.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	var doc bson.M
	if err := decodeBody(c, &booking, &doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := h.store.Insert(c.Context(), doc)
	if err != nil {
		return storeError(c, err, "failed to save booking")
	}

	h.mail.Enqueue(
		"Booking Successful!",
		fmt.Sprintf("<p>Booking Id: %s, TransactionId: %s</p>", id.Hex(), booking.TransactionID),
		booking.Guest.Email,
	)
	h.mail.Enqueue(
		"Your room got booked!",
		fmt.Sprintf("<p>Booking Id: %s, TransactionId: %s. Check dashboard for more info</p>", id.Hex(), booking.TransactionID),
		booking.Host,
	)

	return c.JSON(insertResponse{InsertedID: id.Hex()})
}

// DeleteBooking removes one booking by id.
func (h *BookingHandler) DeleteBooking(c *fiber.Ctx) error {
	result, err := h.store.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err, "failed to delete booking")
	}
	return c.JSON(deleteResponse{DeletedCount: result.DeletedCount})
}
