package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guest identifies the user a booking was made for.
type Guest struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email" validate:"required,email"`
}

// Booking records a completed payment flow for a room. Bookings are written
// once and never mutated; the host field holds the host's email only.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Guest         Guest              `bson:"guest" json:"guest" validate:"required"`
	Host          string             `bson:"host" json:"host" validate:"required,email"`
	RoomID        string             `bson:"roomId,omitempty" json:"roomId,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId" validate:"required"`
}
