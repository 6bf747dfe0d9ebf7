package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Host identifies the user who published a listing.
type Host struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email" validate:"required,email"`
}

// Room is a rental listing. Listings carry arbitrary extra fields supplied
// by the client; these are the ones the server itself reads or validates.
type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty" validate:"gte=0"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	TotalGuest  int                `bson:"total_guest,omitempty" json:"total_guest,omitempty"`
	Bedrooms    int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Booked      bool               `bson:"booked" json:"booked"`
	Host        Host               `bson:"host" json:"host" validate:"required"`
}
