package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a profile record keyed by email. The email itself is verified by
// the external auth provider before it ever reaches this service.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email" validate:"required,email"`
	Role  string             `bson:"role" json:"role"`
}
