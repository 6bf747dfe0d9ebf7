package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Bookings stores completed booking records. Bookings are insert-only.
type Bookings struct {
	col *mongo.Collection
}

func NewBookings(col *mongo.Collection) *Bookings {
	return &Bookings{col: col}
}

// ListByGuest returns the bookings made by the given guest email.
func (r *Bookings) ListByGuest(ctx context.Context, email string) ([]bson.M, error) {
	return r.list(ctx, bson.M{"guest.email": email})
}

// ListByHost returns the bookings received by the given host email.
func (r *Bookings) ListByHost(ctx context.Context, email string) ([]bson.M, error) {
	return r.list(ctx, bson.M{"host": email})
}

func (r *Bookings) list(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []bson.M{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

// Insert stores a new booking and returns the generated id.
func (r *Bookings) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert booking: %w", err)
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Delete removes one booking by id. A zero deleted count is not an error.
func (r *Bookings) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}
	return result, nil
}
