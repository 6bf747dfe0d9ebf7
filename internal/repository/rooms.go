package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Rooms stores rental listings.
type Rooms struct {
	col *mongo.Collection
}

func NewRooms(col *mongo.Collection) *Rooms {
	return &Rooms{col: col}
}

// ListAll returns every listing.
func (r *Rooms) ListAll(ctx context.Context) ([]bson.M, error) {
	return r.list(ctx, bson.M{})
}

// ListByHost returns the listings published by the given host email.
func (r *Rooms) ListByHost(ctx context.Context, email string) ([]bson.M, error) {
	return r.list(ctx, bson.M{"host.email": email})
}

func (r *Rooms) list(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []bson.M{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	return rooms, nil
}

// FindByID returns one listing, or nil when no listing matches.
func (r *Rooms) FindByID(ctx context.Context, id string) (bson.M, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var room bson.M
	err = r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	return room, nil
}

// Insert stores a new listing and returns the generated id.
func (r *Rooms) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert room: %w", err)
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// SetBooked flips the booked status flag of one listing.
func (r *Rooms) SetBooked(ctx context.Context, id string, booked bool) (*mongo.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"booked": booked}},
	)
	if err != nil {
		return nil, fmt.Errorf("update room status: %w", err)
	}
	return result, nil
}

// Replace merges the given fields into the listing keyed by id, creating the
// document if it does not exist.
func (r *Rooms) Replace(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	return result, nil
}

// Delete removes one listing by id. A zero deleted count is not an error.
func (r *Rooms) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("delete room: %w", err)
	}
	return result, nil
}
