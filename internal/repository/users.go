package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Users stores profile records keyed by email.
type Users struct {
	col *mongo.Collection
}

func NewUsers(col *mongo.Collection) *Users {
	return &Users{col: col}
}

// FindByEmail returns the user document, or nil when no user matches.
func (r *Users) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	var user bson.M
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Upsert merges the given fields into the user keyed by email, creating the
// document if it does not exist yet.
func (r *Users) Upsert(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return result, nil
}
