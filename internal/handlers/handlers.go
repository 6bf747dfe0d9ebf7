package handlers

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aircnc/aircnc-server/internal/repository"
)

var validate = validator.New()

// decodeBody unmarshals the JSON body twice: into the typed request schema
// used for validation, and into a bson.M document so client-supplied extra
// fields survive the round trip to storage.
func decodeBody(c *fiber.Ctx, schema any, doc *bson.M) error {
	body := c.Body()
	if err := json.Unmarshal(body, schema); err != nil {
		return err
	}
	if doc != nil {
		if err := json.Unmarshal(body, doc); err != nil {
			return err
		}
		// the persistence layer generates identifiers
		delete(*doc, "_id")
	}
	return nil
}

func storeError(c *fiber.Ctx, err error, message string) error {
	if errors.Is(err, repository.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid identifier"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// Responses mirror the driver's write results so clients can read the
// matched/modified/deleted counts directly.

type updateResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

func newUpdateResponse(r *mongo.UpdateResult) updateResponse {
	return updateResponse{
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}
