package services

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID     = errors.New("invalid ID")
	ErrInvalidAmount = errors.New("amount must be positive")
)

func parseID(kind, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s %q: %w", kind, hex, ErrInvalidID)
	}
	return id, nil
}
