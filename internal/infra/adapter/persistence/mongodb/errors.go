// Package mongodb implements the repository interfaces on MongoDB.
package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"news-explorer/internal/domain/entity"
)

// documentValidationFailure is the server code for a $jsonSchema rejection.
const documentValidationFailure = 121

// classify rewrites driver errors into domain sentinels so callers never
// inspect driver codes. op prefixes the message.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrDuplicateKey, err)
	}
	var se mongo.ServerError
	if errors.As(err, &se) && se.HasErrorCode(documentValidationFailure) {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrValidationFailed, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
