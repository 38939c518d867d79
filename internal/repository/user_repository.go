// Package repository declares the persistence contracts used by the use cases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"news-explorer/internal/domain/entity"
)

// UserRepository is the credential store.
//
// Email uniqueness is enforced by the store; Create returns an error wrapping
// entity.ErrDuplicateKey when it is violated.
type UserRepository interface {
	// Create inserts the user and sets its ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error
	// Get returns (nil, nil) when no user has the given ID.
	Get(ctx context.Context, id string) (*entity.User, error)
	// ExistsByEmail reports whether an account already uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// FindByCredentials looks the user up by email and compares password against
	// the stored hash in one operation. It returns ErrInvalidCredentials for an
	// unknown email and for a wrong password alike.
	FindByCredentials(ctx context.Context, email, password string) (*entity.User, error)
}
