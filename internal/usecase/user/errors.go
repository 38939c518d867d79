// Package user provides the account use cases: registration, signin and
// lookup of the signed-in user.
package user

import "news-explorer/internal/domain/entity"

// Declared failures. Callers compare with errors.Is; wrapped copies match.
var (
	// ErrEmailTaken is returned when the email already belongs to an account,
	// whether detected up front or by the store's unique index.
	ErrEmailTaken = entity.Conflict("Email already exists")

	// ErrCredentialsRequired is returned when signin omits email or password.
	ErrCredentialsRequired = entity.BadRequest("Email and password are required")

	// ErrInvalidCredentials covers an unknown email and a wrong password alike.
	ErrInvalidCredentials = entity.Unauthorized("Incorrect email or password")

	// ErrUserNotFound is returned when the token subject has no account.
	ErrUserNotFound = entity.NotFound("User not found")
)
