package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateKey indicates that a store-level uniqueness constraint rejected a write.
	// Stores wrap the driver error with it so callers never inspect driver codes.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrValidationFailed indicates that the store refused a document as malformed
	ErrValidationFailed = errors.New("validation failed")
)

// Kind classifies a domain error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
	KindUpstream
)

// String returns a readable name of the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Error is a domain failure carrying a caller-safe message.
// Err holds the underlying cause, which is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the message, including the cause when present.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind and message, so a wrapped
// copy still satisfies errors.Is against the declared value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// BadRequest reports malformed or missing input.
func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Message: msg} }

// Unauthorized reports a missing or rejected credential.
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// NotFound reports an absent resource, or one the caller does not own.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// Conflict reports a uniqueness violation.
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// Upstream reports a failed call to an external provider. Its message is
// shown to the caller, unlike an internal error.
func Upstream(msg string) *Error { return &Error{Kind: KindUpstream, Message: msg} }

// Wrap attaches a cause to a domain error and returns it.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: err}
}

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
