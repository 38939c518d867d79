// Package news provides the public news search use case, a pass-through to
// an external news provider.
package news

import (
	"errors"

	"news-explorer/internal/domain/entity"
)

// Declared failures. Callers compare with errors.Is; wrapped copies match.
var (
	// ErrQueryRequired is returned when the search term is empty.
	ErrQueryRequired = entity.BadRequest("Search query is required")

	// ErrFetchFailed is returned for any provider failure. The cause is kept
	// for logging only.
	ErrFetchFailed = entity.Upstream("Failed to fetch news data")
)

// Provider failures reported by Provider implementations.
var (
	// ErrNotConfigured indicates the provider has no API key.
	ErrNotConfigured = errors.New("news provider not configured")

	// ErrUnavailable indicates the provider is failing and calls are being
	// short-circuited.
	ErrUnavailable = errors.New("news provider unavailable")
)
