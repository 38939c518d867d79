// Package auth resolves the bearer token of a request into an explicit
// Principal that protected handlers receive as a parameter.
package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"news-explorer/internal/domain/entity"
	"news-explorer/internal/handler/http/respond"
	"news-explorer/internal/observability/logging"
)

// ErrAuthorizationRequired is the single answer to every rejected token.
var ErrAuthorizationRequired = entity.Unauthorized("Authorization required")

const bearerPrefix = "Bearer "

// Principal is the authenticated caller.
type Principal struct {
	UserID string
}

// PrincipalHandler is a handler that only runs for authenticated callers.
type PrincipalHandler func(w http.ResponseWriter, r *http.Request, p Principal)

// TokenVerifier checks a token and returns its subject user ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authz verifies the bearer token and calls next with the resolved Principal.
// Missing, malformed, expired and wrongly signed tokens are all answered with
// the same 401; the actual reason is logged at debug level.
func Authz(tokens TokenVerifier, next PrincipalHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		userID, reason, err := authenticate(tokens, r.Header.Get("Authorization"))
		authzCheckDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			RecordAuthzFailure(reason)
			logging.WithRequestID(r.Context(), logging.FromContext(r.Context())).
				Debug("authorization rejected",
					slog.String("reason", reason),
					slog.String("path", r.URL.Path),
					slog.Any("error", err))
			respond.Failure(w, r, ErrAuthorizationRequired.Wrap(err))
			return
		}

		next(w, r, Principal{UserID: userID})
	})
}

// authenticate returns the subject, or a short reason label and the cause.
func authenticate(tokens TokenVerifier, header string) (string, string, error) {
	if header == "" {
		return "", ReasonMissing, errMissingHeader
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", ReasonMalformed, errNotBearer
	}

	userID, err := tokens.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
	if err != nil {
		return "", ReasonInvalid, err
	}
	return userID, "", nil
}
