// Package respond writes JSON responses and renders every failure through a
// single normalizer so that the body shape is always {"message": "..."}.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"news-explorer/internal/domain/entity"
	"news-explorer/internal/observability/logging"
)

// Messages shared by the normalizer and the router.
const (
	MsgInternal         = "An internal server error occurred"
	MsgResourceExists   = "Resource already exists"
	MsgRouteNotFound    = "Requested resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// MessageBody is the body of every non-resource response.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Raw writes an already encoded JSON document unchanged.
func Raw(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Default().Error("failed to write response body",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Message writes {"message": msg} with the given status code.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, MessageBody{Message: msg})
}

// Classify maps err to the status code and caller-safe message it renders as.
func Classify(err error) (int, string) {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Message
	}

	var derr *entity.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case entity.KindBadRequest:
			return http.StatusBadRequest, derr.Message
		case entity.KindUnauthorized:
			return http.StatusUnauthorized, derr.Message
		case entity.KindNotFound:
			return http.StatusNotFound, derr.Message
		case entity.KindConflict:
			return http.StatusConflict, derr.Message
		case entity.KindUpstream:
			return http.StatusInternalServerError, derr.Message
		default:
			return http.StatusInternalServerError, MsgInternal
		}
	}

	if errors.Is(err, entity.ErrDuplicateKey) {
		return http.StatusConflict, MsgResourceExists
	}

	return http.StatusInternalServerError, MsgInternal
}

// Failure renders err. Server-side failures are logged with the request id
// and a sanitized cause; the cause is never sent to the client.
func Failure(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	code, msg := Classify(err)
	logger := logging.WithRequestID(r.Context(), logging.FromContext(r.Context()))
	if code >= http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status_code", code),
			slog.String("error", SanitizeError(err)))
	} else {
		logger.Debug("request rejected",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status_code", code),
			slog.String("error", SanitizeError(err)))
	}

	Message(w, code, msg)
}

// NotFound answers unknown routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	Message(w, http.StatusNotFound, MsgRouteNotFound)
}

// MethodNotAllowed answers a known route called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	Message(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
