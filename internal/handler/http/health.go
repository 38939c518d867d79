// Package http holds the transport-level pieces shared by every route:
// middleware, health and metrics endpoints, and the router.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"news-explorer/internal/handler/http/respond"
)

// Health status values.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDegraded  = "degraded"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// DatabasePinger is satisfied by *mongo.Client.
type DatabasePinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// NewsProviderStatus reports the state of the news provider client.
type NewsProviderStatus interface {
	Configured() bool
	BreakerState() string
}

// HealthHandler reports database reachability and the news provider state.
// Only the database decides the HTTP status; a degraded news provider is
// reported but keeps the endpoint at 200.
type HealthHandler struct {
	DB      DatabasePinger
	News    NewsProviderStatus
	Version string
	Timeout time.Duration
}

// ServeHTTP returns 200 when the database answers a ping, 503 otherwise.
// A degraded news provider marks the report degraded without changing the code.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	checks := map[string]CheckStatus{"database": h.checkDatabase(ctx)}
	if h.News != nil {
		checks["news_api"] = h.checkNews()
	}

	status := StatusHealthy
	statusCode := http.StatusOK
	switch {
	case checks["database"].Status != StatusHealthy:
		status = StatusUnhealthy
		statusCode = http.StatusServiceUnavailable
	case checks["news_api"].Status == StatusDegraded:
		status = StatusDegraded
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: StatusUnhealthy, Message: "not configured"}
	}

	start := time.Now()
	if err := h.DB.Ping(ctx, readpref.Primary()); err != nil {
		slog.Default().Warn("health: database ping failed",
			slog.String("error", respond.SanitizeError(err)))
		return CheckStatus{Status: StatusUnhealthy, Message: "ping failed"}
	}
	return CheckStatus{
		Status:  StatusHealthy,
		Details: map[string]any{"latency_ms": time.Since(start).Milliseconds()},
	}
}

func (h *HealthHandler) checkNews() CheckStatus {
	if !h.News.Configured() {
		return CheckStatus{Status: StatusDegraded, Message: "api key not configured"}
	}
	state := h.News.BreakerState()
	if state != "closed" {
		return CheckStatus{Status: StatusDegraded, Details: map[string]any{"circuit_breaker": state}}
	}
	return CheckStatus{Status: StatusHealthy, Details: map[string]any{"circuit_breaker": state}}
}

// LiveHandler answers liveness probes without touching dependencies.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
