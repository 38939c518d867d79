package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

/* ───────── stubs ───────── */

type stubPinger struct {
	err   error
	delay time.Duration
	calls int
}

func (s *stubPinger) Ping(ctx context.Context, _ *readpref.ReadPref) error {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.err
}

type stubNews struct {
	configured bool
	state      string
}

func (s stubNews) Configured() bool     { return s.configured }
func (s stubNews) BreakerState() string { return s.state }

/* ───────── tests ───────── */

func serveHealth(t *testing.T, h *HealthHandler) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealthHandler_Healthy(t *testing.T) {
	pinger := &stubPinger{}
	rec, body := serveHealth(t, &HealthHandler{
		DB:      pinger,
		News:    stubNews{configured: true, state: "closed"},
		Version: "1.2.3",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, StatusHealthy, body.Status)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Equal(t, StatusHealthy, body.Checks["database"].Status)
	assert.Equal(t, StatusHealthy, body.Checks["news_api"].Status)
	assert.Equal(t, 1, pinger.calls)
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	rec, body := serveHealth(t, &HealthHandler{
		DB: &stubPinger{err: errors.New("server selection error: mongodb://u:p@db")},
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, StatusUnhealthy, body.Status)
	assert.Equal(t, "ping failed", body.Checks["database"].Message)
	assert.NotContains(t, rec.Body.String(), "u:p")
}

func TestHealthHandler_DatabaseDownOutranksDegradedNews(t *testing.T) {
	rec, body := serveHealth(t, &HealthHandler{
		DB:   &stubPinger{err: errors.New("no reachable servers")},
		News: stubNews{configured: false, state: "closed"},
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, StatusUnhealthy, body.Status)
}

func TestHealthHandler_NoDatabaseConfigured(t *testing.T) {
	rec, body := serveHealth(t, &HealthHandler{})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not configured", body.Checks["database"].Message)
}

func TestHealthHandler_PingTimeout(t *testing.T) {
	rec, _ := serveHealth(t, &HealthHandler{
		DB:      &stubPinger{delay: time.Second},
		Timeout: 20 * time.Millisecond,
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthHandler_NewsDegradedReportsDegradedWithOK(t *testing.T) {
	tests := []struct {
		name string
		news stubNews
	}{
		{name: "missing key", news: stubNews{configured: false, state: "closed"}},
		{name: "breaker open", news: stubNews{configured: true, state: "open"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serveHealth(t, &HealthHandler{DB: &stubPinger{}, News: tt.news})

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, StatusDegraded, body.Status)
			assert.Equal(t, StatusDegraded, body.Checks["news_api"].Status)
		})
	}
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
