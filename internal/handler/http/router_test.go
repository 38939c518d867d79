package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	artUC "news-explorer/internal/usecase/article"
	newsUC "news-explorer/internal/usecase/news"
	userUC "news-explorer/internal/usecase/user"
	"news-explorer/internal/validation"
)

type rejectAll struct{}

func (rejectAll) Verify(string) (string, error) { return "", errors.New("rejected") }

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		Prefix:    "/api",
		Users:     &userUC.Service{},
		Articles:  &artUC.Service{},
		News:      &newsUC.Service{},
		Tokens:    rejectAll{},
		Validator: validation.New(),
	})
}

func TestRouter(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		target string
		status int
		body   string
		allow  string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/nope", status: http.StatusNotFound, body: `{"message":"Requested resource not found"}`},
		{name: "unknown under prefix", method: http.MethodGet, target: "/api/unknown", status: http.StatusNotFound, body: `{"message":"Requested resource not found"}`},
		{name: "wrong method", method: http.MethodPut, target: "/api/articles", status: http.StatusMethodNotAllowed, body: `{"message":"Method not allowed"}`, allow: "GET, POST"},
		{name: "protected route", method: http.MethodGet, target: "/api/articles", status: http.StatusUnauthorized, body: `{"message":"Authorization required"}`},
		{name: "protected delete", method: http.MethodDelete, target: "/api/articles/123", status: http.StatusUnauthorized, body: `{"message":"Authorization required"}`},
		{name: "public news", method: http.MethodGet, target: "/api/news/search", status: http.StatusBadRequest, body: `{"message":"Search query is required"}`},
		{name: "liveness", method: http.MethodGet, target: "/live", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rr.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rr.Body.String())
			}
			assert.Equal(t, tt.allow, rr.Header().Get("Allow"))
		})
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "# HELP")
}
