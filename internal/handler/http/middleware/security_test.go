package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name     string
		hsts     bool
		wantHSTS string
	}{
		{name: "development", hsts: false, wantHSTS: ""},
		{name: "production", hsts: true, wantHSTS: "max-age=15552000; includeSubDomains"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := SecurityHeaders(tt.hsts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user/me", nil))

			assert.Equal(t, APIContentSecurityPolicy, rr.Header().Get("Content-Security-Policy"))
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
			assert.Equal(t, "no-referrer", rr.Header().Get("Referrer-Policy"))
			assert.Equal(t, "same-origin", rr.Header().Get("Cross-Origin-Opener-Policy"))
			assert.Equal(t, tt.wantHSTS, rr.Header().Get("Strict-Transport-Security"))
		})
	}
}
