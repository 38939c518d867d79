package news_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-explorer/internal/handler/http/news"
	newsUC "news-explorer/internal/usecase/news"
)

/* ───────── stubs ───────── */

type stubProvider struct {
	body  json.RawMessage
	err   error
	calls int
	last  newsUC.Query
}

func (s *stubProvider) Search(_ context.Context, q newsUC.Query) (json.RawMessage, error) {
	s.calls++
	s.last = q
	return s.body, s.err
}

func newMux(p *stubProvider) *http.ServeMux {
	mux := http.NewServeMux()
	news.Register(mux, "/api", &newsUC.Service{Provider: p})
	return mux
}

func get(mux http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

/* ───────── tests ───────── */

func TestSearch_PassesProviderBodyThrough(t *testing.T) {
	raw := `{"status":"ok","totalResults":1,"articles":[{"title":"Gophers"}]}`
	p := &stubProvider{body: json.RawMessage(raw)}

	rr := get(newMux(p), "/api/news/search?q=golang&from=2025-01-01&to=2025-01-07&sortBy=popularity")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, raw, rr.Body.String())
	assert.Equal(t, newsUC.Query{Q: "golang", From: "2025-01-01", To: "2025-01-07", SortBy: "popularity"}, p.last)
}

func TestSearch_DefaultSortAndAlias(t *testing.T) {
	p := &stubProvider{body: json.RawMessage(`{}`)}

	rr := get(newMux(p), "/api/news?q=go")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, newsUC.DefaultSortBy, p.last.SortBy)
}

func TestSearch_MissingQuery(t *testing.T) {
	p := &stubProvider{}

	for _, target := range []string{"/api/news/search", "/api/news/search?q=", "/api/news/search?q=%20%20"} {
		rr := get(newMux(p), target)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
		assert.JSONEq(t, `{"message":"Search query is required"}`, rr.Body.String(), target)
	}
	assert.Zero(t, p.calls)
}

func TestSearch_ProviderFailure(t *testing.T) {
	for _, err := range []error{
		errors.New("dial tcp: i/o timeout"),
		newsUC.ErrNotConfigured,
		newsUC.ErrUnavailable,
	} {
		rr := get(newMux(&stubProvider{err: err}), "/api/news/search?q=go")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"Failed to fetch news data"}`, rr.Body.String())
	}
}
