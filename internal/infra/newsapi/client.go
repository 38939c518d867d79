// Package newsapi is the HTTP client for the external news search provider.
package newsapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"news-explorer/internal/observability/metrics"
	"news-explorer/internal/resilience/circuitbreaker"
	"news-explorer/internal/resilience/retry"
	"news-explorer/internal/usecase/news"
)

// Client implements news.Provider.
//
// Identical concurrent searches share one upstream call, successful bodies
// are cached for CacheTTL, and repeated upstream failures open a circuit
// breaker so that callers fail fast.
//
// Thread safety: Client is safe for concurrent use.
type Client struct {
	cfg            Config
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	cache          *expirable.LRU[string, json.RawMessage]
	group          singleflight.Group
}

// providerError is the error body the provider sends with non-2xx statuses.
type providerError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// New creates a news provider client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}

	c := &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
		circuitBreaker: circuitbreaker.New(circuitbreaker.NewsAPIConfig(countsAsSuccess)),
		retryConfig:    retry.NewsAPIConfig(),
	}
	if cfg.CacheTTL > 0 {
		c.cache = expirable.NewLRU[string, json.RawMessage](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return c
}

// countsAsSuccess keeps caller-side failures (bad query, bad key, cancelled
// request) from tripping the breaker.
func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var httpErr *retry.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 &&
			httpErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// BreakerState returns the upstream circuit breaker state: closed, half-open or open.
func (c *Client) BreakerState() string {
	return c.circuitBreaker.State().String()
}

// Search implements news.Provider.
func (c *Client) Search(ctx context.Context, q news.Query) (json.RawMessage, error) {
	if c.cfg.APIKey == "" {
		return nil, news.ErrNotConfigured
	}

	endpoint, err := c.buildURL(q)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if body, ok := c.cache.Get(endpoint); ok {
			metrics.RecordNewsCacheHit()
			return body, nil
		}
	}

	// The shared call outlives any single caller; it is bounded by Timeout.
	ch := c.group.DoChan(endpoint, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
		defer cancel()
		return c.fetch(callCtx, endpoint)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(json.RawMessage), nil
	}
}

func (c *Client) fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	start := time.Now()
	defer func() { metrics.RecordNewsUpstream(time.Since(start)) }()

	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		var body json.RawMessage
		err := retry.WithBackoff(ctx, c.retryConfig, func() error {
			var err error
			body, err = c.doFetch(ctx, endpoint)
			return err
		})
		return body, err
	})
	if err != nil {
		if circuitbreaker.IsRejected(err) {
			return nil, fmt.Errorf("%w: %v", news.ErrUnavailable, err)
		}
		slog.Warn("news provider request failed", slog.Any("error", err))
		return nil, err
	}

	body := result.(json.RawMessage)
	if c.cache != nil {
		c.cache.Add(endpoint, body)
	}
	return body, nil
}

func (c *Client) doFetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsExplorer/1.0")
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request news provider: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > c.cfg.MaxBodyBytes {
		return nil, fmt.Errorf("response exceeds %d bytes", c.cfg.MaxBodyBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		var pe providerError
		if json.Unmarshal(body, &pe) == nil && pe.Code != "" {
			msg = pe.Code
		}
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: msg}
	}

	if !json.Valid(body) {
		return nil, errors.New("news provider returned invalid JSON")
	}
	return json.RawMessage(body), nil
}

// buildURL encodes q onto the base URL. Empty optional parameters are omitted.
func (c *Client) buildURL(q news.Query) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	params := u.Query()
	params.Set("q", q.Q)
	if q.From != "" {
		params.Set("from", q.From)
	}
	if q.To != "" {
		params.Set("to", q.To)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}
