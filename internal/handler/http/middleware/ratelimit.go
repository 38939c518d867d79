package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"news-explorer/internal/handler/http/respond"
	"news-explorer/internal/observability/metrics"
)

// MsgTooManyRequests is the body message of a rejected request.
const MsgTooManyRequests = "Too many requests, please try again later"

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained refill rate.
	RequestsPerSecond float64

	// Burst is the bucket size.
	Burst int

	// MaxClients bounds the number of tracked addresses. The least recently
	// seen client is forgotten first.
	MaxClients int
}

// DefaultRateLimitConfig allows 100 requests per 15 minutes on average with
// bursts of 100.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100.0 / (15 * 60),
		Burst:             100,
		MaxClients:        10000,
	}
}

// IPRateLimiter keeps one token bucket per client address.
type IPRateLimiter struct {
	cfg       RateLimitConfig
	extractor IPExtractor

	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
}

// NewIPRateLimiter creates a limiter. A nil extractor uses RemoteAddr.
func NewIPRateLimiter(cfg RateLimitConfig, extractor IPExtractor) (*IPRateLimiter, error) {
	if cfg.RequestsPerSecond <= 0 || cfg.Burst <= 0 {
		return nil, fmt.Errorf("rate limit must be positive: rps=%v burst=%d", cfg.RequestsPerSecond, cfg.Burst)
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = DefaultRateLimitConfig().MaxClients
	}
	if extractor == nil {
		extractor = &RemoteAddrExtractor{}
	}

	cache, err := lru.New[string, *rate.Limiter](cfg.MaxClients)
	if err != nil {
		return nil, fmt.Errorf("create limiter cache: %w", err)
	}
	return &IPRateLimiter{cfg: cfg, extractor: extractor, limiters: cache}, nil
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters.Get(ip); ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)
	l.limiters.Add(ip, lim)
	return lim
}

// Allow consumes one token for ip at now.
func (l *IPRateLimiter) Allow(ip string, now time.Time) bool {
	return l.limiter(ip).AllowN(now, 1)
}

// Tracked returns the number of client addresses currently held.
func (l *IPRateLimiter) Tracked() int {
	return l.limiters.Len()
}

// retryAfter is the whole number of seconds until one token is available.
func (l *IPRateLimiter) retryAfter() int {
	return int(math.Ceil(1 / l.cfg.RequestsPerSecond))
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := l.extractor.ExtractIP(r)
		if err != nil {
			// Unknown peers share one bucket rather than bypassing the limit.
			slog.Warn("rate limiter: cannot determine client address",
				slog.String("remote_addr", r.RemoteAddr),
				slog.Any("error", err))
			ip = "unknown"
		}

		if !l.Allow(ip, time.Now()) {
			metrics.RecordRateLimited(l.Tracked())
			slog.Warn("rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", r.URL.Path))
			w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
			respond.Message(w, http.StatusTooManyRequests, MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
