// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values shared by the business counters.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeConflict = "conflict"
	OutcomeFailure  = "failure"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
	OutcomeUpstream = "upstream_error"
)

// Account metrics
var (
	// SignupsTotal counts registration attempts by outcome.
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total number of signup attempts by outcome",
		},
		[]string{"outcome"},
	)

	// LoginsTotal counts signin attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of signin attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// Article metrics
var (
	// ArticlesSavedTotal counts save attempts by outcome.
	ArticlesSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_saved_total",
			Help: "Total number of article save attempts by outcome",
		},
		[]string{"outcome"},
	)

	// ArticlesDeletedTotal counts delete attempts by outcome.
	ArticlesDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_deleted_total",
			Help: "Total number of article delete attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// News search metrics
var (
	// NewsSearchesTotal counts searches by outcome.
	NewsSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_searches_total",
			Help: "Total number of news searches by outcome",
		},
		[]string{"outcome"},
	)

	// NewsCacheHitsTotal counts searches answered from the response cache.
	NewsCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_cache_hits_total",
			Help: "Total number of news searches served from cache",
		},
	)

	// NewsUpstreamDuration measures provider round trips, retries included.
	NewsUpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "news_upstream_duration_seconds",
			Help:    "Time taken by the news provider to answer a search",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)

// Database metrics
var (
	// DBOperationDuration measures store operations by name.
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)
)

// Transport metrics
var (
	// RateLimitedTotal counts requests rejected by the per-client limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// RateLimitClients is the number of client addresses currently tracked.
	RateLimitClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_rate_limit_clients",
			Help: "Number of client addresses tracked by the rate limiter",
		},
	)
)
