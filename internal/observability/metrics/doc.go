// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the business metrics of the API:
//   - Account metrics (signups, signins)
//   - Article metrics (saves, deletes)
//   - News search metrics (outcomes, provider latency)
//   - Database operation latency
//
// HTTP request metrics live next to the middleware that records them in
// internal/handler/http. All metrics are registered with the Prometheus
// default registry and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "news-explorer/internal/observability/metrics"
//
//	if errors.Is(err, entity.ErrDuplicateKey) {
//	    metrics.RecordArticleSaved(metrics.OutcomeConflict)
//	}
package metrics
