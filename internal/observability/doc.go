// Package observability provides the observability infrastructure of the API:
// structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus business metrics and recorders
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
//
// Example usage:
//
//	import (
//	    "news-explorer/internal/observability/logging"
//	    "news-explorer/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.New(os.Stdout, slog.LevelInfo, logging.FormatJSON)
//	    logger.Info("application started")
//
//	    metrics.RecordNewsSearch(metrics.OutcomeSuccess)
//	}
package observability
