// Package tracing provides OpenTelemetry tracing for the HTTP API.
//
// Init installs an SDK tracer provider and the W3C trace context propagator.
// Middleware starts one server span per request, named after the method and
// the normalized route, and returns the trace ID in the X-Trace-Id header.
// No exporter is configured; trace IDs correlate access logs and clients
// with upstream proxies that propagate traceparent.
package tracing
