package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer used by this package.
const InstrumentationName = "news-explorer"

// Config describes the service reported on spans.
type Config struct {
	ServiceName string
	Version     string
	Environment string

	// SampleRatio is the fraction of root spans sampled; 0 samples none and
	// values >= 1 sample all. Remote parents decide for their children.
	SampleRatio float64
}

// Init installs a global tracer provider and propagator and returns the
// provider's shutdown function.
func Init(cfg Config) (func(context.Context) error, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.Version),
		attribute.String("deployment.environment", cfg.Environment),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

// GetTracer returns the tracer of the current global provider.
func GetTracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}
