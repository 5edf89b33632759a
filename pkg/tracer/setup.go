package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Logger defines the interface for logging operations in the tracer package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=tracer
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Tracer provides a simplified API for distributed tracing with OpenTelemetry.
// It wraps the OpenTelemetry TracerProvider and provides convenient methods for
// creating spans, recording errors, and propagating trace context across service boundaries.
//
// The Tracer is designed to be thread-safe and can be shared across goroutines.
type Tracer struct {
	tracer *trace.TracerProvider
	logger Logger
}

// NewClient creates and initializes a new Tracer instance with OpenTelemetry.
// It sets up the tracer provider with the provided configuration, configures
// the OTLP/HTTP trace exporter when export is enabled, and registers the W3C
// TraceContext + Baggage propagator globally so that both demo processes speak
// the same propagation dialect on the wire.
//
// Resource attributes attached to every span:
//   - Service name
//   - Deployment environment
//   - Environment tag
//
// New traces are sampled at cfg.SampleRatio (parent-based, so a propagated
// parent always wins); an unset ratio samples everything, which is the right
// default for a demonstration that wants every exchange visible in the
// backend.
//
// If the exporter fails to initialize, a fatal error is logged.
//
// Example:
//
//	cfg := tracer.Config{
//	    ServiceName:  "tracehop-client",
//	    AppEnv:       "development",
//	    EnableExport: true,
//	}
//
//	tracerClient := tracer.NewClient(cfg, logger)
//
//	ctx, span := tracerClient.StartSpan(context.Background(), "demo-client-request")
//	defer span.End()
func NewClient(cfg Config, logger Logger) *Tracer {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			logger.Fatal("cannot initiate tracer", err, nil)
			return nil
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	sampleRatio := cfg.SampleRatio
	if sampleRatio <= 0 {
		sampleRatio = 1
	}
	options = append(options, trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(sampleRatio))))

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Tracer{tracer: tp, logger: logger}
}

// NewClientWithProvider wraps an already-constructed TracerProvider.
// Tests use this to pair the Tracer API with an in-memory span recorder.
func NewClientWithProvider(tp *trace.TracerProvider, logger Logger) *Tracer {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return &Tracer{tracer: tp, logger: logger}
}

// Shutdown flushes buffered spans and releases exporter resources.
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.tracer.Shutdown(ctx)
}
