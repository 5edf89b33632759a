package tracer

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// RecordErrorOnSpan records an error on a span and sets its status to error.
// This method is used to indicate that a span represents a failed operation,
// which is what makes the failure visible in the tracing backend's UI.
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "fetch-greeting")
//	defer span.End()
//
//	data, err := fetchGreeting(ctx)
//	if err != nil {
//	    tracer.RecordErrorOnSpan(span, err)
//	    return nil, err
//	}
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// StartSpan creates a new internal-kind span with the given name and returns
// an updated context containing the span, along with the span itself.
//
// The created span becomes a child of any span that exists in the provided
// context. If no span exists in the context, a new root span is created.
//
// The returned span must be ended when the operation completes:
//
//	func validate(ctx context.Context, msg string) error {
//	    ctx, span := tracer.StartSpan(ctx, "validate-message")
//	    defer span.End()
//	    // ...
//	}
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("")
	ctx, span := tracer.Start(ctx, name)
	return ctx, span
}

// StartClientSpan creates a span of kind CLIENT. Use it to wrap outbound
// calls whose far side may continue the trace.
func (t *Tracer) StartClientSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("")
	ctx, span := tracer.Start(ctx, name, traceSpan.WithSpanKind(traceSpan.SpanKindClient))
	return ctx, span
}

// StartServerSpan creates a span of kind SERVER. The context should already
// carry the remote parent extracted from the incoming request headers (see
// ExtractHTTPHeaders) so the backend can stitch both processes into one trace.
func (t *Tracer) StartServerSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("")
	ctx, span := tracer.Start(ctx, name, traceSpan.WithSpanKind(traceSpan.SpanKindServer))
	return ctx, span
}

// SetAttributes adds one or more attributes to a span with support for different data types.
// Attributes provide additional context and metadata for spans, making traces more informative
// for debugging and analysis.
//
// Supported value types:
//   - string: Stored as string attributes
//   - int/int64: Stored as integer attributes
//   - float64: Stored as floating-point attributes
//   - bool: Stored as boolean attributes
//   - other types: Converted to strings using fmt.Sprint
//
// Example:
//
//	ctx, span := tracer.StartClientSpan(ctx, "demo-client-request")
//	defer span.End()
//
//	tracer.SetAttributes(span, map[string]interface{}{
//	    "http.url":    url,
//	    "http.method": "GET",
//	})
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			// For unsupported types, convert to string
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	span.SetAttributes(attributes...)
}

// GetCarrier extracts the current trace context from a context object and returns it as
// a map that can be transmitted across service boundaries. The returned map contains
// W3C Trace Context headers:
//
//   - "traceparent": trace ID, span ID, and trace flags
//   - "tracestate": vendor-specific trace information (if present)
func (t *Tracer) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext extracts trace information from a carrier map and injects it into
// a context. This is the complement to GetCarrier and is typically used when receiving
// requests or messages from other services that include trace headers. Spans created
// from the returned context are connected to the upstream service's trace.
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}

// InjectHTTPHeaders writes the trace context from ctx into outgoing HTTP
// request headers. This is what carries the client's span across the network
// boundary to the server process.
//
// Example:
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
//	tracer.InjectHTTPHeaders(ctx, req.Header)
//	resp, err := client.Do(req)
func (t *Tracer) InjectHTTPHeaders(ctx context.Context, header http.Header) {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	propagator.Inject(ctx, propagation.HeaderCarrier(header))
}

// ExtractHTTPHeaders reads trace context from incoming HTTP request headers
// and returns a context carrying the remote parent. Handlers call this before
// starting their server-kind span:
//
//	ctx := tracer.ExtractHTTPHeaders(r.Context(), r.Header)
//	ctx, span := tracer.StartServerSpan(ctx, "handle-hello")
//	defer span.End()
func (t *Tracer) ExtractHTTPHeaders(ctx context.Context, header http.Header) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.HeaderCarrier(header))
}
