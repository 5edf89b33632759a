package tracer

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// noopLogger satisfies the Logger interface for tests that don't care about output.
type noopLogger struct{}

func (noopLogger) Info(string, error, ...map[string]interface{})  {}
func (noopLogger) Debug(string, error, ...map[string]interface{}) {}
func (noopLogger) Warn(string, error, ...map[string]interface{})  {}
func (noopLogger) Error(string, error, ...map[string]interface{}) {}
func (noopLogger) Fatal(string, error, ...map[string]interface{}) {}

// newRecordingTracer builds a Tracer backed by an in-memory span recorder.
func newRecordingTracer() (*Tracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return NewClientWithProvider(tp, noopLogger{}), recorder
}

func TestCarrierRoundTrip(t *testing.T) {
	tracerClient, _ := newRecordingTracer()

	ctx, span := tracerClient.StartSpan(context.Background(), "origin")
	defer span.End()

	carrier := tracerClient.GetCarrier(ctx)
	require.NotEmpty(t, carrier["traceparent"], "carrier must contain a traceparent header")

	// A fresh context seeded from the carrier must continue the same trace.
	remoteCtx := tracerClient.SetCarrierOnContext(context.Background(), carrier)
	_, childSpan := tracerClient.StartSpan(remoteCtx, "continuation")
	defer childSpan.End()

	assert.Equal(t,
		span.SpanContext().TraceID(),
		childSpan.SpanContext().TraceID(),
		"trace ID must survive the carrier round trip",
	)
	assert.NotEqual(t,
		span.SpanContext().SpanID(),
		childSpan.SpanContext().SpanID(),
	)
}

func TestInjectExtractHTTPHeaders(t *testing.T) {
	tracerClient, _ := newRecordingTracer()

	ctx, span := tracerClient.StartClientSpan(context.Background(), "outbound")
	defer span.End()

	header := http.Header{}
	tracerClient.InjectHTTPHeaders(ctx, header)
	require.NotEmpty(t, header.Get("traceparent"))

	serverCtx := tracerClient.ExtractHTTPHeaders(context.Background(), header)
	_, serverSpan := tracerClient.StartServerSpan(serverCtx, "inbound")
	defer serverSpan.End()

	assert.Equal(t, span.SpanContext().TraceID(), serverSpan.SpanContext().TraceID())
}

func TestRecordErrorOnSpanSetsStatus(t *testing.T) {
	tracerClient, recorder := newRecordingTracer()

	_, span := tracerClient.StartSpan(context.Background(), "failing-op")
	tracerClient.RecordErrorOnSpan(span, errors.New("connection refused"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "connection refused", ended[0].Status().Description)

	require.Len(t, ended[0].Events(), 1, "expected a single exception event")
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestSetAttributesConvertsTypes(t *testing.T) {
	tracerClient, recorder := newRecordingTracer()

	_, span := tracerClient.StartSpan(context.Background(), "attributed")
	tracerClient.SetAttributes(span, map[string]interface{}{
		"http.url":         "http://127.0.0.1:3001/hello",
		"http.status_code": 200,
		"retryable":        false,
	})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	got := map[string]interface{}{}
	for _, kv := range ended[0].Attributes() {
		got[string(kv.Key)] = kv.Value.AsInterface()
	}

	assert.Equal(t, "http://127.0.0.1:3001/hello", got["http.url"])
	assert.Equal(t, int64(200), got["http.status_code"])
	assert.Equal(t, false, got["retryable"])
}
