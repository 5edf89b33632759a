package hello

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/tracehop/tracehop/pkg/metrics"
	"github.com/tracehop/tracehop/pkg/tracer"
)

// ErrEmptyMessage is returned when the hello endpoint is called without a
// message parameter. It becomes an HTTP 400 and one Sentry report.
var ErrEmptyMessage = errors.New("message cannot be empty")

// Logger defines the interface for logging operations in the hello package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Sink receives failure descriptions. *reporter.Reporter satisfies it.
type Sink interface {
	CaptureError(err error, tags map[string]string)
}

// VisitRecorder persists one handled request. A nil recorder disables
// persistence; *store.Store satisfies it.
type VisitRecorder interface {
	SaveVisit(ctx context.Context, traceID, message string, status int) error
}

// Handler serves the hello endpoint: the far side of the demo's network
// boundary. It continues the trace the client started, validates input in a
// child span, simulates work in another, and answers with a greeting.
type Handler struct {
	cfg      Config
	tracer   *tracer.Tracer
	sink     Sink
	recorder VisitRecorder
	metrics  *metrics.Metrics
	logger   Logger
}

func NewHandler(cfg Config, trace *tracer.Tracer, sink Sink, recorder VisitRecorder, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		tracer:   trace,
		sink:     sink,
		recorder: recorder,
		metrics:  m,
		logger:   logger,
	}
}

// Register mounts the handler's routes on the given engine.
func (h *Handler) Register(engine *gin.Engine) {
	engine.GET("/hello", h.Hello)
	engine.GET("/healthz", h.Health)
}

// Health is a plain liveness probe, outside any trace.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Hello handles GET /hello?message=...
//
// The trace context propagated in the request headers is extracted first, so
// the server-kind span started here shows up as a child of the client's span
// and the backend renders both processes as one trace.
func (h *Handler) Hello(c *gin.Context) {
	start := time.Now()

	ctx := h.tracer.ExtractHTTPHeaders(c.Request.Context(), c.Request.Header)
	ctx, span := h.tracer.StartServerSpan(ctx, "handle-hello")
	defer span.End()

	message := c.Query("message")

	h.tracer.SetAttributes(span, map[string]interface{}{
		"http.method": http.MethodGet,
		"http.route":  "/hello",
		"message":     message,
	})

	if err := h.validateMessage(ctx, message); err != nil {
		h.tracer.RecordErrorOnSpan(span, err)
		h.sink.CaptureError(err, map[string]string{"component": "hello"})
		h.logger.Error("rejected hello request", err, map[string]interface{}{
			"message": message,
		})
		h.finish(ctx, span, message, http.StatusBadRequest, start)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.simulateWork(ctx)

	h.finish(ctx, span, message, http.StatusOK, start)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Hello from Go! You sent: %s", message),
	})
}

// validateMessage checks the input inside its own span so rejected requests
// show where the time went.
func (h *Handler) validateMessage(ctx context.Context, message string) error {
	_, span := h.tracer.StartSpan(ctx, "validate-message")
	defer span.End()

	time.Sleep(h.cfg.ValidateDelay)

	if message == "" {
		h.tracer.RecordErrorOnSpan(span, ErrEmptyMessage)
		return ErrEmptyMessage
	}
	return nil
}

// simulateWork burns the configured delay inside a child span so the trace
// has something with visible duration.
func (h *Handler) simulateWork(ctx context.Context) {
	_, span := h.tracer.StartSpan(ctx, "simulate-work")
	defer span.End()

	time.Sleep(h.cfg.WorkDelay)
}

// finish records the request in metrics and, when a recorder is configured,
// persists the visit. Persistence failures are logged but never fail the
// request.
func (h *Handler) finish(ctx context.Context, span oteltrace.Span, message string, status int, start time.Time) {
	h.metrics.RequestDuration.
		WithLabelValues("/hello", strconv.Itoa(status)).
		Observe(time.Since(start).Seconds())

	if h.recorder == nil {
		return
	}

	traceID := span.SpanContext().TraceID().String()
	if err := h.recorder.SaveVisit(ctx, traceID, message, status); err != nil {
		h.logger.Warn("failed to persist visit", err, map[string]interface{}{
			"trace_id": traceID,
		})
	}
}
