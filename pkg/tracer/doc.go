// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// The tracer package offers a simplified interface for implementing distributed
// tracing in Go applications. It abstracts away the setup of the OpenTelemetry
// SDK (provider, exporter, propagator, sampler) behind a single constructor and
// a handful of span helpers.
//
// Core Features:
//   - Span creation with explicit kinds (internal, client, server)
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Cross-service trace context propagation over HTTP headers
//   - OTLP/HTTP export to any OpenTelemetry collector
//
// Basic Usage:
//
//	import (
//		"context"
//		"github.com/tracehop/tracehop/pkg/logger"
//		"github.com/tracehop/tracehop/pkg/tracer"
//	)
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "tracehop-client",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "demo-client-request")
//	defer span.End()
//
// Distributed Tracing Across Services:
//
//	// In the sending process
//	ctx, span := tracerClient.StartClientSpan(ctx, "demo-client-request")
//	defer span.End()
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
//	tracerClient.InjectHTTPHeaders(ctx, req.Header)
//
//	// In the receiving process
//	func helloHandler(w http.ResponseWriter, r *http.Request) {
//		ctx := tracerClient.ExtractHTTPHeaders(r.Context(), r.Header)
//		ctx, span := tracerClient.StartServerSpan(ctx, "handle-hello")
//		defer span.End()
//		// ...
//	}
//
// Both sides must use the same propagation format; NewClient registers the
// W3C TraceContext + Baggage composite propagator globally, so any process
// built with this package interoperates out of the box.
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// Thread Safety:
//
// All methods on the Tracer type and Span interface are safe for concurrent
// use by multiple goroutines.
package tracer
