package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
)

// Logger defines the interface for logging operations in the metrics package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// FXModule provides the Metrics instance and runs its HTTP server for the
// lifetime of the application.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the Prometheus endpoint on application start
// and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, logger Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("metrics server listening", nil, map[string]interface{}{
				"address": m.Server.Addr,
			})
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					// The process keeps running without metrics; tracing
					// and error reporting are unaffected.
					logger.Error("metrics server stopped", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
