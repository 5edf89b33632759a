package reporter

import (
	"context"
	"time"

	"go.uber.org/fx"
)

// flushTimeout bounds how long shutdown waits for Sentry delivery.
const flushTimeout = 2 * time.Second

var FXModule = fx.Module("reporter",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterReporterLifecycle),
)

// RegisterReporterLifecycle flushes buffered events on application shutdown
// so failures reported just before exit still reach Sentry.
func RegisterReporterLifecycle(lc fx.Lifecycle, client *Reporter) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if !client.Flush(flushTimeout) {
				client.logger.Warn("reporter flush timed out, some events may be lost", nil, nil)
			}
			return nil
		},
	})
}
