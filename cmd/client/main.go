// The client process of the tracehop demo. It performs one traced
// orchestration run (three warm-up calls, then the hello call against the
// server process), logs the outcome, and exits.
package main

import (
	"context"

	"go.uber.org/fx"

	"github.com/tracehop/tracehop/internal/config"
	"github.com/tracehop/tracehop/internal/orchestrator"
	"github.com/tracehop/tracehop/pkg/logger"
	"github.com/tracehop/tracehop/pkg/metrics"
	"github.com/tracehop/tracehop/pkg/reporter"
	"github.com/tracehop/tracehop/pkg/tracer"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		panic(err)
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func(c *config.ClientConfig) logger.Config { return c.Logger },
			func(c *config.ClientConfig) tracer.Config { return c.Tracer },
			func(c *config.ClientConfig) reporter.Config { return c.Reporter },
			func(c *config.ClientConfig) metrics.Config { return c.Metrics },
			func(c *config.ClientConfig) orchestrator.Config { return c.Orchestrator },
		),

		fx.Provide(
			func(l *logger.Logger) tracer.Logger { return l },
			func(l *logger.Logger) reporter.Logger { return l },
			func(l *logger.Logger) metrics.Logger { return l },
			func(l *logger.Logger) orchestrator.Logger { return l },
			func(r *reporter.Reporter) orchestrator.Sink { return r },
		),

		logger.FXModule,
		tracer.FXModule,
		reporter.FXModule,
		metrics.FXModule,

		fx.Provide(orchestrator.NewOrchestrator),
		fx.Invoke(registerRun),
	)

	app.Run()
}

// registerRun performs the single orchestration once the application is up,
// then asks fx to shut down so OnStop hooks flush the tracer and reporter
// before the process exits.
func registerRun(lc fx.Lifecycle, o *orchestrator.Orchestrator, log *logger.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				outcome := o.Run(context.Background())
				if outcome == nil {
					log.Warn("orchestration produced no outcome", nil, nil)
				} else {
					log.Info("orchestration finished", nil, map[string]interface{}{
						"outcome": map[string]interface{}(outcome),
					})
				}
				if err := shutdowner.Shutdown(); err != nil {
					log.Error("shutdown request failed", err, nil)
				}
			}()
			return nil
		},
	})
}
