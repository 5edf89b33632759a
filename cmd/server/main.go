// The server process of the tracehop demo. It serves the hello endpoint on a
// well-known local port, continues traces started by the client process, and
// optionally persists one row per handled request.
package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/tracehop/tracehop/internal/config"
	"github.com/tracehop/tracehop/internal/hello"
	"github.com/tracehop/tracehop/internal/store"
	"github.com/tracehop/tracehop/pkg/logger"
	"github.com/tracehop/tracehop/pkg/metrics"
	"github.com/tracehop/tracehop/pkg/reporter"
	"github.com/tracehop/tracehop/pkg/tracer"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		panic(err)
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func(c *config.ServerConfig) logger.Config { return c.Logger },
			func(c *config.ServerConfig) tracer.Config { return c.Tracer },
			func(c *config.ServerConfig) reporter.Config { return c.Reporter },
			func(c *config.ServerConfig) metrics.Config { return c.Metrics },
			func(c *config.ServerConfig) hello.Config { return c.Hello },
			func(c *config.ServerConfig) store.Config { return c.Store },
		),

		// Every package takes logging through its own small interface;
		// one zap-backed client satisfies them all.
		fx.Provide(
			func(l *logger.Logger) tracer.Logger { return l },
			func(l *logger.Logger) reporter.Logger { return l },
			func(l *logger.Logger) metrics.Logger { return l },
			func(l *logger.Logger) store.Logger { return l },
			func(l *logger.Logger) hello.Logger { return l },
		),
		fx.Provide(
			func(r *reporter.Reporter) hello.Sink { return r },
			newVisitRecorder,
		),

		logger.FXModule,
		tracer.FXModule,
		reporter.FXModule,
		metrics.FXModule,
		store.FXModule,

		fx.Provide(
			hello.NewHandler,
			newEngine,
		),
		fx.Invoke(registerHTTPServer),
	)

	app.Run()
}

// newVisitRecorder exposes the store through the handler's persistence
// interface. A disabled store is a nil *Store; returning it directly would
// hand the handler a non-nil interface wrapping a nil pointer, so the nil
// check happens here.
func newVisitRecorder(s *store.Store) hello.VisitRecorder {
	if s == nil {
		return nil
	}
	return s
}

func newEngine(handler *hello.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine)
	return engine
}

func registerHTTPServer(lc fx.Lifecycle, cfg *config.ServerConfig, engine *gin.Engine, log *logger.Logger) {
	server := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("hello server listening", nil, map[string]interface{}{
				"address": cfg.ListenAddress,
			})
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("hello server stopped", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
