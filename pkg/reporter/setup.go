package reporter

import (
	"github.com/getsentry/sentry-go"
)

// Logger defines the interface for logging operations in the reporter package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=reporter
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Reporter forwards failure descriptions to Sentry. It owns a dedicated hub
// bound to one configured client, constructed once at process startup and
// passed explicitly to whatever needs to report failures. Nothing in this
// package touches Sentry's package-level globals, which keeps consumers
// testable in isolation.
//
// A Reporter constructed from a Config with an empty DSN is valid and simply
// discards every capture.
type Reporter struct {
	hub    *sentry.Hub
	logger Logger
}

// NewClient creates and initializes a new Reporter instance.
// With a non-empty DSN it builds a Sentry client and a private hub; capture
// failures during initialization are fatal since a misconfigured DSN would
// otherwise silently swallow every report.
//
// Example:
//
//	cfg := reporter.Config{
//	    DSN:         os.Getenv("SENTRY_DSN"),
//	    Environment: "development",
//	}
//
//	sink := reporter.NewClient(cfg, logger)
//	sink.CaptureError(err, map[string]string{"status": "500"})
func NewClient(cfg Config, logger Logger) *Reporter {
	if cfg.DSN == "" {
		logger.Info("reporter disabled: no DSN configured", nil, nil)
		return &Reporter{logger: logger}
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		AttachStacktrace: cfg.AttachStacktrace,
	})
	if err != nil {
		logger.Fatal("cannot initiate error reporter", err, nil)
		return nil
	}

	return &Reporter{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		logger: logger,
	}
}

// Enabled reports whether captures actually reach Sentry.
func (r *Reporter) Enabled() bool {
	return r.hub != nil
}
