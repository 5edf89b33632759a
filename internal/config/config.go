// Package config loads per-process configuration from the environment.
//
// Each infrastructure package declares its own Config struct with envconfig
// tags; this package aggregates them per process, loads an optional .env
// file, and applies the demo's defaults so both binaries run with no
// configuration at all.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/tracehop/tracehop/internal/hello"
	"github.com/tracehop/tracehop/internal/orchestrator"
	"github.com/tracehop/tracehop/internal/store"
	"github.com/tracehop/tracehop/pkg/logger"
	"github.com/tracehop/tracehop/pkg/metrics"
	"github.com/tracehop/tracehop/pkg/reporter"
	"github.com/tracehop/tracehop/pkg/tracer"
)

// DefaultServerListenAddress is the well-known local address the client's
// hello call targets.
const DefaultServerListenAddress = "127.0.0.1:3001"

// ClientConfig is everything the client process needs.
type ClientConfig struct {
	Logger       logger.Config
	Tracer       tracer.Config
	Reporter     reporter.Config
	Metrics      metrics.Config
	Orchestrator orchestrator.Config
}

// ServerConfig is everything the server process needs.
type ServerConfig struct {
	// ListenAddress is where the hello endpoint binds.
	ListenAddress string `envconfig:"SERVER_LISTEN_ADDRESS"`

	Logger   logger.Config
	Tracer   tracer.Config
	Reporter reporter.Config
	Metrics  metrics.Config
	Hello    hello.Config
	Store    store.Config
}

// LoadClient reads the client configuration from the environment, after
// loading a .env file when one is present.
func LoadClient() (*ClientConfig, error) {
	_ = godotenv.Load()

	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse client environment: %w", err)
	}

	applyCommonDefaults(&cfg.Logger, &cfg.Tracer, &cfg.Metrics, &cfg.Reporter, "tracehop-client")
	if cfg.Metrics.Address == "" {
		// Keep clear of the server's default so both processes can share a host.
		cfg.Metrics.Address = ":9091"
	}

	return &cfg, nil
}

// LoadServer reads the server configuration from the environment, after
// loading a .env file when one is present.
func LoadServer() (*ServerConfig, error) {
	_ = godotenv.Load()

	var cfg ServerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse server environment: %w", err)
	}

	applyCommonDefaults(&cfg.Logger, &cfg.Tracer, &cfg.Metrics, &cfg.Reporter, "tracehop-server")

	if cfg.ListenAddress == "" {
		cfg.ListenAddress = DefaultServerListenAddress
	}
	if cfg.Hello.WorkDelay == 0 {
		cfg.Hello.WorkDelay = hello.DefaultWorkDelay
	}
	if cfg.Hello.ValidateDelay == 0 {
		cfg.Hello.ValidateDelay = hello.DefaultValidateDelay
	}

	return &cfg, nil
}

// applyCommonDefaults fills the fields shared by both processes. The service
// name cascades into logging, tracing and metrics so all three streams agree
// on who is talking.
func applyCommonDefaults(log *logger.Config, trace *tracer.Config, m *metrics.Config, rep *reporter.Config, serviceName string) {
	if log.ServiceName == "" {
		log.ServiceName = serviceName
	}
	if log.Level == "" {
		log.Level = logger.Info
	}
	if trace.ServiceName == "" {
		trace.ServiceName = serviceName
	}
	if trace.AppEnv == "" {
		trace.AppEnv = "development"
	}
	if m.ServiceName == "" {
		m.ServiceName = serviceName
	}
	if rep.Environment == "" {
		rep.Environment = trace.AppEnv
	}
}
