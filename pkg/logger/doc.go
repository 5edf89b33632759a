// Package logger provides structured JSON logging built on Uber's Zap.
//
// The wrapper exposes leveled methods that take a message, an optional error
// and any number of field maps, so call sites don't deal with zap.Field
// directly:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "tracehop-client",
//	})
//	log.Info("hello call succeeded", nil, map[string]interface{}{
//		"status": 200,
//	})
//
// Every entry carries the process id and the configured service name, which
// is how the client and server processes are distinguished when their output
// is aggregated.
//
// The package ships an Fx module (FXModule) that provides the logger and
// syncs it on shutdown.
package logger
