package reporter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, error, ...map[string]interface{})  {}
func (noopLogger) Debug(string, error, ...map[string]interface{}) {}
func (noopLogger) Warn(string, error, ...map[string]interface{})  {}
func (noopLogger) Error(string, error, ...map[string]interface{}) {}
func (noopLogger) Fatal(string, error, ...map[string]interface{}) {}

func TestDisabledReporterIsSafe(t *testing.T) {
	client := NewClient(Config{}, noopLogger{})
	require.NotNil(t, client)

	assert.False(t, client.Enabled())

	// Captures and flushes on a disabled reporter must be harmless no-ops.
	client.CaptureError(errors.New("hello call failed"), map[string]string{"status": "500"})
	client.CaptureMessage("diagnostic", nil)
	assert.True(t, client.Flush(10*time.Millisecond))
}

func TestConfiguredReporterIsEnabled(t *testing.T) {
	// The DSN is parsed at construction time only; no network traffic happens here.
	client := NewClient(Config{
		DSN:         "https://examplePublicKey@o0.ingest.sentry.io/0",
		Environment: "test",
	}, noopLogger{})
	require.NotNil(t, client)

	assert.True(t, client.Enabled())
}
