package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{Zap: zap.New(core)}, logs
}

func TestNewLoggerClientLevels(t *testing.T) {
	for _, tc := range []struct {
		level string
		want  zapcore.Level
	}{
		{Debug, zap.DebugLevel},
		{Info, zap.InfoLevel},
		{Warning, zap.WarnLevel},
		{Error, zap.ErrorLevel},
		{"bogus", zap.InfoLevel},
	} {
		client := NewLoggerClient(Config{Level: tc.level})
		require.NotNil(t, client.Zap)
		assert.True(t, client.Zap.Core().Enabled(tc.want), "level %q", tc.level)
		if tc.want != zap.DebugLevel {
			assert.False(t, client.Zap.Core().Enabled(zap.DebugLevel), "level %q", tc.level)
		}
	}
}

func TestInfoCarriesErrorAndFields(t *testing.T) {
	client, logs := newObservedLogger(zap.InfoLevel)

	client.Info("hello served", errors.New("boom"), map[string]interface{}{
		"status": 200,
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello served", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestLaterFieldMapsOverrideEarlier(t *testing.T) {
	client, logs := newObservedLogger(zap.DebugLevel)

	client.Debug("retrying", nil,
		map[string]interface{}{"attempt": 1},
		map[string]interface{}{"attempt": 2},
	)

	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, 2, logs.All()[0].ContextMap()["attempt"])
}
