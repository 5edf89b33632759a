package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegistersInstruments(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "tracehop-test"})
	require.NotNil(t, m)

	m.OutboundCalls.WithLabelValues("hello", "success").Inc()
	m.OutboundCalls.WithLabelValues("warmup", "discarded").Add(3)
	m.FailureReports.WithLabelValues("orchestrator").Inc()
	m.RequestDuration.WithLabelValues("/hello", "200").Observe(0.2)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.OutboundCalls.WithLabelValues("hello", "success")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.OutboundCalls.WithLabelValues("warmup", "discarded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FailureReports.WithLabelValues("orchestrator")))

	count := testutil.CollectAndCount(m.RequestDuration)
	assert.Equal(t, 1, count)
}

func TestNewMetricsDefaultsAddress(t *testing.T) {
	m := NewMetrics(Config{})
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
}
