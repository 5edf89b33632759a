package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the process's Prometheus registry, the HTTP server exposing
// it, and the instruments recorded by the client and server processes.
type Metrics struct {
	Server      *http.Server
	Registry    *prometheus.Registry
	serviceName string

	// OutboundCalls counts the client's outbound HTTP calls by target
	// ("warmup" or "hello") and outcome ("success", "failure", "discarded").
	OutboundCalls *prometheus.CounterVec

	// FailureReports counts failure descriptions handed to the reporter.
	FailureReports *prometheus.CounterVec

	// RequestDuration observes server-side request handling time by route
	// and HTTP status.
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	outboundCalls := createCounterVec(
		"tracehop_outbound_calls_total",
		"Outbound HTTP calls issued by the orchestrator.",
		[]string{"target", "outcome"},
	)
	failureReports := createCounterVec(
		"tracehop_failure_reports_total",
		"Failure descriptions forwarded to the error reporter.",
		[]string{"component"},
	)
	requestDuration := createHistogramVec(
		"tracehop_request_duration_seconds",
		"Server request handling duration.",
		[]string{"route", "status"},
		prometheus.DefBuckets,
	)

	wrappedRegistry.MustRegister(outboundCalls, failureReports, requestDuration)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	server := &http.Server{
		Addr:    address,
		Handler: handler,
	}

	return &Metrics{
		Server:          server,
		Registry:        registry,
		serviceName:     cfg.ServiceName,
		OutboundCalls:   outboundCalls,
		FailureReports:  failureReports,
		RequestDuration: requestDuration,
	}
}
