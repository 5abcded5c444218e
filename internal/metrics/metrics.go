// Package metrics holds the Prometheus collectors of the tracker server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mvptracker"

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	Registry *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
	inFlight    prometheus.Gauge
	redemptions *prometheus.CounterVec
}

// New creates a registry with RPC, invite and runtime collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "requests_total",
				Help:      "Total number of RPC calls by procedure and result code.",
			},
			[]string{"procedure", "code"},
		),
		rpcDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "duration_seconds",
				Help:      "Duration of RPC calls.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"procedure"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "inflight_requests",
				Help:      "Current number of in-flight RPC calls.",
			},
		),
		redemptions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "invites",
				Name:      "redemptions_total",
				Help:      "Invite code redemptions by result.",
			},
			[]string{"result"},
		),
	}

	m.Registry.MustRegister(
		m.rpcRequests,
		m.rpcDuration,
		m.inFlight,
		m.redemptions,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Start marks an RPC as in flight and returns a func that records its outcome.
func (m *Metrics) Start(procedure string) func(code string) {
	start := time.Now()
	m.inFlight.Inc()
	return func(code string) {
		m.inFlight.Dec()
		m.rpcRequests.WithLabelValues(procedure, code).Inc()
		m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
	}
}

// ObserveRedemption counts one RSVP attempt. result is "accepted",
// "rejected" or "throttled".
func (m *Metrics) ObserveRedemption(result string) {
	m.redemptions.WithLabelValues(result).Inc()
}
