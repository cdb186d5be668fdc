// Package metrics owns the Prometheus registry and the collectors the
// gateway updates.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upload outcomes recorded by UploadService.
const (
	OutcomeSuccess      = "success"
	OutcomeStoreFailed  = "store_failed"
	OutcomeMissingCID   = "missing_cid"
	OutcomeRecordFailed = "record_failed"
)

// Metrics provides a self-contained registry with HTTP and upload collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	reg      *prometheus.Registry
	inflight prometheus.Gauge
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	uploads  *prometheus.CounterVec
	bytes    prometheus.Counter
}

// New creates a Metrics instance with a fresh registry and registers collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		reg: reg,
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cidgate",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of inflight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cidgate",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed, partitioned by route, method and status code.",
		}, []string{"route", "method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cidgate",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Histogram of latencies for HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cidgate",
			Subsystem: "gateway",
			Name:      "uploads_total",
			Help:      "Upload attempts partitioned by outcome.",
		}, []string{"outcome"}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cidgate",
			Subsystem: "gateway",
			Name:      "uploaded_bytes_total",
			Help:      "Bytes forwarded to the object store by successful uploads.",
		}),
	}

	reg.MustRegister(m.inflight, m.requests, m.latency, m.uploads, m.bytes)
	return m
}

// Handler returns an http.Handler that serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Registry returns the registry served by Handler, for registering extra
// collectors such as the Go runtime ones.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// RequestStarted increments the inflight gauge.
func (m *Metrics) RequestStarted() {
	if m == nil {
		return
	}
	m.inflight.Inc()
}

// RequestFinished records a completed request.
func (m *Metrics) RequestFinished(route, method, code string, seconds float64) {
	if m == nil {
		return
	}
	m.inflight.Dec()
	m.requests.WithLabelValues(route, method, code).Inc()
	m.latency.WithLabelValues(route, method).Observe(seconds)
}

// UploadCompleted records the outcome of one upload attempt.
func (m *Metrics) UploadCompleted(outcome string, size int64) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.bytes.Add(float64(size))
	}
}
