// Package metrics registers the HTTP layer's Prometheus metrics. Domain
// counters live next to the code that increments them; this package only
// covers the transport surface.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the request-level Prometheus metrics.
type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	RequestSeconds *prometheus.HistogramVec
	InFlight       prometheus.Gauge
}

// New creates and registers the HTTP metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "shenfen_http_requests_total",
			Help: "Total HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		RequestSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shenfen_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		InFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shenfen_http_requests_in_flight",
			Help: "HTTP requests currently being served",
		}),
	}
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(method, route string, status int, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestSeconds.WithLabelValues(route).Observe(durationSeconds)
}

// IncInFlight marks a request as started.
func (m *Metrics) IncInFlight() {
	m.InFlight.Inc()
}

// DecInFlight marks a request as finished.
func (m *Metrics) DecInFlight() {
	m.InFlight.Dec()
}
