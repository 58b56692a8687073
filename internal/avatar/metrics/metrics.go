// Package metrics provides Prometheus instrumentation for the avatar chain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the avatar chain collectors.
type Metrics struct {
	Attempts           *prometheus.CounterVec
	Outcomes           *prometheus.CounterVec
	AIDurationMs       prometheus.Histogram
	BreakerTransitions *prometheus.CounterVec
}

// New creates and registers the avatar metrics with the default registry.
func New() *Metrics {
	return &Metrics{
		Attempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shenfen_avatar_attempts_total",
				Help: "Avatar generation attempts by backend.",
			},
			[]string{"backend"},
		),
		Outcomes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shenfen_avatar_outcomes_total",
				Help: "Avatar attempt outcomes by backend and outcome class.",
			},
			[]string{"backend", "outcome"},
		),
		AIDurationMs: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shenfen_avatar_ai_duration_ms",
				Help:    "AI backend call duration in milliseconds.",
				Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
			},
		),
		BreakerTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shenfen_avatar_breaker_transitions_total",
				Help: "AI backend circuit breaker transitions by resulting state.",
			},
			[]string{"state"},
		),
	}
}

// IncrementAttempt records one attempt against a backend.
func (m *Metrics) IncrementAttempt(backend string) {
	m.Attempts.WithLabelValues(backend).Inc()
}

// IncrementOutcome records an attempt outcome. Outcome is "ok" or a
// failure class.
func (m *Metrics) IncrementOutcome(backend, outcome string) {
	m.Outcomes.WithLabelValues(backend, outcome).Inc()
}

// ObserveAIDuration records the AI call duration in milliseconds.
func (m *Metrics) ObserveAIDuration(durationMs float64) {
	m.AIDurationMs.Observe(durationMs)
}

// IncrementBreakerTransition records a circuit state change.
func (m *Metrics) IncrementBreakerTransition(state string) {
	m.BreakerTransitions.WithLabelValues(state).Inc()
}
