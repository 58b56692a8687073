package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for identity generation.
type Metrics struct {
	RecordsGenerated   prometheus.Counter
	GenerateDurationMs prometheus.Histogram
	UniquenessRetries  *prometheus.CounterVec
	BatchesCompleted   *prometheus.CounterVec
	BatchSizeRecords   prometheus.Histogram
}

// New registers and returns identity metrics collectors.
func New() *Metrics {
	return &Metrics{
		RecordsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shenfen_records_generated_total",
			Help: "Total number of identity records generated",
		}),
		GenerateDurationMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "shenfen_generate_duration_ms",
			Help:    "Duration of single-record generation in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		UniquenessRetries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "shenfen_uniqueness_retries_total",
			Help: "Total number of candidates discarded for a key collision, by field",
		}, []string{"field"}),
		BatchesCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "shenfen_batches_total",
			Help: "Total number of batch generations by outcome",
		}, []string{"outcome"}),
		BatchSizeRecords: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "shenfen_batch_size_records",
			Help:    "Number of records requested per batch",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
	}
}

func (m *Metrics) IncrementRecordsGenerated() {
	m.RecordsGenerated.Inc()
}

func (m *Metrics) ObserveGenerateDuration(durationMs float64) {
	m.GenerateDurationMs.Observe(durationMs)
}

func (m *Metrics) IncrementUniquenessRetries(field string) {
	m.UniquenessRetries.WithLabelValues(field).Inc()
}

func (m *Metrics) IncrementBatchOutcome(outcome string) {
	m.BatchesCompleted.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveBatchSize(n int) {
	m.BatchSizeRecords.Observe(float64(n))
}
