package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the query pipeline.
type Metrics struct {
	QueriesTotal   *prometheus.CounterVec // labels: outcome
	ModelLatency   prometheus.Histogram
	MatchedRecords prometheus.Histogram
	DatasetRecords prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floodlens",
			Name:      "queries_total",
			Help:      "Query turns by outcome.",
		}, []string{"outcome"}),
		ModelLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "floodlens",
			Name:      "model_request_duration_seconds",
			Help:      "Duration of the criteria-extraction model call.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		MatchedRecords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "floodlens",
			Name:      "matched_records",
			Help:      "Number of records matched per answered query.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "floodlens",
			Name:      "dataset_records",
			Help:      "Number of observation records loaded at startup.",
		}),
	}

	prometheus.MustRegister(
		m.QueriesTotal,
		m.ModelLatency,
		m.MatchedRecords,
		m.DatasetRecords,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered instruments to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		QueriesTotal:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "floodlens", Name: "queries_total"}, []string{"outcome"}),
		ModelLatency:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "floodlens", Name: "model_request_duration_seconds"}),
		MatchedRecords: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "floodlens", Name: "matched_records"}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "floodlens", Name: "dataset_records"}),
	}
}
