package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// acquisition pipeline.
type Metrics struct {
	// SourceAttempts counts acquisition attempts by source (authoritative,
	// relay name, fallback) and outcome (success, network_error, bad_status,
	// bad_payload, zero_records).
	SourceAttempts *prometheus.CounterVec

	RecordsEmitted  prometheus.Gauge
	AcquireDuration prometheus.Histogram
	FallbackServed  prometheus.Counter

	// Refresh loop metrics.
	RefreshRunning   prometheus.Gauge
	RefreshCycles    prometheus.Counter
	RecordsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.SourceAttempts,
		m.RecordsEmitted,
		m.AcquireDuration,
		m.FallbackServed,
		m.RefreshRunning,
		m.RefreshCycles,
		m.RecordsPublished,
		m.PublishErrors,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SourceAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smart_cameras",
			Name:      "source_attempts_total",
			Help:      "Acquisition attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		RecordsEmitted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smart_cameras",
			Name:      "records_emitted",
			Help:      "Records produced by the most recent acquisition pass.",
		}),
		AcquireDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smart_cameras",
			Name:      "acquire_duration_seconds",
			Help:      "Duration of a complete acquisition pass across all sources.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 15, 30, 60},
		}),
		FallbackServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smart_cameras",
			Name:      "fallback_served_total",
			Help:      "Acquisition passes that fell through to the static dataset.",
		}),
		RefreshRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smart_cameras",
			Name:      "refresh_running",
			Help:      "1 when the refresh loop is active, 0 when shut down.",
		}),
		RefreshCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smart_cameras",
			Name:      "refresh_cycles_total",
			Help:      "Completed refresh cycles.",
		}),
		RecordsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smart_cameras",
			Name:      "records_published_total",
			Help:      "Records published to the Kafka sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smart_cameras",
			Name:      "publish_errors_total",
			Help:      "Failed Kafka publish batches.",
		}),
	}
}
