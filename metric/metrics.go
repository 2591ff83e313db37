// Package metric exposes Prometheus instrumentation for conversion runs.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus collectors for the conversion pipeline.
// A nil *Metrics disables instrumentation; every record method is nil-safe
// so callers never branch on whether metrics are wired.
type Metrics struct {
	registry *prometheus.Registry

	conversionsTotal   *prometheus.CounterVec // by outcome: success, error
	conversionDuration prometheus.Histogram
	rowsProcessed      prometheus.Counter
	rowsSkipped        prometheus.Counter
	triplesEmitted     prometheus.Counter
	issuesTotal        *prometheus.CounterVec // by kind
}

// New creates the collectors and registers them, along with Go runtime and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		conversionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bibgraph",
			Subsystem: "convert",
			Name:      "runs_total",
			Help:      "Total number of conversion runs by outcome",
		}, []string{"outcome"}),

		conversionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bibgraph",
			Subsystem: "convert",
			Name:      "duration_seconds",
			Help:      "Conversion run duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),

		rowsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bibgraph",
			Subsystem: "convert",
			Name:      "rows_processed_total",
			Help:      "Total number of rows converted into triples",
		}),

		rowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bibgraph",
			Subsystem: "convert",
			Name:      "rows_skipped_total",
			Help:      "Total number of rows skipped for a missing identifier",
		}),

		triplesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bibgraph",
			Subsystem: "convert",
			Name:      "triples_total",
			Help:      "Total number of distinct triples produced",
		}),

		issuesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bibgraph",
			Subsystem: "convert",
			Name:      "issues_total",
			Help:      "Total number of recoverable conversion issues by kind",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.conversionsTotal,
		m.conversionDuration,
		m.rowsProcessed,
		m.rowsSkipped,
		m.triplesEmitted,
		m.issuesTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the underlying Prometheus registry for HTTP exposure.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRun records the outcome and duration of one conversion run.
func (m *Metrics) RecordRun(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.conversionsTotal.WithLabelValues(outcome).Inc()
	m.conversionDuration.Observe(duration.Seconds())
}

// RecordRows records the row accounting of one conversion run.
func (m *Metrics) RecordRows(processed, skipped, triples int) {
	if m == nil {
		return
	}
	m.rowsProcessed.Add(float64(processed))
	m.rowsSkipped.Add(float64(skipped))
	m.triplesEmitted.Add(float64(triples))
}

// RecordIssue counts one recoverable issue of the given kind.
func (m *Metrics) RecordIssue(kind string) {
	if m == nil {
		return
	}
	m.issuesTotal.WithLabelValues(kind).Inc()
}
