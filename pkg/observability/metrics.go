package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "folio"

// Metrics holds the collectors for history, export, edits and notifications.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	historyOps      *prometheus.CounterVec
	historyDuration *prometheus.HistogramVec
	exports         *prometheus.CounterVec
	exportDuration  *prometheus.HistogramVec
	edits           *prometheus.CounterVec
	notifications   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		historyOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "history_operations_total",
				Help:      "Saved document operations by outcome",
			},
			[]string{"op", "outcome"},
		),
		historyDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "history_operation_duration_seconds",
				Help:      "Duration of saved document operations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Print and PDF exports by outcome",
			},
			[]string{"kind", "outcome"},
		),
		exportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "export_duration_seconds",
				Help:      "Duration of print and PDF exports",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		edits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edits_total",
				Help:      "Document edits applied, by operation",
			},
			[]string{"op"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "User notifications emitted, by level",
			},
			[]string{"level"},
		),
	}
	reg.MustRegister(m.historyOps, m.historyDuration, m.exports, m.exportDuration, m.edits, m.notifications)
	return m
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveHistory records one history operation.
func (m *Metrics) ObserveHistory(op string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.historyOps.WithLabelValues(op, outcome(err)).Inc()
	m.historyDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// ObserveExport records one export.
func (m *Metrics) ObserveExport(kind string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(kind, outcome(err)).Inc()
	m.exportDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// CountEdit records one applied edit.
func (m *Metrics) CountEdit(op string) {
	if m == nil {
		return
	}
	m.edits.WithLabelValues(op).Inc()
}

// CountNotification records one emitted notification.
func (m *Metrics) CountNotification(level string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(level).Inc()
}
