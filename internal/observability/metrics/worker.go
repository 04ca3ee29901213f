package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkerMetrics covers the reminder worker loop.
type WorkerMetrics struct {
	registry *prometheus.Registry

	scansTotal         *prometheus.CounterVec
	scanDuration       prometheus.Histogram
	remindersPublished prometheus.Counter
	remindersConsumed  prometheus.Counter
}

func NewWorkerMetrics() *WorkerMetrics {
	registry := prometheus.NewRegistry()

	scansTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Subsystem: "worker",
			Name:      "reminder_scans_total",
			Help:      "Reminder scan runs, by outcome.",
		},
		[]string{"outcome"},
	)
	scanDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "assistant",
			Subsystem: "worker",
			Name:      "reminder_scan_duration_seconds",
			Help:      "Duration of a reminder scan run.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	remindersPublished := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Subsystem: "worker",
			Name:      "reminders_published_total",
			Help:      "Reminder events published to the queue.",
		},
	)
	remindersConsumed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Subsystem: "worker",
			Name:      "reminders_consumed_total",
			Help:      "Reminder events consumed from the queue.",
		},
	)

	registry.MustRegister(scansTotal, scanDuration, remindersPublished, remindersConsumed)

	return &WorkerMetrics{
		registry:           registry,
		scansTotal:         scansTotal,
		scanDuration:       scanDuration,
		remindersPublished: remindersPublished,
		remindersConsumed:  remindersConsumed,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) ObserveScan(published int, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.scansTotal.WithLabelValues(outcome).Inc()
	m.scanDuration.Observe(duration.Seconds())
	if published > 0 {
		m.remindersPublished.Add(float64(published))
	}
}

func (m *WorkerMetrics) ReminderConsumed() {
	m.remindersConsumed.Inc()
}
