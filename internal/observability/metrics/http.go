package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServerMetrics covers the API server: request accounting plus the
// summarization pipeline counters.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	summariesCreatedTotal *prometheus.CounterVec
	onlineAttemptsTotal   *prometheus.CounterVec
	refreshTotal          *prometheus.CounterVec
	commandsTotal         *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "assistant",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "assistant",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	summariesCreatedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Subsystem: "summaries",
			Name:      "created_total",
			Help:      "Summary records created, by source and online outcome.",
		},
		[]string{"service", "source", "online"},
	)
	onlineAttemptsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Subsystem: "summaries",
			Name:      "online_attempts_total",
			Help:      "Online summarization attempts, by outcome.",
		},
		[]string{"service", "outcome"},
	)
	refreshTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Subsystem: "summaries",
			Name:      "refresh_total",
			Help:      "Summary refresh requests, by outcome.",
		},
		[]string{"service", "outcome"},
	)
	commandsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Subsystem: "copilot",
			Name:      "commands_total",
			Help:      "Dispatched assistant commands, by resolved action.",
		},
		[]string{"service", "action"},
	)

	registry.MustRegister(
		requestTotal, requestDuration, requestInFlight,
		summariesCreatedTotal, onlineAttemptsTotal, refreshTotal, commandsTotal,
	)

	return &HTTPServerMetrics{
		registry:              registry,
		requestTotal:          requestTotal,
		requestDuration:       requestDuration,
		requestInFlight:       requestInFlight,
		summariesCreatedTotal: summariesCreatedTotal,
		onlineAttemptsTotal:   onlineAttemptsTotal,
		refreshTotal:          refreshTotal,
		commandsTotal:         commandsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) ObserveRequest(service, method, path string, status int, duration time.Duration) {
	m.requestTotal.WithLabelValues(service, method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) StartRequest()  { m.requestInFlight.Inc() }
func (m *HTTPServerMetrics) FinishRequest() { m.requestInFlight.Dec() }

func (m *HTTPServerMetrics) SummaryCreated(service, source string, hasOnline bool) {
	m.summariesCreatedTotal.WithLabelValues(service, source, strconv.FormatBool(hasOnline)).Inc()
	if hasOnline {
		m.onlineAttemptsTotal.WithLabelValues(service, "success").Inc()
	}
}

func (m *HTTPServerMetrics) OnlineAttemptFailed(service string) {
	m.onlineAttemptsTotal.WithLabelValues(service, "error").Inc()
}

func (m *HTTPServerMetrics) RefreshObserved(service string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.refreshTotal.WithLabelValues(service, outcome).Inc()
}

func (m *HTTPServerMetrics) CommandDispatched(service, action string) {
	m.commandsTotal.WithLabelValues(service, action).Inc()
}
