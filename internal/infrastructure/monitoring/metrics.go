package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. Each instance carries its own
// registry so repeated construction never collides.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Dispatch metrics
	DispatchTotal *prometheus.CounterVec

	// Model call metrics
	ModelCalls    *prometheus.CounterVec
	ModelDuration *prometheus.HistogramVec
	ModelInFlight prometheus.Gauge

	// Catalog metrics
	CatalogAnnouncements prometheus.Counter
	CatalogLoaded        prometheus.Gauge

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// New creates a metrics collector on a fresh registry.
func New() *Metrics {
	return NewWith(prometheus.NewRegistry())
}

// NewWith creates a metrics collector on the given registry.
func NewWith(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	m := &Metrics{
		registry:  registry,
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "a2ui_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "a2ui_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "a2ui_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "a2ui_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		// Dispatch metrics
		DispatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "a2ui_dispatch_total",
				Help: "Total number of dispatched client messages",
			},
			[]string{"kind", "outcome"},
		),

		// Model call metrics
		ModelCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "a2ui_model_calls_total",
				Help: "Total number of model provider calls",
			},
			[]string{"provider", "pass", "status"},
		),
		ModelDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "a2ui_model_call_duration_seconds",
				Help:    "Model provider call duration in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"provider", "pass"},
		),
		ModelInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "a2ui_model_calls_in_flight",
				Help: "Number of model provider calls currently in flight",
			},
		),

		// Catalog metrics
		CatalogAnnouncements: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "a2ui_catalog_announcements_total",
				Help: "Total number of capability catalog announcements",
			},
		),
		CatalogLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "a2ui_catalog_loaded",
				Help: "Whether a capability catalog is currently stored (0 or 1)",
			},
		),

		// System metrics
		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "a2ui_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// Handler exposes this collector's registry in Prometheus format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordDispatch records a classified client message and its outcome.
func (m *Metrics) RecordDispatch(kind, outcome string) {
	m.DispatchTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordModelCall records one provider call.
func (m *Metrics) RecordModelCall(provider, pass, status string, duration time.Duration) {
	m.ModelCalls.WithLabelValues(provider, pass, status).Inc()
	m.ModelDuration.WithLabelValues(provider, pass).Observe(duration.Seconds())
}

// RecordCatalogAnnouncement records a catalog overwrite.
func (m *Metrics) RecordCatalogAnnouncement() {
	m.CatalogAnnouncements.Inc()
	m.CatalogLoaded.Set(1)
}
