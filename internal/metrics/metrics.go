// Package metrics provides Prometheus metrics for the webcraft server
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the server.
// Each instance owns its registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StreamsInFlight     prometheus.Gauge

	// Turn metrics
	TurnsTotal         *prometheus.CounterVec
	TurnDuration       *prometheus.HistogramVec
	TokensTotal        *prometheus.CounterVec
	ContextUpdates     prometheus.Counter
	FilesExtracted     prometheus.Counter
	TemplateSelections *prometheus.CounterVec
}

// Turn outcomes
const (
	OutcomeCloud    = "cloud"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// NewMetrics creates and registers all metrics on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webcraft_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webcraft_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.StreamsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "webcraft_streams_in_flight",
			Help: "Number of message streams currently open",
		},
	)

	m.TurnsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webcraft_turns_total",
			Help: "Chat turns by outcome (cloud, fallback, error)",
		},
		[]string{"outcome"},
	)

	m.TurnDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webcraft_turn_duration_seconds",
			Help:    "Duration of chat turns in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"outcome"},
	)

	m.TokensTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webcraft_llm_tokens_total",
			Help: "Tokens reported by the cloud provider",
		},
		[]string{"direction"},
	)

	m.ContextUpdates = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "webcraft_context_updates_total",
			Help: "Project context merges that changed a conversation",
		},
	)

	m.FilesExtracted = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "webcraft_files_extracted_total",
			Help: "Project files extracted from assistant responses",
		},
	)

	m.TemplateSelections = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webcraft_template_selections_total",
			Help: "Local engine generations by template",
		},
		[]string{"template"},
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveTurn records one finished chat turn
func (m *Metrics) ObserveTurn(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.TurnsTotal.WithLabelValues(outcome).Inc()
	m.TurnDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// AddTokens records provider token usage
func (m *Metrics) AddTokens(input, output int64) {
	if m == nil {
		return
	}
	m.TokensTotal.WithLabelValues("input").Add(float64(input))
	m.TokensTotal.WithLabelValues("output").Add(float64(output))
}

// StreamOpened and StreamClosed track open SSE responses
func (m *Metrics) StreamOpened() {
	if m != nil {
		m.StreamsInFlight.Inc()
	}
}

func (m *Metrics) StreamClosed() {
	if m != nil {
		m.StreamsInFlight.Dec()
	}
}

// ContextUpdated counts a context merge that changed a conversation
func (m *Metrics) ContextUpdated() {
	if m != nil {
		m.ContextUpdates.Inc()
	}
}

// FilesSaved counts files extracted and saved from a response
func (m *Metrics) FilesSaved(n int) {
	if m != nil && n > 0 {
		m.FilesExtracted.Add(float64(n))
	}
}

// TemplateSelected counts a local engine generation
func (m *Metrics) TemplateSelected(id string) {
	if m != nil {
		m.TemplateSelections.WithLabelValues(id).Inc()
	}
}
