package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "toolcatalog"

// Metrics holds every collector the service exports. It satisfies
// registry.Observer and discovery.Observer.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpDuration *prometheus.HistogramVec
	routes       *prometheus.CounterVec
	searches     prometheus.Counter
	searchHits   prometheus.Histogram
	reloads      *prometheus.CounterVec
	tools        *prometheus.GaugeVec
	prompts      *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg. A nil reg uses a fresh
// private registry, so tests and multiple instances never collide.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route", "status"},
		),
		routes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "route_lookups_total",
				Help:      "Total number of tool page lookups",
			},
			[]string{"result"},
		),
		searches: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of tool searches",
			},
		),
		searchHits: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_results",
				Help:      "Number of tools returned per search",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		reloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_reloads_total",
				Help:      "Total number of catalog loads by trigger and outcome",
			},
			[]string{"source", "status"},
		),
		tools: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tools",
				Help:      "Number of tools in the live catalog",
			},
			[]string{"state"},
		),
		prompts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prompt_requests_total",
				Help:      "Total number of LLM prompt requests by task and outcome",
			},
			[]string{"task", "status"},
		),
	}
}

// ObserveHTTP records one served request. route is the matched route
// pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveRoute counts a tool page lookup.
func (m *Metrics) ObserveRoute(found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	m.routes.WithLabelValues(result).Inc()
}

// ObserveSearch counts a search and its result size.
func (m *Metrics) ObserveSearch(results int) {
	m.searches.Inc()
	m.searchHits.Observe(float64(results))
}

// ObserveReload counts a catalog load.
func (m *Metrics) ObserveReload(source string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.reloads.WithLabelValues(source, status).Inc()
}

// SetToolCounts publishes the live catalog size.
func (m *Metrics) SetToolCounts(total, visible int) {
	m.tools.WithLabelValues("total").Set(float64(total))
	m.tools.WithLabelValues("visible").Set(float64(visible))
}

// ObservePrompt counts an LLM prompt request.
func (m *Metrics) ObservePrompt(task, status string) {
	m.prompts.WithLabelValues(task, status).Inc()
}

// Handler serves the registered metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.gatherer }
