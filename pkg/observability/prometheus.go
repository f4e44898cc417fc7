package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/linkrank/pkg/errors"
)

// Prometheus implements [GraphHooks] and [HTTPHooks] with Prometheus
// metrics on a private registry.
type Prometheus struct {
	registry *prometheus.Registry

	mutations      *prometheus.CounterVec
	mutationTime   *prometheus.HistogramVec
	searches       *prometheus.CounterVec
	searchTime     prometheus.Histogram
	pages          prometheus.Gauge
	links          prometheus.Gauge
	requests       *prometheus.CounterVec
	requestSeconds *prometheus.HistogramVec
}

// NewPrometheus creates the collectors and registers them, together with
// the Go runtime and process collectors, on a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkrank_mutations_total",
			Help: "Graph mutations by operation and result code",
		}, []string{"op", "result"}),
		mutationTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "linkrank_mutation_duration_seconds",
			Help:    "Graph mutation duration including rank recompute",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
		}, []string{"op"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkrank_searches_total",
			Help: "Keyword searches by whether anything matched",
		}, []string{"matched"}),
		searchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "linkrank_search_duration_seconds",
			Help:    "Keyword search duration",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
		}),
		pages: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkrank_pages",
			Help: "Pages in the current graph snapshot",
		}),
		links: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkrank_links",
			Help: "Links in the current graph snapshot",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkrank_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "linkrank_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	p.registry.MustRegister(
		p.mutations, p.mutationTime, p.searches, p.searchTime,
		p.pages, p.links, p.requests, p.requestSeconds,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return p
}

// Registry returns the registry holding the linkrank collectors.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// OnMutation implements GraphHooks.
func (p *Prometheus) OnMutation(_ context.Context, op string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = string(errors.GetCode(err))
		if result == "" {
			result = string(errors.ErrCodeInternal)
		}
	}
	p.mutations.WithLabelValues(op, result).Inc()
	p.mutationTime.WithLabelValues(op).Observe(d.Seconds())
}

// OnSearch implements GraphHooks.
func (p *Prometheus) OnSearch(_ context.Context, _ string, results int, d time.Duration) {
	p.searches.WithLabelValues(strconv.FormatBool(results > 0)).Inc()
	p.searchTime.Observe(d.Seconds())
}

// OnSnapshot implements GraphHooks.
func (p *Prometheus) OnSnapshot(_ context.Context, pages, links int) {
	p.pages.Set(float64(pages))
	p.links.Set(float64(links))
}

// OnRequest implements HTTPHooks.
func (p *Prometheus) OnRequest(context.Context, string, string) {}

// OnResponse implements HTTPHooks.
func (p *Prometheus) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.requestSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ GraphHooks = (*Prometheus)(nil)
	_ HTTPHooks  = (*Prometheus)(nil)
)
