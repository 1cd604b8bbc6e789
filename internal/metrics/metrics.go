package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	LabelsGenerated *prometheus.CounterVec
	RenderFailures  *prometheus.CounterVec
	RenderSeconds   prometheus.Histogram
	FieldDefaulted  *prometheus.CounterVec
	RateLimited     *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preizo_labels_generated_total",
		Help: "Price tags generated, by department, product type and format.",
	}, []string{"department", "product_type", "format"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preizo_render_failures_total",
		Help: "Documents that could not be serialized.",
	}, []string{"format"})
	renderSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "preizo_render_seconds",
		Help:    "Time spent planning and rendering one price tag.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
	defaulted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preizo_field_defaulted_total",
		Help: "Numeric fields that could not be parsed and fell back to zero.",
	}, []string{"field"})
	limited := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preizo_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	}, []string{"transport"})

	r.MustRegister(
		generated, failures, renderSeconds, defaulted, limited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		reg:             r,
		LabelsGenerated: generated,
		RenderFailures:  failures,
		RenderSeconds:   renderSeconds,
		FieldDefaulted:  defaulted,
		RateLimited:     limited,
	}
}

// Gatherer exposes the underlying registry, mostly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
