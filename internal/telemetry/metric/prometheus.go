// Package metric provides Prometheus metrics for stripelist tooling.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stripelist"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// OpsTotal counts list operations by op and result.
	OpsTotal *prometheus.CounterVec
	// OpDuration observes list operation latency by op.
	OpDuration *prometheus.HistogramVec
	// WorkersActive is the number of running workload goroutines.
	WorkersActive prometheus.Gauge
}

// NewRegistry creates a registry with the operation metrics and the Go
// runtime collectors registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		OpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops_total",
			Help:      "List operations issued, by operation and result.",
		}, []string{"op", "result"}),
		OpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "op_duration_seconds",
			Help:      "List operation latency.",
			Buckets:   prometheus.ExponentialBuckets(50e-9, 4, 12),
		}, []string{"op"}),
		WorkersActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers_active",
			Help:      "Workload goroutines currently running.",
		}),
	}

	r.registry.MustRegister(
		r.OpsTotal,
		r.OpDuration,
		r.WorkersActive,
		collectors.NewGoCollector(),
	)
	return r
}

// Register adds a collector to the registry.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// Gatherer exposes the underlying registry for scraping and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// ObserveOp records one operation outcome.
func (r *Registry) ObserveOp(op string, d time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.OpsTotal.WithLabelValues(op, result).Inc()
	r.OpDuration.WithLabelValues(op).Observe(d.Seconds())
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		Registry: r.registry,
	})
}
