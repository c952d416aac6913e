package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

const namespace = "tasksetgen"

// Status label values.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Collector groups generation instruments on a private registry so that
// several collectors (e.g. in tests) never clash on the global one.
type Collector struct {
	registry    *prometheus.Registry
	tasksets    *prometheus.CounterVec
	attempts    prometheus.Counter
	deviation   prometheus.Histogram
	hyperperiod prometheus.Gauge
}

// New creates a collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		tasksets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tasksets_total",
				Help:      "Total number of requirements processed, by outcome.",
			},
			[]string{"status"},
		),
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempts_total",
			Help:      "Total number of generation attempts.",
		}),
		deviation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "utilization_deviation",
			Help:      "Absolute deviation between requested and generated utilization.",
			Buckets:   []float64{0, 0.01, 0.02, 0.05, 0.1},
		}),
		hyperperiod: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_hyperperiod",
			Help:      "Hyperperiod of the most recently generated taskset.",
		}),
	}
	c.registry.MustRegister(c.tasksets, c.attempts, c.deviation, c.hyperperiod)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler serving the collector's metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Attempt records one generation attempt.
func (c *Collector) Attempt() {
	if c == nil {
		return
	}
	c.attempts.Inc()
}

// Succeeded records a generated taskset.
func (c *Collector) Succeeded(deviation float64, hyperperiod int64) {
	if c == nil {
		return
	}
	c.tasksets.WithLabelValues(StatusSucceeded).Inc()
	c.deviation.Observe(deviation)
	c.hyperperiod.Set(float64(hyperperiod))
}

// Failed records a rejected requirement.
func (c *Collector) Failed() {
	if c == nil {
		return
	}
	c.tasksets.WithLabelValues(StatusFailed).Inc()
}
