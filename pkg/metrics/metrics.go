// Package metrics exposes Prometheus instrumentation for route
// registration and dispatch.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the metrics recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "glint").
	Namespace string

	// Subsystem is the metrics subsystem (default: "router").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for dispatch duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the metrics recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "glint",
		Subsystem: "router",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Recorder holds the Prometheus metrics for a route table and its server.
type Recorder struct {
	routesRegistered prometheus.Gauge
	dispatchesTotal  *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	socketJoins      prometheus.Counter
}

// New creates a Recorder registered against the configured registry.
func New(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Recorder{
		routesRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes_registered",
			Help:        "Number of routes in the built route table",
			ConstLabels: config.ConstLabels,
		}),

		dispatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatches_total",
			Help:        "Total dispatches by helper name and status",
			ConstLabels: config.ConstLabels,
		}, []string{"helper", "status"}),

		dispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatch_duration_seconds",
			Help:        "Dispatch duration in seconds by helper name",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"helper"}),

		socketJoins: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "socket_joins_total",
			Help:        "Total live socket join requests",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// SetRoutes records the size of the built route table.
func (r *Recorder) SetRoutes(n int) {
	if r == nil {
		return
	}
	r.routesRegistered.Set(float64(n))
}

// ObserveDispatch records one dispatch outcome.
func (r *Recorder) ObserveDispatch(helper, status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	if helper == "" {
		helper = "none"
	}
	r.dispatchesTotal.WithLabelValues(helper, status).Inc()
	r.dispatchDuration.WithLabelValues(helper).Observe(elapsed.Seconds())
}

// ObserveSocketJoin records a live socket join.
func (r *Recorder) ObserveSocketJoin() {
	if r == nil {
		return
	}
	r.socketJoins.Inc()
}
