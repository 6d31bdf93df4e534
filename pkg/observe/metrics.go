package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics for observed instances.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reactview").
	Namespace string

	// Subsystem is the metrics subsystem (default: "observe").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the metrics set.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics counts synchronizer activity. A nil *Metrics records nothing, so
// instrumentation stays optional.
type Metrics struct {
	renders        prometheus.Counter
	invalidations  prometheus.Counter
	mountResyncs   prometheus.Counter
	skippedUpdates prometheus.Counter
	disposals      prometheus.Counter
}

// NewMetrics creates and registers the metrics set.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := MetricsConfig{
		Namespace: "reactview",
		Subsystem: "observe",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: cfg.ConstLabels,
		})
	}

	return &Metrics{
		renders:        counter("renders_total", "Tracked render executions that committed."),
		invalidations:  counter("invalidations_total", "Reaction invalidation callbacks fired."),
		mountResyncs:   counter("mount_resyncs_total", "Extra update passes forced at mount time."),
		skippedUpdates: counter("skipped_updates_total", "Update decisions that declined a re-render."),
		disposals:      counter("reaction_disposals_total", "Reactions disposed on unmount or abandonment."),
	}
}

func (m *Metrics) incRenders() {
	if m != nil {
		m.renders.Inc()
	}
}

func (m *Metrics) incInvalidations() {
	if m != nil {
		m.invalidations.Inc()
	}
}

func (m *Metrics) incMountResyncs() {
	if m != nil {
		m.mountResyncs.Inc()
	}
}

func (m *Metrics) incSkippedUpdates() {
	if m != nil {
		m.skippedUpdates.Inc()
	}
}

func (m *Metrics) incDisposals() {
	if m != nil {
		m.disposals.Inc()
	}
}
