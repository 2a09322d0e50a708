// Package metrics exposes the engine's reconciliation lifecycle as
// Prometheus collectors. It consumes the same Option hooks (lumen.Options)
// that devtools and tracing consume, so all three can be installed
// together without interfering with each other.
//
// Grounded on the teacher's pkg/middleware/metrics.go: a promauto-built
// collector struct, options-style configuration, and a registry override
// for embedding into a host application's own metrics surface.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lumenjs/lumen"
)

// Config configures the metrics Recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "lumen").
	Namespace string
	// Registry is the Prometheus registerer metrics are registered
	// against (default: prometheus.DefaultRegisterer).
	Registry prometheus.Registerer
	// Buckets are the histogram buckets used for diff_duration_seconds.
	Buckets []float64
}

func defaultConfig() Config {
	return Config{
		Namespace: "lumen",
		Registry:  prometheus.DefaultRegisterer,
		Buckets:   prometheus.DefBuckets,
	}
}

// Option configures a Recorder.
type Option func(*Config)

// WithNamespace overrides the metrics namespace.
func WithNamespace(ns string) Option {
	return func(c *Config) { c.Namespace = ns }
}

// WithRegistry overrides the Prometheus registerer.
func WithRegistry(r prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = r }
}

// Recorder holds the collectors this package registers and exposes them
// for tests or a host's own /metrics handler composition.
type Recorder struct {
	diffDuration  prometheus.Histogram
	rendersTotal  *prometheus.CounterVec
	effectsGauge  prometheus.Gauge
	renderStarted map[*lumen.VNode]time.Time
}

// NewRecorder builds a Recorder and registers its collectors.
func NewRecorder(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Recorder{
		diffDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "diff_duration_seconds",
			Help:      "Duration of a single render-entry diff pass.",
			Buckets:   config.Buckets,
		}),
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "renders_total",
			Help:      "Total number of component renders, labeled by component name.",
		}, []string{"component"}),
		effectsGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "effects_pending",
			Help:      "Number of components with pending layout or post-paint effects at the last commit.",
		}),
		renderStarted: map[*lumen.VNode]time.Time{},
	}
}

// Install registers the recorder's hooks into the given Options, chaining
// any hooks already present rather than replacing them (so Install can
// compose with devtools.Server and tracing.Middleware, which also
// populate these same Option fields).
func (r *Recorder) Install(o *lumen.Options) {
	prevRoot := o.Root
	o.Root = func(v *lumen.VNode, container any) {
		if prevRoot != nil {
			prevRoot(v, container)
		}
		r.renderStarted[v] = time.Now()
	}

	prevRender := o.Render
	o.Render = func(v *lumen.VNode) {
		if prevRender != nil {
			prevRender(v)
		}
		r.rendersTotal.WithLabelValues(componentLabel(v)).Inc()
	}

	prevCommit := o.Commit
	o.Commit = func(root *lumen.VNode, pendingEffects int) {
		if prevCommit != nil {
			prevCommit(root, pendingEffects)
		}
		if start, ok := r.renderStarted[root]; ok {
			r.diffDuration.Observe(time.Since(start).Seconds())
			delete(r.renderStarted, root)
		}
		r.effectsGauge.Set(float64(pendingEffects))
	}
}

func componentLabel(v *lumen.VNode) string {
	return lumen.ComponentLabel(v)
}
