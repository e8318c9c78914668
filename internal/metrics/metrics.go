// Package metrics exposes editor and generation activity as Prometheus
// metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "isoworld"

// Collector owns a private registry so several worlds can live in one
// process. It satisfies editor.Recorder.
type Collector struct {
	registry *prometheus.Registry

	layerRebuilds     *prometheus.CounterVec
	quadsEmitted      prometheus.Counter
	edits             *prometheus.CounterVec
	cutoffChanges     prometheus.Counter
	configAdjustments prometheus.Counter
	cutoff            prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		layerRebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layer_rebuilds_total",
			Help:      "Layer meshes rebuilt, by mode (full or occluded).",
		}, []string{"mode"}),
		quadsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quads_emitted_total",
			Help:      "Quads produced by layer rebuilds.",
		}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_total",
			Help:      "Tile edits, by result (applied or ignored).",
		}, []string{"result"}),
		cutoffChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cutoff_changes_total",
			Help:      "Changes of the visible layer cutoff.",
		}),
		configAdjustments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_adjustments_total",
			Help:      "Configuration values clamped into range at load time.",
		}),
		cutoff: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cutoff",
			Help:      "Current visible layer cutoff.",
		}),
	}
	c.registry.MustRegister(
		c.layerRebuilds,
		c.quadsEmitted,
		c.edits,
		c.cutoffChanges,
		c.configAdjustments,
		c.cutoff,
	)
	return c
}

func (c *Collector) LayerRebuilt(mode string, quads int) {
	c.layerRebuilds.WithLabelValues(mode).Inc()
	c.quadsEmitted.Add(float64(quads))
}

func (c *Collector) EditApplied(accepted bool) {
	result := "ignored"
	if accepted {
		result = "applied"
	}
	c.edits.WithLabelValues(result).Inc()
}

func (c *Collector) CutoffChanged(cutoff int) {
	c.cutoffChanges.Inc()
	c.cutoff.Set(float64(cutoff))
}

// ConfigAdjusted counts configuration values that were clamped.
func (c *Collector) ConfigAdjusted(n int) {
	if n > 0 {
		c.configAdjustments.Add(float64(n))
	}
}

// Registry returns the registry the collector's metrics live in.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's metrics in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
