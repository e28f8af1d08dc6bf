// Package prom implements the observability hooks with Prometheus metrics.
//
// The CLI is short-lived, so metrics are not scraped. Instead [Metrics]
// writes them in the node_exporter textfile format with [Metrics.WriteTextfile]
// at the end of a batch run.
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ryansmg/graphgen/pkg/observability"
)

// Metrics records generation, render and cache events.
type Metrics struct {
	reg prometheus.Gatherer

	generateTotal    *prometheus.CounterVec
	generateDuration *prometheus.HistogramVec
	generateNodes    *prometheus.HistogramVec
	renderTotal      *prometheus.CounterVec
	renderDuration   *prometheus.HistogramVec
	renderBytes      *prometheus.HistogramVec
	cacheTotal       *prometheus.CounterVec
	cacheBytes       *prometheus.CounterVec
}

// New registers graphgen metrics on reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,

		// generateTotal counts generated graphs by shape and result
		generateTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphgen_generate_total",
			Help: "Graphs generated by shape and result",
		}, []string{"shape", "result"}),

		generateDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphgen_generate_duration_seconds",
			Help:    "Generation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"shape"}),

		generateNodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphgen_generate_nodes",
			Help:    "Requested node count per generated graph",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		}, []string{"shape"}),

		renderTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphgen_render_total",
			Help: "Rendered outputs by format and result",
		}, []string{"format", "result"}),

		renderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphgen_render_duration_seconds",
			Help:    "Render duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"format"}),

		renderBytes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphgen_render_bytes",
			Help:    "Rendered output size in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 8, 8),
		}, []string{"format"}),

		cacheTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphgen_cache_operations_total",
			Help: "Cache lookups and writes by key type and outcome",
		}, []string{"key_type", "outcome"}),

		cacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphgen_cache_written_bytes_total",
			Help: "Bytes written to the cache by key type",
		}, []string{"key_type"}),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) OnGenerateStart(_ context.Context, shape string, nodes int) {
	m.generateNodes.WithLabelValues(shape).Observe(float64(nodes))
}

func (m *Metrics) OnGenerateComplete(_ context.Context, shape string, _, _ int, d time.Duration, err error) {
	m.generateTotal.WithLabelValues(shape, result(err)).Inc()
	if err == nil {
		m.generateDuration.WithLabelValues(shape).Observe(d.Seconds())
	}
}

func (m *Metrics) OnRenderStart(context.Context, string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	m.renderTotal.WithLabelValues(format, result(err)).Inc()
	if err == nil {
		m.renderDuration.WithLabelValues(format).Observe(d.Seconds())
		m.renderBytes.WithLabelValues(format).Observe(float64(size))
	}
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheTotal.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheTotal.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheTotal.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

var (
	_ observability.GenerateHooks = (*Metrics)(nil)
	_ observability.CacheHooks    = (*Metrics)(nil)
)
