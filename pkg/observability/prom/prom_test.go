package prom

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetricsRecordEvents(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.OnGenerateStart(ctx, "tree", 10)
	m.OnGenerateComplete(ctx, "tree", 10, 9, time.Millisecond, nil)
	m.OnGenerateComplete(ctx, "tree", 0, 0, 0, errors.New("boom"))
	m.OnRenderStart(ctx, "svg")
	m.OnRenderComplete(ctx, "svg", 512, time.Millisecond, nil)
	m.OnCacheMiss(ctx, "graph")
	m.OnCacheSet(ctx, "graph", 100)
	m.OnCacheHit(ctx, "graph")
	m.OnCacheHit(ctx, "graph")

	assert.Equal(t, 1.0, counterValue(t, reg, "graphgen_generate_total", map[string]string{"shape": "tree", "result": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "graphgen_generate_total", map[string]string{"shape": "tree", "result": "error"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "graphgen_render_total", map[string]string{"format": "svg", "result": "ok"}))
	assert.Equal(t, 2.0, counterValue(t, reg, "graphgen_cache_operations_total", map[string]string{"key_type": "graph", "outcome": "hit"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "graphgen_cache_operations_total", map[string]string{"key_type": "graph", "outcome": "miss"}))
	assert.Equal(t, 100.0, counterValue(t, reg, "graphgen_cache_written_bytes_total", map[string]string{"key_type": "graph"}))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.OnGenerateComplete(context.Background(), "halin", 8, 12, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "graphgen.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `graphgen_generate_total{result="ok",shape="halin"} 1`), string(data))
}
