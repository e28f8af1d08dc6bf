package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ryansmg/graphgen/pkg/cache"
	"github.com/ryansmg/graphgen/pkg/graph"
	graphio "github.com/ryansmg/graphgen/pkg/io"
	"github.com/ryansmg/graphgen/pkg/observability"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options as long as the
// cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute generates, shuffles and formats one graph. The generated graph is
// cached by its parameters unless opts.Refresh is set, in which case it is
// regenerated and the cache entry replaced.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID[:8], "shape", opts.Shape)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	g, t, hit, err := r.GraphWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Graph, result.Tree, result.CacheHit = g, t, hit
	result.Stats.GenerateTime = time.Since(start)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.Components = g.ComponentCount()

	logger.Info("generated graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	out, err := r.Format(ctx, g, opts.Format)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Stats.FormatTime = time.Since(start)

	logger.Debug("formatted output",
		"format", opts.Format,
		"bytes", len(out),
		"duration", result.Stats.FormatTime)

	return result, nil
}

// GraphWithCacheInfo returns the graph for opts from the cache or by
// generating it, and reports whether the cache was hit.
func (r *Runner) GraphWithCacheInfo(ctx context.Context, opts Options) (*graph.Graph, *graph.Tree, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, false, err
	}
	cacheKey := r.Keyer.GraphKey(opts.Shape, opts.GraphKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		} else if hit {
			if g, t, err := decodeCached(data, opts.AsTree); err == nil {
				hooks.OnCacheHit(ctx, "graph")
				return g, t, true, nil
			}
			r.Logger.Debug("discarding unreadable cache entry", "key", cacheKey)
		}
		hooks.OnCacheMiss(ctx, "graph")
	}

	gen := observability.Generate()
	gen.OnGenerateStart(ctx, opts.Shape, opts.Nodes)
	start := time.Now()
	g, t, err := Generate(rnd.New(opts.Seed), opts)
	if err != nil {
		gen.OnGenerateComplete(ctx, opts.Shape, opts.Nodes, 0, time.Since(start), err)
		return nil, nil, false, err
	}
	gen.OnGenerateComplete(ctx, opts.Shape, g.NodeCount(), g.EdgeCount(), time.Since(start), nil)

	var buf bytes.Buffer
	if err := graphio.WriteJSON(&buf, g); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLGraph); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		} else {
			hooks.OnCacheSet(ctx, "graph", buf.Len())
		}
	}
	return g, t, false, nil
}

func decodeCached(data []byte, asTree bool) (*graph.Graph, *graph.Tree, error) {
	g, err := graphio.ReadJSON(bytes.NewReader(data))
	if err != nil || !asTree {
		return g, nil, err
	}
	t, err := graph.NewTree(g)
	if err != nil {
		return nil, nil, err
	}
	return g, t, nil
}

// Format writes g in the given format and reports the render to the hooks.
func (r *Runner) Format(ctx context.Context, g *graph.Graph, format graphio.Format) ([]byte, error) {
	hooks := observability.Generate()
	hooks.OnRenderStart(ctx, string(format))
	start := time.Now()

	var buf bytes.Buffer
	err := graphio.Write(&buf, g, format)
	hooks.OnRenderComplete(ctx, string(format), buf.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
