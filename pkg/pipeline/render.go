package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ryansmg/graphgen/pkg/cache"
	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/graph"
	graphio "github.com/ryansmg/graphgen/pkg/io"
	"github.com/ryansmg/graphgen/pkg/observability"
	"github.com/ryansmg/graphgen/pkg/render/nodelink"
)

// Diagram output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidDiagramFormats is the set of supported diagram formats.
var ValidDiagramFormats = []string{FormatDOT, FormatSVG, FormatPNG}

// RenderOptions configures diagram rendering.
type RenderOptions struct {
	Formats  []string
	Directed bool
	Detailed bool
	Label    string
}

// ValidateFormats checks every requested diagram format. An empty list
// selects SVG.
func (o *RenderOptions) ValidateFormats() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	for _, f := range o.Formats {
		if !slices.Contains(ValidDiagramFormats, f) {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid diagram format %q (must be one of: %s)", f, strings.Join(ValidDiagramFormats, ", "))
		}
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *RenderOptions) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Directed: o.Directed,
		Detailed: o.Detailed,
		Label:    o.Label,
	}
}

// RenderWithCacheInfo renders g as a diagram in every requested format.
// Artifacts are cached by the graph's content hash; the boolean reports
// whether all formats came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, opts RenderOptions) (map[string][]byte, bool, error) {
	if err := opts.ValidateFormats(); err != nil {
		return nil, false, err
	}

	var graphData bytes.Buffer
	if err := graphio.WriteJSON(&graphData, g); err != nil {
		return nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	graphHash := cache.Hash(graphData.Bytes())
	hooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, "artifact")
			break
		}
		hooks.OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := Render(ctx, g, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, false, nil
}

// Render renders g without caching.
func Render(ctx context.Context, g *graph.Graph, opts RenderOptions) (map[string][]byte, error) {
	if err := opts.ValidateFormats(); err != nil {
		return nil, err
	}
	dot := nodelink.ToDOT(g, nodelink.Options{
		Directed: opts.Directed,
		Detailed: opts.Detailed,
		Label:    opts.Label,
	})
	hooks := observability.Generate()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		var data []byte
		var err error
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot)
		}
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
