package pipeline

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ryansmg/graphgen/pkg/cache"
	"github.com/ryansmg/graphgen/pkg/errors"
	graphio "github.com/ryansmg/graphgen/pkg/io"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

func intPtr(v int) *int { return &v }

func quietRunner(t *testing.T, c cache.Cache) *Runner {
	t.Helper()
	return NewRunner(c, nil, log.NewWithOptions(io.Discard, log.Options{}))
}

func TestValidateShuffle(t *testing.T) {
	for _, mode := range ShuffleModes {
		if err := ValidateShuffle(mode); err != nil {
			t.Errorf("ValidateShuffle(%q) = %v", mode, err)
		}
	}
	for _, mode := range []string{"", "ALL", "random"} {
		if err := ValidateShuffle(mode); !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("ValidateShuffle(%q) = %v, want INVALID_ARGUMENT", mode, err)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"Defaults", Options{Shape: "tree", Nodes: 5}, ""},
		{"ShapeCaseInsensitive", Options{Shape: " Halin ", Nodes: 5}, ""},
		{"UnknownShape", Options{Shape: "hypercube"}, errors.ErrCodeInvalidShape},
		{"EmptyShape", Options{}, errors.ErrCodeInvalidShape},
		{"BadShuffle", Options{Shape: "tree", Shuffle: "sideways"}, errors.ErrCodeInvalidArgument},
		{"BadFormat", Options{Shape: "tree", Format: "xml"}, errors.ErrCodeInvalidFormat},
		{"TreeOnNonTreeShape", Options{Shape: "halin", AsTree: true}, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tt.opts.Shuffle != DefaultShuffle || tt.opts.Format != graphio.FormatPlain {
					t.Errorf("defaults not applied: shuffle %q format %q", tt.opts.Shuffle, tt.opts.Format)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestGraphKeyOptsIgnoresFormat(t *testing.T) {
	a := Options{Shape: "tree", Nodes: 4, Seed: 1, Format: graphio.FormatPlain}
	b := Options{Shape: "tree", Nodes: 4, Seed: 1, Format: graphio.FormatJSON}
	k := cache.NewDefaultKeyer()
	if k.GraphKey("tree", a.GraphKeyOpts()) != k.GraphKey("tree", b.GraphKeyOpts()) {
		t.Error("format must not change the graph key")
	}
}

func TestGraphKeyOptsPinnedZero(t *testing.T) {
	unset := Options{Shape: "star", Nodes: 4, Seed: 1}
	zero := Options{Shape: "star", Nodes: 4, Seed: 1, Root: intPtr(0)}
	k := cache.NewDefaultKeyer()
	if k.GraphKey("star", unset.GraphKeyOpts()) == k.GraphKey("star", zero.GraphKeyOpts()) {
		t.Error("an explicit root 0 must not share the key of an unset root")
	}
}

func TestLookupShape(t *testing.T) {
	for _, name := range ShapeNames() {
		s, err := LookupShape(name)
		if err != nil || s.Name != name {
			t.Errorf("LookupShape(%q) = %v, %v", name, s.Name, err)
		}
	}
	if _, err := LookupShape("nope"); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("LookupShape(nope) = %v", err)
	}
}

func TestGenerateEveryShape(t *testing.T) {
	tests := []struct {
		opts      Options
		wantEdges int
	}{
		{Options{Shape: "tree", Nodes: 20}, 19},
		{Options{Shape: "tree", Nodes: 20, Elongation: intPtr(0)}, 19},
		{Options{Shape: "tree-no-deg2", Nodes: 20}, 19},
		{Options{Shape: "halin", Nodes: 20}, -1},
		{Options{Shape: "cactus", Nodes: 20, TreeNodes: 10, Cycles: 4}, 23},
		{Options{Shape: "connected", Nodes: 20, Edges: 30}, 30},
		{Options{Shape: "random", Nodes: 20, Edges: 30}, 30},
		{Options{Shape: "path", Nodes: 20, First: intPtr(3), Last: intPtr(4)}, 19},
		{Options{Shape: "star", Nodes: 20, Root: intPtr(7)}, 19},
		{Options{Shape: "skeleton", Nodes: 20}, 19},
		{Options{Shape: "complete", Nodes: 20}, 190},
	}
	for _, tt := range tests {
		t.Run(tt.opts.Shape, func(t *testing.T) {
			g, tree, err := Generate(rnd.New(1), tt.opts)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if tree != nil {
				t.Error("tree returned without AsTree")
			}
			if g.NodeCount() != 20 {
				t.Errorf("NodeCount() = %d, want 20", g.NodeCount())
			}
			if tt.wantEdges >= 0 && g.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), tt.wantEdges)
			}
		})
	}
}

func TestGenerateAsTree(t *testing.T) {
	for _, s := range Shapes {
		if !s.Tree {
			continue
		}
		t.Run(s.Name, func(t *testing.T) {
			g, tree, err := Generate(rnd.New(3), Options{Shape: s.Name, Nodes: 12, AsTree: true, Shuffle: ShuffleAllUndir})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if tree == nil || !g.IsTree() {
				t.Fatalf("expected a tree, got tree=%v IsTree=%v", tree, g.IsTree())
			}
			if tree.EdgeCount() != g.EdgeCount() {
				t.Errorf("tree and graph disagree: %d vs %d edges", tree.EdgeCount(), g.EdgeCount())
			}
		})
	}
}

func TestGenerateParameterErrors(t *testing.T) {
	tests := []Options{
		{Shape: "tree", Nodes: 0},
		{Shape: "halin", Nodes: 3},
		{Shape: "skeleton", Nodes: 5},
		{Shape: "random", Nodes: 3, Edges: 4},
		{Shape: "cactus", Nodes: 5, TreeNodes: 5, Cycles: 1},
		{Shape: "star", Nodes: 5, Root: intPtr(0)},
		{Shape: "path", Nodes: 5, First: intPtr(0)},
		{Shape: "path", Nodes: 5, Last: intPtr(0)},
		{Shape: "tree", Nodes: 1 << 30},
	}
	for _, opts := range tests {
		_, _, err := Generate(rnd.New(1), opts)
		if !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("Generate(%+v) error = %v, want INVALID_ARGUMENT", opts, err)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{Shape: "connected", Nodes: 30, Edges: 45, Seed: 9, Shuffle: ShuffleAllUndir}
	a, _, err := Generate(rnd.New(opts.Seed), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Generate(rnd.New(opts.Seed), opts)
	if err != nil {
		t.Fatal(err)
	}
	ae, be := a.Edges(), b.Edges()
	for i := range ae {
		if ae[i] != be[i] {
			t.Fatalf("edge %d differs: %v vs %v", i, ae[i], be[i])
		}
	}
}

func TestShuffleNoneKeepsOrder(t *testing.T) {
	g, _, err := Generate(rnd.New(1), Options{Shape: "skeleton", Nodes: 6, Shuffle: ShuffleNone})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := graphio.WriteEdges(&buf, g); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1 2\n2 3\n3 4\n2 5\n3 6\n" {
		t.Errorf("unshuffled skeleton = %q", buf.String())
	}
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := quietRunner(t, fc)
	defer r.Close()

	opts := Options{Shape: "tree", Nodes: 6, Seed: 42, Format: graphio.FormatPlain}
	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheHit {
		t.Error("first run should miss the cache")
	}
	if first.RunID == "" {
		t.Error("missing run id")
	}
	if !strings.HasPrefix(string(first.Output), "6 5\n") {
		t.Errorf("Output = %q", first.Output)
	}
	if first.Stats.NodeCount != 6 || first.Stats.EdgeCount != 5 || first.Stats.Components != 1 {
		t.Errorf("Stats = %+v", first.Stats)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run should hit the cache")
	}
	if string(second.Output) != string(first.Output) {
		t.Errorf("cached output differs:\n%s\nvs\n%s", second.Output, first.Output)
	}
	if second.RunID == first.RunID {
		t.Error("run ids should be unique")
	}

	// Another format reuses the cached graph.
	opts.Format = graphio.FormatJSON
	asJSON, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !asJSON.CacheHit || !strings.Contains(string(asJSON.Output), `"nodes": 6`) {
		t.Errorf("json run: hit=%v output=%s", asJSON.CacheHit, asJSON.Output)
	}

	opts.Refresh = true
	refreshed, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerExecuteAsTreeFromCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := quietRunner(t, fc)
	opts := Options{Shape: "path", Nodes: 5, AsTree: true}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !res.CacheHit || res.Tree == nil {
		t.Errorf("hit=%v tree=%v", res.CacheHit, res.Tree)
	}
}

func TestRunnerExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := quietRunner(t, nil).Execute(ctx, Options{Shape: "tree", Nodes: 3})
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRunnerExecuteInvalid(t *testing.T) {
	_, err := quietRunner(t, nil).Execute(context.Background(), Options{Shape: "tree", Nodes: -1})
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("error = %v", err)
	}
}

func TestRenderWithCacheInfo(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := quietRunner(t, fc)
	g, _, err := Generate(rnd.New(1), Options{Shape: "star", Nodes: 4, Shuffle: ShuffleNone})
	if err != nil {
		t.Fatal(err)
	}

	opts := RenderOptions{Formats: []string{FormatDOT, FormatSVG}}
	out, hit, err := r.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		t.Fatalf("RenderWithCacheInfo: %v", err)
	}
	if hit {
		t.Error("first render should miss")
	}
	if !strings.Contains(string(out[FormatDOT]), "1 -- 2;") {
		t.Errorf("dot = %s", out[FormatDOT])
	}
	if !strings.Contains(string(out[FormatSVG]), "<svg") {
		t.Error("svg missing <svg> tag")
	}

	_, hit, err = r.RenderWithCacheInfo(ctx, g, opts)
	if err != nil || !hit {
		t.Errorf("second render hit=%v err=%v", hit, err)
	}
}

func TestRenderOptionsValidate(t *testing.T) {
	o := RenderOptions{}
	if err := o.ValidateFormats(); err != nil || len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("default formats = %v, %v", o.Formats, err)
	}
	o = RenderOptions{Formats: []string{"pdf"}}
	if err := o.ValidateFormats(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("pdf error = %v", err)
	}
}
