package pipeline

import (
	"slices"
	"strings"

	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/graph"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// Shape describes a registered generator.
type Shape struct {
	Name    string
	Summary string
	// Params lists the Options fields the shape reads, for help output.
	Params []string
	// Tree reports whether every result is a tree.
	Tree  bool
	build func(r *rnd.Source, o Options) (*graph.Graph, error)
}

// Shapes lists all generators in display order.
var Shapes = []Shape{
	{
		Name:    "tree",
		Summary: "uniform random tree, or weighted by elongation",
		Params:  []string{"n", "elongation"},
		Tree:    true,
		build: func(r *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.RandomTree(r, o.Nodes, o.graphOptions()...)
		},
	},
	{
		Name:    "tree-no-deg2",
		Summary: "random tree with no degree-2 nodes",
		Params:  []string{"n", "elongation"},
		Tree:    true,
		build: func(r *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.TreeWithoutDegree2(r, o.Nodes, o.graphOptions()...)
		},
	},
	{
		Name:    "halin",
		Summary: "tree without degree-2 nodes plus a cycle through its leaves",
		Params:  []string{"n", "elongation"},
		build: func(r *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.Halin(r, o.Nodes, o.graphOptions()...)
		},
	},
	{
		Name:    "cactus",
		Summary: "connected graph where every edge is on at most one cycle",
		Params:  []string{"n", "tree_nodes", "cycles", "elongation"},
		build: func(r *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.Cactus(r, o.Nodes, o.TreeNodes, o.Cycles, o.graphOptions()...)
		},
	},
	{
		Name:    "connected",
		Summary: "connected simple graph with m edges",
		Params:  []string{"n", "m", "elongation"},
		build: func(r *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.Connected(r, o.Nodes, o.Edges, o.graphOptions()...)
		},
	},
	{
		Name:    "random",
		Summary: "simple graph with m uniformly random edges",
		Params:  []string{"n", "m"},
		build: func(r *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.Random(r, o.Nodes, o.Edges)
		},
	},
	{
		Name:    "path",
		Summary: "random Hamiltonian path with optional fixed ends",
		Params:  []string{"n", "first", "last"},
		Tree:    true,
		build: func(r *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.Path(r, o.Nodes, o.graphOptions()...)
		},
	},
	{
		Name:    "star",
		Summary: "one center joined to every other node",
		Params:  []string{"n", "root"},
		Tree:    true,
		build: func(_ *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.Star(o.Nodes, o.graphOptions()...)
		},
	},
	{
		Name:    "skeleton",
		Summary: "path with one leaf on every interior node (even n)",
		Params:  []string{"n"},
		Tree:    true,
		build: func(_ *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.Skeleton(o.Nodes)
		},
	},
	{
		Name:    "complete",
		Summary: "every pair of nodes joined",
		Params:  []string{"n"},
		build: func(_ *rnd.Source, o Options) (*graph.Graph, error) {
			return graph.Complete(o.Nodes)
		},
	},
}

// ShapeNames returns the registered shape names.
func ShapeNames() []string {
	names := make([]string, len(Shapes))
	for i, s := range Shapes {
		names[i] = s.Name
	}
	return names
}

// LookupShape finds a shape by name.
func LookupShape(name string) (Shape, error) {
	i := slices.IndexFunc(Shapes, func(s Shape) bool { return s.Name == name })
	if i < 0 {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape,
			"unknown shape %q (must be one of: %s)", name, strings.Join(ShapeNames(), ", "))
	}
	return Shapes[i], nil
}
