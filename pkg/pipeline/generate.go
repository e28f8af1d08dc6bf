package pipeline

import (
	"github.com/ryansmg/graphgen/pkg/graph"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// Generate builds the graph described by opts and applies its shuffle.
// With AsTree, the graph is checked by [graph.NewTree] and shuffled through
// the tree API; the returned tree is nil otherwise.
func Generate(r *rnd.Source, opts Options) (*graph.Graph, *graph.Tree, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	shape, err := LookupShape(opts.Shape)
	if err != nil {
		return nil, nil, err
	}
	g, err := shape.build(r, opts)
	if err != nil {
		return nil, nil, err
	}

	if !opts.AsTree {
		return shuffleGraph(r, g, opts.Shuffle), nil, nil
	}
	t, err := graph.NewTree(g)
	if err != nil {
		return nil, nil, err
	}
	t = shuffleTree(r, t, opts.Shuffle)
	return t.Graph(), t, nil
}

func shuffleGraph(r *rnd.Source, g *graph.Graph, mode string) *graph.Graph {
	switch mode {
	case ShuffleNodes:
		return g.ShuffleNodesRand(r)
	case ShuffleEdges:
		return g.ShuffleEdgeList(r)
	case ShuffleEdgesUndir:
		return g.ShuffleEdgeListUndir(r)
	case ShuffleAll:
		return g.ShuffleAll(r)
	case ShuffleAllUndir:
		return g.ShuffleAllUndir(r)
	}
	return g
}

func shuffleTree(r *rnd.Source, t *graph.Tree, mode string) *graph.Tree {
	switch mode {
	case ShuffleNodes:
		return t.ShuffleNodesRand(r)
	case ShuffleEdges:
		return t.ShuffleEdgeList(r)
	case ShuffleEdgesUndir:
		return t.ShuffleEdgeListUndir(r)
	case ShuffleAll:
		return t.ShuffleAll(r)
	case ShuffleAllUndir:
		return t.ShuffleAllUndir(r)
	}
	return t
}
