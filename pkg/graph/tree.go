package graph

import (
	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// Tree is a graph known to be a tree. It exposes the read-only part of the
// [Graph] API and the shuffles that preserve shape, but no way to add
// edges.
type Tree struct {
	g *Graph
}

// NewTree wraps a copy of g. It returns an ErrCodeInvalidArgument error
// unless g is a tree.
func NewTree(g *Graph) (*Tree, error) {
	if err := errors.Check(g.IsTree(), "graph with %d nodes and %d edges is not a tree", g.NodeCount(), g.EdgeCount()); err != nil {
		return nil, err
	}
	return &Tree{g: g.Clone()}, nil
}

func trusted(g *Graph, err error) (*Tree, error) {
	if err != nil {
		return nil, err
	}
	return &Tree{g: g}, nil
}

// NewRandomTree is [RandomTree] returning a Tree.
func NewRandomTree(r *rnd.Source, n int, opts ...Option) (*Tree, error) {
	return trusted(RandomTree(r, n, opts...))
}

// NewPathTree is [Path] returning a Tree.
func NewPathTree(r *rnd.Source, n int, opts ...Option) (*Tree, error) {
	return trusted(Path(r, n, opts...))
}

// NewStarTree is [Star] returning a Tree.
func NewStarTree(n int, opts ...Option) (*Tree, error) {
	return trusted(Star(n, opts...))
}

// NewSkeletonTree is [Skeleton] returning a Tree.
func NewSkeletonTree(n int) (*Tree, error) {
	return trusted(Skeleton(n))
}

// NewTreeWithoutDegree2 is [TreeWithoutDegree2] returning a Tree.
func NewTreeWithoutDegree2(r *rnd.Source, n int, opts ...Option) (*Tree, error) {
	return trusted(TreeWithoutDegree2(r, n, opts...))
}

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int { return t.g.NodeCount() }

// EdgeCount returns the number of edges, always NodeCount()-1.
func (t *Tree) EdgeCount() int { return t.g.EdgeCount() }

// Edges returns a copy of the edge list in insertion order.
func (t *Tree) Edges() []Edge { return t.g.Edges() }

// AdjacencyList returns the out-neighbors of every node. See
// [Graph.AdjacencyList].
func (t *Tree) AdjacencyList() [][]int { return t.g.AdjacencyList() }

// AdjacencyListUndir returns the neighbors of every node in either
// direction.
func (t *Tree) AdjacencyListUndir() [][]int { return t.g.AdjacencyListUndir() }

// ConnectedComponents returns the single component holding every node.
func (t *Tree) ConnectedComponents() [][]int {
	return t.g.ConnectedComponents()
}

// HasEdge reports whether the edge a->b exists. See [Graph.HasEdge].
func (t *Tree) HasEdge(a, b int) (bool, error) { return t.g.HasEdge(a, b) }

// HasEdgeUndir reports whether a->b or b->a exists.
func (t *Tree) HasEdgeUndir(a, b int) (bool, error) { return t.g.HasEdgeUndir(a, b) }

// IsTree always reports true.
func (t *Tree) IsTree() bool { return true }

// Graph returns a mutable copy of the underlying graph.
func (t *Tree) Graph() *Graph { return t.g.Clone() }

// NodesShuffled returns a relabeled copy. See [Graph.NodesShuffled].
func (t *Tree) NodesShuffled(mapping []int) (*Tree, error) {
	return trusted(t.g.NodesShuffled(mapping))
}

// ShuffleNodesRand relabels the tree in place by a random bijection and
// returns it.
func (t *Tree) ShuffleNodesRand(r *rnd.Source) *Tree {
	t.g.ShuffleNodesRand(r)
	return t
}

// ShuffleEdgeList permutes the edge order in place and returns the tree.
func (t *Tree) ShuffleEdgeList(r *rnd.Source) *Tree {
	t.g.ShuffleEdgeList(r)
	return t
}

// ShuffleEdgeListUndir flips and permutes the edges in place and returns
// the tree.
func (t *Tree) ShuffleEdgeListUndir(r *rnd.Source) *Tree {
	t.g.ShuffleEdgeListUndir(r)
	return t
}

// ShuffleAll relabels nodes and permutes edges in place. See
// [Graph.ShuffleAll].
func (t *Tree) ShuffleAll(r *rnd.Source) *Tree {
	t.g.ShuffleAll(r)
	return t
}

// ShuffleAllUndir is [Tree.ShuffleAll] with every edge also flipped with
// probability 1/2.
func (t *Tree) ShuffleAllUndir(r *rnd.Source) *Tree {
	t.g.ShuffleAllUndir(r)
	return t
}
