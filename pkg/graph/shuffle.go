package graph

import (
	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// NodesShuffled returns a new graph with every edge endpoint relabeled
// through mapping, where mapping[old] = new.
//
// mapping must have NodeCount()+1 entries; entry 0 is ignored and entries
// 1..n must form a bijection onto 1..n. Edge order and direction are kept.
func (g *Graph) NodesShuffled(mapping []int) (*Graph, error) {
	if err := g.checkBijection(mapping); err != nil {
		return nil, err
	}
	out := newGraph(g.n)
	for _, e := range g.edges {
		out.addEdge(mapping[e.From], mapping[e.To])
	}
	return out, nil
}

func (g *Graph) checkBijection(mapping []int) error {
	if err := errors.Check(len(mapping) == g.n+1,
		"node mapping must have %d entries, got %d", g.n+1, len(mapping)); err != nil {
		return err
	}
	hit := make([]bool, g.n+1)
	for old := 1; old <= g.n; old++ {
		to := mapping[old]
		if err := errors.Check(g.valid(to), "node mapping sends %d to invalid node %d", old, to); err != nil {
			return err
		}
		if err := errors.Check(!hit[to], "node mapping is not a bijection: %d is hit twice", to); err != nil {
			return err
		}
		hit[to] = true
	}
	return nil
}

// RandomMapping returns a uniformly random bijection on 1..n in the form
// accepted by [Graph.NodesShuffled].
func RandomMapping(r *rnd.Source, n int) []int {
	mapping := make([]int, n+1)
	for i, p := range r.Perm(n) {
		mapping[i+1] = p + 1
	}
	return mapping
}

// InverseMapping returns the inverse of a bijection produced by
// [RandomMapping] or accepted by [Graph.NodesShuffled].
func InverseMapping(mapping []int) []int {
	inv := make([]int, len(mapping))
	for old := 1; old < len(mapping); old++ {
		inv[mapping[old]] = old
	}
	return inv
}

// NodesShuffledRand returns a copy relabeled by a uniformly random bijection.
func (g *Graph) NodesShuffledRand(r *rnd.Source) *Graph {
	out, _ := g.NodesShuffled(RandomMapping(r, g.n)) // a fresh permutation is always a bijection
	return out
}

// ShuffleNodes relabels the graph in place. See [Graph.NodesShuffled].
func (g *Graph) ShuffleNodes(mapping []int) error {
	out, err := g.NodesShuffled(mapping)
	if err != nil {
		return err
	}
	*g = *out
	return nil
}

// ShuffleNodesRand relabels the graph in place by a random bijection.
func (g *Graph) ShuffleNodesRand(r *rnd.Source) *Graph {
	*g = *g.NodesShuffledRand(r)
	return g
}

// ShuffleEdgeList permutes the edge order uniformly; directions are kept.
func (g *Graph) ShuffleEdgeList(r *rnd.Source) *Graph {
	rnd.Shuffle(r, g.edges)
	return g
}

// ShuffleEdgeListUndir flips each edge independently with probability 1/2
// and then permutes the edge order.
func (g *Graph) ShuffleEdgeListUndir(r *rnd.Source) *Graph {
	counts := make(map[Edge]int, len(g.counts))
	for i, e := range g.edges {
		if r.Bool() {
			e = e.Reversed()
			g.edges[i] = e
		}
		counts[e]++
	}
	g.counts = counts
	return g.ShuffleEdgeList(r)
}

// ShuffleAll relabels nodes randomly and then permutes the edge order.
func (g *Graph) ShuffleAll(r *rnd.Source) *Graph {
	return g.ShuffleNodesRand(r).ShuffleEdgeList(r)
}

// ShuffleAllUndir relabels nodes randomly, then flips and permutes edges.
func (g *Graph) ShuffleAllUndir(r *rnd.Source) *Graph {
	return g.ShuffleNodesRand(r).ShuffleEdgeListUndir(r)
}

// AllShuffled returns a copy transformed by [Graph.ShuffleAll].
func (g *Graph) AllShuffled(r *rnd.Source) *Graph {
	return g.Clone().ShuffleAll(r)
}

// AllShuffledUndir returns a copy transformed by [Graph.ShuffleAllUndir].
func (g *Graph) AllShuffledUndir(r *rnd.Source) *Graph {
	return g.Clone().ShuffleAllUndir(r)
}
