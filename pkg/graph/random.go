package graph

import (
	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// maxSimpleEdges returns n(n-1)/2 without overflowing for large n.
func maxSimpleEdges(n int) int64 {
	return int64(n) * int64(n-1) / 2
}

// Connected returns a connected simple graph with n nodes and m edges: a
// random spanning tree followed by m-n+1 uniformly rejection-sampled extra
// edges. Options apply to the spanning tree.
func Connected(r *rnd.Source, n, m int, opts ...Option) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 1, "a graph must have at least one node, got %d", n),
		checkSize(n),
		errors.Check(m >= n-1, "edge count %d is too small to connect %d nodes", m, n),
		errors.Check(int64(m) <= maxSimpleEdges(n), "edge count %d exceeds %d for %d nodes", m, maxSimpleEdges(n), n),
	); err != nil {
		return nil, err
	}
	g, err := RandomTree(r, n, opts...)
	if err != nil {
		return nil, err
	}
	addSimpleEdges(r, g, m-(n-1))
	return g, nil
}

// Random returns a simple graph with n nodes and m uniformly
// rejection-sampled edges. It may be disconnected.
func Random(r *rnd.Source, n, m int) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 1, "a graph must have at least one node, got %d", n),
		checkSize(n),
		errors.Check(m >= 0, "edge count cannot be negative, got %d", m),
		errors.Check(int64(m) <= maxSimpleEdges(n), "edge count %d exceeds %d for %d nodes", m, maxSimpleEdges(n), n),
	); err != nil {
		return nil, err
	}
	g := newGraph(n)
	addSimpleEdges(r, g, m)
	return g, nil
}

// addSimpleEdges adds k edges that are neither self-loops nor parallel to an
// existing edge in either direction. The caller guarantees room for them.
func addSimpleEdges(r *rnd.Source, g *Graph, k int) {
	for range k {
		var u, v int
		for {
			u, v = r.Range(1, g.n), r.Range(1, g.n)
			if u != v && !g.hasEdgeUndir(u, v) {
				break
			}
		}
		g.addEdge(u, v)
	}
}
