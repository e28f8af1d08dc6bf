package graph

import (
	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// RandomTree returns a random spanning tree on n nodes.
//
// By default it repeatedly draws two uniform nodes and joins them when they
// lie in different components. With [WithElongation] it delegates to
// [ElongatedTree].
func RandomTree(r *rnd.Source, n int, opts ...Option) (*Graph, error) {
	cfg := newConfig(opts)
	if cfg.hasElongation {
		return ElongatedTree(r, n, cfg.elongation)
	}
	if err := errors.First(
		errors.Check(n >= 1, "a tree must have at least one node, got %d", n),
		checkSize(n),
	); err != nil {
		return nil, err
	}
	g := newGraph(n)
	for range n - 1 {
		var u, v int
		for {
			u, v = r.Range(1, n), r.Range(1, n)
			if g.groups.Find(u) != g.groups.Find(v) {
				break
			}
		}
		g.addEdge(u, v)
	}
	return g, nil
}

// ElongatedTree returns a random tree whose i-th node (0-based) attaches to
// a parent drawn by r.WNext(i, e). Labels 2..n are then permuted while
// index 0 keeps label 1. Each edge runs from child to parent.
func ElongatedTree(r *rnd.Source, n int, e int) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 1, "a tree must have at least one node, got %d", n),
		checkSize(n),
	); err != nil {
		return nil, err
	}
	parent := make([]int, n)
	for i := 1; i < n; i++ {
		parent[i] = r.WNext(i, e)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rnd.Shuffle(r, perm[1:])

	g := newGraph(n)
	for i := 1; i < n; i++ {
		g.addEdge(perm[i]+1, perm[parent[i]]+1)
	}
	return g, nil
}
