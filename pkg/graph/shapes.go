package graph

import (
	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// Path returns a Hamiltonian path over a random permutation of 1..n.
// [WithFirst] and [WithLast] pin the endpoints; when both are given for
// n > 1 they must differ.
func Path(r *rnd.Source, n int, opts ...Option) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 1, "a path must have at least one node, got %d", n),
		checkSize(n),
	); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	rnd.Shuffle(r, order)

	if cfg.hasFirst {
		if err := errors.First(
			errors.Check(1 <= cfg.first && cfg.first <= n, "first node %d is not a valid node", cfg.first),
			errors.Check(n == 1 || !cfg.hasLast || cfg.first != cfg.last, "first and last node cannot both be %d", cfg.first),
		); err != nil {
			return nil, err
		}
		swapTo(order, cfg.first, 0)
	}
	if cfg.hasLast {
		if err := errors.Check(1 <= cfg.last && cfg.last <= n, "last node %d is not a valid node", cfg.last); err != nil {
			return nil, err
		}
		swapTo(order, cfg.last, n-1)
	}

	g := newGraph(n)
	for i := range n - 1 {
		g.addEdge(order[i], order[i+1])
	}
	return g, nil
}

func swapTo(order []int, v, pos int) {
	for i, x := range order {
		if x == v {
			order[i], order[pos] = order[pos], order[i]
			return
		}
	}
}

// Complete returns the complete graph on n nodes with edges i->j for i < j
// in lexicographic order.
func Complete(n int) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 1, "a graph must have at least one node, got %d", n),
		checkSize(n),
	); err != nil {
		return nil, err
	}
	g := newGraph(n)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			g.addEdge(i, j)
		}
	}
	return g, nil
}

// Star returns a star centered on node 1, or on the node set by [WithRoot].
func Star(n int, opts ...Option) (*Graph, error) {
	cfg := newConfig(opts)
	if err := errors.First(
		errors.Check(n >= 1, "a graph must have at least one node, got %d", n),
		checkSize(n),
		errors.Check(1 <= cfg.root && cfg.root <= n, "root %d is not a valid node", cfg.root),
	); err != nil {
		return nil, err
	}
	g := newGraph(n)
	for i := 1; i <= n; i++ {
		if i != cfg.root {
			g.addEdge(cfg.root, i)
		}
	}
	return g, nil
}

// Skeleton returns a caterpillar on an even number of nodes: the path
// 1..n/2+1 with one pendant leaf hung off every interior path node.
func Skeleton(n int) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 2 && n%2 == 0, "skeleton node count must be even and at least 2, got %d", n),
		checkSize(n),
	); err != nil {
		return nil, err
	}
	spine := n/2 + 1
	g := newGraph(n)
	for i := 2; i <= spine; i++ {
		g.addEdge(i-1, i)
	}
	for i := 2; i < spine; i++ {
		g.addEdge(i, spine+i-1)
	}
	return g, nil
}
