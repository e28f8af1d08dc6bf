package graph

import (
	"slices"

	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// Cactus returns a connected graph on n nodes in which every edge lies on
// at most one cycle.
//
// A random tree of treeN nodes is drawn first. cycleCnt distinct tree nodes
// are each expanded into a cycle, and the n-treeN extra nodes are split
// between those cycles. Every tree edge is then reattached to a random
// member of each endpoint's cycle and all labels are shuffled. A cycle that
// receives a single extra node is a doubled edge.
//
// The result has n-1+cycleCnt edges. With cycleCnt == 0, n must equal treeN
// and the result is [RandomTree] on n nodes: the uniform tree unless
// [WithElongation] is given. Options apply to the base tree.
func Cactus(r *rnd.Source, n, treeN, cycleCnt int, opts ...Option) (*Graph, error) {
	if err := errors.First(
		errors.Check(treeN >= 1, "tree node count must be positive, got %d", treeN),
		checkSize(n),
		errors.Check(cycleCnt >= 0, "cycle count cannot be negative, got %d", cycleCnt),
		errors.Check(cycleCnt <= treeN, "cycle count %d cannot exceed tree node count %d", cycleCnt, treeN),
		errors.Check(cycleCnt <= n-treeN, "cycle count %d is too large for %d extra nodes", cycleCnt, n-treeN),
		errors.Check(cycleCnt > 0 || n == treeN, "node count %d must equal tree node count %d without cycles", n, treeN),
	); err != nil {
		return nil, err
	}
	if cycleCnt == 0 {
		return RandomTree(r, n, opts...)
	}

	base, err := RandomTree(r, treeN, opts...)
	if err != nil {
		return nil, err
	}
	chosen, err := r.Distinct(cycleCnt, 1, treeN)
	if err != nil {
		return nil, err
	}
	sizes, err := DistributeNaturalNumbers(r, n-treeN, cycleCnt)
	if err != nil {
		return nil, err
	}

	isCycle := make([]bool, treeN+1)
	for _, v := range chosen {
		isCycle[v] = true
	}

	g := newGraph(n)
	members := make([][]int, treeN+1)
	next, sizeIdx := 1, 0
	for i := 1; i <= treeN; i++ {
		members[i] = append(members[i], next)
		next++
		if !isCycle[i] {
			continue
		}
		size := sizes[sizeIdx]
		sizeIdx++
		for range size {
			members[i] = append(members[i], next)
			next++
		}
		cycle := members[i]
		for j := range size {
			g.addEdge(cycle[j], cycle[j+1])
		}
		g.addEdge(cycle[len(cycle)-1], cycle[0])
	}

	for _, e := range base.edges {
		g.addEdge(rnd.Any(r, members[e.From]), rnd.Any(r, members[e.To]))
	}
	return g.NodesShuffledRand(r), nil
}

// DistributeNaturalNumbers splits sum into count positive parts by choosing
// count-1 distinct cut points in [1, sum-1]. The parts are returned in
// random order.
func DistributeNaturalNumbers(r *rnd.Source, sum, count int) ([]int, error) {
	if err := errors.First(
		errors.Check(count > 0, "count must be positive, got %d", count),
		errors.Check(sum >= count, "count %d cannot exceed sum %d", count, sum),
	); err != nil {
		return nil, err
	}
	parts := make([]int, count)
	if sum == count {
		for i := range parts {
			parts[i] = 1
		}
		return parts, nil
	}

	bars, err := r.Distinct(count-1, 1, sum-1)
	if err != nil {
		return nil, err
	}
	bars = append(bars, 0, sum)
	slices.Sort(bars)
	for i := range parts {
		parts[i] = bars[i+1] - bars[i]
	}
	rnd.Shuffle(r, parts)
	return parts, nil
}
