package graph

import (
	"slices"

	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// Halin returns a Halin graph on n >= 4 nodes: a tree with no degree-2
// nodes whose leaves are joined into a cycle in DFS order.
//
// The tree part comes from [TreeWithoutDegree2] and the options are passed
// to its base tree.
func Halin(r *rnd.Source, n int, opts ...Option) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 4, "a halin graph must have at least four nodes, got %d", n),
		checkSize(n),
	); err != nil {
		return nil, err
	}
	rooted, err := contractedTree(r, n, opts)
	if err != nil {
		return nil, err
	}
	g := rooted.graph()
	leaves := rooted.leaves()
	for i := range len(leaves) - 1 {
		g.addEdge(leaves[i], leaves[i+1])
	}
	g.addEdge(leaves[len(leaves)-1], leaves[0])
	return g, nil
}

// TreeWithoutDegree2 returns a random tree on n >= 4 nodes in which no node
// has degree exactly 2.
func TreeWithoutDegree2(r *rnd.Source, n int, opts ...Option) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 4, "a tree without degree-2 nodes must have at least four nodes, got %d", n),
		checkSize(n),
	); err != nil {
		return nil, err
	}
	rooted, err := contractedTree(r, n, opts)
	if err != nil {
		return nil, err
	}
	return rooted.graph(), nil
}

// rootedTree holds ordered child lists of a tree rooted at root.
type rootedTree struct {
	root     int
	children [][]int
}

// contractedTree draws a base tree, roots it and splices out every non-root
// node that has exactly one child.
func contractedTree(r *rnd.Source, n int, opts []Option) (*rootedTree, error) {
	base, err := RandomTree(r, n, opts...)
	if err != nil {
		return nil, err
	}
	adj := base.AdjacencyListUndir()

	root := 0
	for i := 1; i <= n; i++ {
		if len(adj[i]) > 2 {
			root = i
			break
		}
	}
	for i := 1; i <= n && root == 0; i++ {
		if len(adj[i]) == 1 {
			root = i
		}
	}

	t := &rootedTree{root: root, children: childLists(adj, root)}
	t.contract()
	return t, nil
}

// childLists orients the tree away from root. Each child list keeps the
// adjacency order of its node.
func childLists(adj [][]int, root int) [][]int {
	children := make([][]int, len(adj))
	parent := make([]int, len(adj))
	stack := []int{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adj[cur] {
			if next == parent[cur] {
				continue
			}
			parent[next] = cur
			children[cur] = append(children[cur], next)
			stack = append(stack, next)
		}
	}
	return children
}

// contract walks the tree depth first. A non-root node with a single child
// hands that child to its own parent and becomes a leaf. The parent visits
// the handed-over child later in the same walk, so chains collapse fully.
func (t *rootedTree) contract() {
	type frame struct{ node, next int }
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(t.children[top.node]) {
			stack = stack[:len(stack)-1]
			continue
		}
		node := top.node
		child := t.children[node][top.next]
		top.next++

		if len(t.children[child]) == 1 {
			t.children[node] = append(t.children[node], t.children[child][0])
			t.children[child] = nil
			continue
		}
		stack = append(stack, frame{node: child})
	}
}

// leaves returns the childless nodes in DFS preorder.
func (t *rootedTree) leaves() []int {
	var out []int
	stack := []int{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(t.children[cur]) == 0 {
			out = append(out, cur)
			continue
		}
		kids := slices.Clone(t.children[cur])
		slices.Reverse(kids)
		stack = append(stack, kids...)
	}
	return out
}

// graph emits parent->child edges by ascending parent id.
func (t *rootedTree) graph() *Graph {
	n := len(t.children) - 1
	g := newGraph(n)
	for i := 1; i <= n; i++ {
		for _, c := range t.children[i] {
			g.addEdge(i, c)
		}
	}
	return g
}
