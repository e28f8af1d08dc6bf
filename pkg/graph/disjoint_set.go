package graph

// dsNode is one record of the union-find arena.
type dsNode struct {
	// parent is the parent record; a root points at itself.
	parent int
	// rank bounds the height of the subtree; only meaningful on roots.
	rank int
}

// DisjointSet is a union-find structure over the elements 1..n with path
// compression and union by rank. Index 0 exists but is never used, so
// element ids can be used as indices directly.
//
// Find and Union run in amortized near-constant time. DisjointSet does no
// bounds checking; [Graph] validates node ids before calling it.
type DisjointSet struct {
	nodes []dsNode
}

// NewDisjointSet creates n singleton sets {1}, ..., {n}.
func NewDisjointSet(n int) *DisjointSet {
	nodes := make([]dsNode, n+1)
	for i := range nodes {
		nodes[i].parent = i
	}
	return &DisjointSet{nodes: nodes}
}

// Len returns the number of elements (excluding the unused index 0).
func (d *DisjointSet) Len() int { return len(d.nodes) - 1 }

// Find returns the representative of the set containing a.
// Every record visited on the way to the root is repointed at the root.
func (d *DisjointSet) Find(a int) int {
	root := a
	for d.nodes[root].parent != root {
		root = d.nodes[root].parent
	}
	for a != root {
		next := d.nodes[a].parent
		d.nodes[a].parent = root
		a = next
	}
	return root
}

// Union merges the sets containing a and b and reports whether they were
// separate. The lower-rank root is attached under the higher-rank one; on a
// tie b's root survives and its rank grows by one.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.nodes[ra].rank < d.nodes[rb].rank:
		d.nodes[ra].parent = rb
	case d.nodes[ra].rank > d.nodes[rb].rank:
		d.nodes[rb].parent = ra
	default:
		d.nodes[ra].parent = rb
		d.nodes[rb].rank++
	}
	return true
}

// Clone returns an independent copy.
func (d *DisjointSet) Clone() *DisjointSet {
	nodes := make([]dsNode, len(d.nodes))
	copy(nodes, d.nodes)
	return &DisjointSet{nodes: nodes}
}
