package graph

import (
	"maps"
	"slices"

	"github.com/ryansmg/graphgen/pkg/errors"
)

// Edge is an ordered pair of node ids. Undirected consumers treat
// {From, To} and {To, From} as the same edge.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{From: e.To, To: e.From} }

// normalized returns the edge with From <= To.
func (e Edge) normalized() Edge {
	if e.From > e.To {
		return e.Reversed()
	}
	return e
}

// Graph is an edge-list graph over the nodes 1..n that tracks connectivity
// as edges are added.
//
// Edges keep their insertion order, which printers rely on, and duplicates
// are allowed unless a caller checks for them. Graphs only grow: there is no
// edge removal. Shuffles either mutate the receiver or return a new Graph.
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent use.
type Graph struct {
	n      int
	edges  []Edge
	counts map[Edge]int // ordered pair -> multiplicity
	groups *DisjointSet
}

// MaxNodes is the largest node count any graph in this package may have.
const MaxNodes = 1 << 24

// checkSize rejects node counts above MaxNodes.
func checkSize(n int) error {
	return errors.Check(n <= MaxNodes, "node count %d exceeds the maximum of %d", n, MaxNodes)
}

// New creates a graph with n nodes and no edges.
// Returns an ErrCodeInvalidArgument error if n < 1 or n > [MaxNodes].
func New(n int) (*Graph, error) {
	if err := errors.First(
		errors.Check(n >= 1, "a graph must have at least one node, got %d", n),
		checkSize(n),
	); err != nil {
		return nil, err
	}
	return newGraph(n), nil
}

// newGraph creates a graph without validating n; callers guarantee n >= 1.
func newGraph(n int) *Graph {
	return &Graph{
		n:      n,
		counts: make(map[Edge]int),
		groups: NewDisjointSet(n),
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of edges, counting duplicates.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	return &Graph{
		n:      g.n,
		edges:  slices.Clone(g.edges),
		counts: maps.Clone(g.counts),
		groups: g.groups.Clone(),
	}
}

func (g *Graph) valid(a int) bool { return 1 <= a && a <= g.n }

func (g *Graph) checkNodes(a, b int) error {
	return errors.Check(g.valid(a) && g.valid(b), "not a valid node pair (%d, %d) for %d nodes", a, b, g.n)
}

// AddEdge appends the edge a->b and merges the components of a and b.
// Both endpoints must lie in [1, NodeCount()]; otherwise an
// ErrCodeInvalidArgument error is returned and the graph is unchanged.
// Self-loops and repeated edges are accepted.
func (g *Graph) AddEdge(a, b int) error {
	if err := g.checkNodes(a, b); err != nil {
		return err
	}
	g.addEdge(a, b)
	return nil
}

// addEdge is AddEdge without validation for generators that construct
// endpoints in range by design.
func (g *Graph) addEdge(a, b int) {
	e := Edge{From: a, To: b}
	g.edges = append(g.edges, e)
	g.counts[e]++
	g.groups.Union(a, b)
}

// FindGroup returns the representative node of a's connected component.
func (g *Graph) FindGroup(a int) (int, error) {
	if err := errors.Check(g.valid(a), "not a valid node %d for %d nodes", a, g.n); err != nil {
		return 0, err
	}
	return g.groups.Find(a), nil
}

// HasEdge reports whether the directed edge a->b exists.
func (g *Graph) HasEdge(a, b int) (bool, error) {
	if err := g.checkNodes(a, b); err != nil {
		return false, err
	}
	return g.counts[Edge{From: a, To: b}] > 0, nil
}

// HasEdgeUndir reports whether a->b or b->a exists.
func (g *Graph) HasEdgeUndir(a, b int) (bool, error) {
	if err := g.checkNodes(a, b); err != nil {
		return false, err
	}
	return g.hasEdgeUndir(a, b), nil
}

func (g *Graph) hasEdgeUndir(a, b int) bool {
	return g.counts[Edge{From: a, To: b}] > 0 || g.counts[Edge{From: b, To: a}] > 0
}

// NodeGroup resolves and returns the component representative of every
// node, indexed by node id. The value at index 0 is unspecified.
func (g *Graph) NodeGroup() []int {
	group := make([]int, g.n+1)
	for i := 1; i <= g.n; i++ {
		group[i] = g.groups.Find(i)
	}
	return group
}

// ConnectedComponents groups nodes by component. Components are ordered by
// ascending representative id and nodes within a component ascend.
func (g *Graph) ConnectedComponents() [][]int {
	byGroup := make(map[int][]int)
	for i := 1; i <= g.n; i++ {
		root := g.groups.Find(i)
		byGroup[root] = append(byGroup[root], i)
	}
	roots := slices.Sorted(maps.Keys(byGroup))
	out := make([][]int, len(roots))
	for i, r := range roots {
		out[i] = byGroup[r]
	}
	return out
}

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int {
	count := 0
	for i := 1; i <= g.n; i++ {
		if g.groups.Find(i) == i {
			count++
		}
	}
	return count
}

// HasDuplicateEdges reports whether some ordered pair occurs twice.
func (g *Graph) HasDuplicateEdges() bool {
	for _, c := range g.counts {
		if c > 1 {
			return true
		}
	}
	return false
}

// HasDuplicateEdgesUndir reports whether some unordered pair occurs twice,
// so a->b followed by b->a counts as a duplicate.
func (g *Graph) HasDuplicateEdgesUndir() bool {
	seen := make(map[Edge]struct{}, len(g.edges))
	for _, e := range g.edges {
		key := e.normalized()
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// HasSelfLoops reports whether any edge starts and ends at the same node.
func (g *Graph) HasSelfLoops() bool {
	return slices.ContainsFunc(g.edges, func(e Edge) bool { return e.From == e.To })
}

// AdjacencyList returns out-neighbors per node in edge insertion order.
// The result has NodeCount()+1 entries; index 0 is empty.
func (g *Graph) AdjacencyList() [][]int {
	adj := make([][]int, g.n+1)
	for _, e := range g.edges {
		adj[e.From] = append(adj[e.From], e.To)
	}
	return adj
}

// AdjacencyListUndir returns neighbors per node following edges in both
// directions, in edge insertion order.
func (g *Graph) AdjacencyListUndir() [][]int {
	adj := make([][]int, g.n+1)
	for _, e := range g.edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	return adj
}

// Degrees returns the undirected degree of every node, indexed by id.
// A self-loop adds two to its node.
func (g *Graph) Degrees() []int {
	deg := make([]int, g.n+1)
	for _, e := range g.edges {
		deg[e.From]++
		deg[e.To]++
	}
	return deg
}

// IsTree reports whether the graph has exactly NodeCount()-1 edges and a
// single connected component.
func (g *Graph) IsTree() bool {
	return len(g.edges) == g.n-1 && g.ComponentCount() == 1
}
