package graph

import (
	"cmp"
	"math"
	"slices"
	"testing"

	"github.com/ryansmg/graphgen/pkg/errors"
)

// sortedEdges returns the edges with each pair normalized, in ascending
// order, for comparisons that ignore order and direction.
func sortedEdges(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = e.normalized()
	}
	slices.SortFunc(out, func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return out
}

func mustGraph(t *testing.T, n int, edges ...Edge) *Graph {
	t.Helper()
	g, err := New(n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e.From, e.To, err)
		}
	}
	return g
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Single", 1, false},
		{"Several", 10, false},
		{"Zero", 0, true},
		{"Negative", -3, true},
		{"AboveMax", MaxNodes + 1, true},
		{"MaxInt", math.MaxInt, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.n)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidArgument) {
					t.Fatalf("New(%d) error = %v, want INVALID_ARGUMENT", tt.n, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d): %v", tt.n, err)
			}
			if g.NodeCount() != tt.n || g.EdgeCount() != 0 {
				t.Errorf("got %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
			}
			if g.ComponentCount() != tt.n {
				t.Errorf("ComponentCount() = %d, want %d", g.ComponentCount(), tt.n)
			}
		})
	}
}

func TestAddEdge(t *testing.T) {
	g := mustGraph(t, 4)

	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1, 2): %v", err)
	}
	for _, pair := range [][2]int{{0, 1}, {1, 5}, {-1, 2}} {
		if err := g.AddEdge(pair[0], pair[1]); !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("AddEdge(%d, %d) error = %v, want INVALID_ARGUMENT", pair[0], pair[1], err)
		}
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d after rejected edges, want 1", g.EdgeCount())
	}

	// Self-loops and duplicates are accepted.
	if err := g.AddEdge(3, 3); err != nil {
		t.Errorf("AddEdge(3, 3): %v", err)
	}
	if err := g.AddEdge(1, 2); err != nil {
		t.Errorf("AddEdge(1, 2) again: %v", err)
	}
	want := []Edge{{1, 2}, {3, 3}, {1, 2}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestEdgesReturnsCopy(t *testing.T) {
	g := mustGraph(t, 2, Edge{1, 2})
	edges := g.Edges()
	edges[0] = Edge{2, 2}
	if g.Edges()[0] != (Edge{1, 2}) {
		t.Error("mutating Edges() result changed the graph")
	}
}

func TestHasEdge(t *testing.T) {
	g := mustGraph(t, 3, Edge{1, 2})

	tests := []struct {
		a, b      int
		dir, undi bool
	}{
		{1, 2, true, true},
		{2, 1, false, true},
		{1, 3, false, false},
	}
	for _, tt := range tests {
		got, err := g.HasEdge(tt.a, tt.b)
		if err != nil || got != tt.dir {
			t.Errorf("HasEdge(%d, %d) = %v, %v; want %v", tt.a, tt.b, got, err, tt.dir)
		}
		got, err = g.HasEdgeUndir(tt.a, tt.b)
		if err != nil || got != tt.undi {
			t.Errorf("HasEdgeUndir(%d, %d) = %v, %v; want %v", tt.a, tt.b, got, err, tt.undi)
		}
	}
	if _, err := g.HasEdge(0, 1); err == nil {
		t.Error("HasEdge(0, 1) returned nil error")
	}
	if _, err := g.HasEdgeUndir(1, 4); err == nil {
		t.Error("HasEdgeUndir(1, 4) returned nil error")
	}
}

func TestConnectivity(t *testing.T) {
	g := mustGraph(t, 6, Edge{1, 2}, Edge{4, 5}, Edge{2, 3})

	if got := g.ComponentCount(); got != 3 {
		t.Errorf("ComponentCount() = %d, want 3", got)
	}
	comps := g.ConnectedComponents()
	flat := slices.Clone(comps)
	slices.SortFunc(flat, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })
	want := [][]int{{1, 2, 3}, {4, 5}, {6}}
	if len(flat) != len(want) {
		t.Fatalf("ConnectedComponents() = %v, want %v", comps, want)
	}
	for i := range want {
		if !slices.Equal(flat[i], want[i]) {
			t.Errorf("component %d = %v, want %v", i, flat[i], want[i])
		}
	}

	r1, _ := g.FindGroup(1)
	r3, _ := g.FindGroup(3)
	r4, _ := g.FindGroup(4)
	if r1 != r3 || r1 == r4 {
		t.Errorf("FindGroup: 1->%d 3->%d 4->%d", r1, r3, r4)
	}
	if _, err := g.FindGroup(7); err == nil {
		t.Error("FindGroup(7) returned nil error")
	}

	groups := g.NodeGroup()
	if groups[2] != r1 || groups[5] != r4 {
		t.Errorf("NodeGroup() = %v", groups)
	}
}

func TestDuplicatesAndLoops(t *testing.T) {
	tests := []struct {
		name            string
		edges           []Edge
		dup, dupU, loop bool
	}{
		{"Simple", []Edge{{1, 2}, {2, 3}}, false, false, false},
		{"Repeated", []Edge{{1, 2}, {1, 2}}, true, true, false},
		{"Reversed", []Edge{{1, 2}, {2, 1}}, false, true, false},
		{"Loop", []Edge{{3, 3}}, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGraph(t, 3, tt.edges...)
			if got := g.HasDuplicateEdges(); got != tt.dup {
				t.Errorf("HasDuplicateEdges() = %v, want %v", got, tt.dup)
			}
			if got := g.HasDuplicateEdgesUndir(); got != tt.dupU {
				t.Errorf("HasDuplicateEdgesUndir() = %v, want %v", got, tt.dupU)
			}
			if got := g.HasSelfLoops(); got != tt.loop {
				t.Errorf("HasSelfLoops() = %v, want %v", got, tt.loop)
			}
		})
	}
}

func TestAdjacency(t *testing.T) {
	g := mustGraph(t, 3, Edge{1, 2}, Edge{1, 3}, Edge{3, 2})

	adj := g.AdjacencyList()
	if len(adj) != 4 || !slices.Equal(adj[1], []int{2, 3}) || !slices.Equal(adj[3], []int{2}) || len(adj[2]) != 0 {
		t.Errorf("AdjacencyList() = %v", adj)
	}
	undir := g.AdjacencyListUndir()
	if !slices.Equal(undir[2], []int{1, 3}) || !slices.Equal(undir[3], []int{1, 2}) {
		t.Errorf("AdjacencyListUndir() = %v", undir)
	}
	if deg := g.Degrees(); !slices.Equal(deg, []int{0, 2, 2, 2}) {
		t.Errorf("Degrees() = %v", deg)
	}
}

func TestIsTree(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []Edge
		want  bool
	}{
		{"SingleNode", 1, nil, true},
		{"Path", 3, []Edge{{1, 2}, {2, 3}}, true},
		{"Forest", 4, []Edge{{1, 2}, {3, 4}}, false},
		{"Cycle", 3, []Edge{{1, 2}, {2, 3}, {3, 1}}, false},
		{"TooFewEdges", 3, []Edge{{1, 2}}, false},
		{"CycleWithIsolated", 4, []Edge{{1, 2}, {2, 3}, {3, 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustGraph(t, tt.n, tt.edges...).IsTree(); got != tt.want {
				t.Errorf("IsTree() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	g := mustGraph(t, 3, Edge{1, 2})
	c := g.Clone()
	if err := c.AddEdge(2, 3); err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 1 || g.ComponentCount() != 2 {
		t.Errorf("original changed: %d edges, %d components", g.EdgeCount(), g.ComponentCount())
	}
	if ok, _ := g.HasEdge(2, 3); ok {
		t.Error("original sees clone's edge")
	}
}
