package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryansmg/graphgen/pkg/rnd"
)

func TestNodesShuffled(t *testing.T) {
	g := mustGraph(t, 3, Edge{1, 2}, Edge{2, 3})

	out, err := g.NodesShuffled([]int{0, 3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []Edge{{3, 1}, {1, 2}}, out.Edges())
	assert.Equal(t, []Edge{{1, 2}, {2, 3}}, g.Edges(), "receiver must be unchanged")
	assert.True(t, out.IsTree())
}

func TestNodesShuffledInvalid(t *testing.T) {
	g := mustGraph(t, 3, Edge{1, 2})

	tests := []struct {
		name    string
		mapping []int
	}{
		{"TooShort", []int{0, 1, 2}},
		{"TooLong", []int{0, 1, 2, 3, 4}},
		{"OutOfRange", []int{0, 1, 2, 4}},
		{"Zero", []int{0, 0, 1, 2}},
		{"NotBijective", []int{0, 1, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.NodesShuffled(tt.mapping)
			requireInvalid(t, err)
			requireInvalid(t, g.Clone().ShuffleNodes(tt.mapping))
		})
	}
}

func TestShuffleNodesInPlace(t *testing.T) {
	g := mustGraph(t, 2, Edge{1, 2})
	require.NoError(t, g.ShuffleNodes([]int{0, 2, 1}))
	assert.Equal(t, []Edge{{2, 1}}, g.Edges())
	ok, err := g.HasEdge(2, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMappingHelpers(t *testing.T) {
	r := rnd.New(5)
	m := RandomMapping(r, 20)
	require.Len(t, m, 21)

	g := mustGraph(t, 20)
	_, err := g.NodesShuffled(m)
	require.NoError(t, err, "RandomMapping must be a bijection")

	inv := InverseMapping(m)
	for v := 1; v <= 20; v++ {
		assert.Equal(t, v, inv[m[v]])
	}
}

func TestNodesShuffledRoundTrip(t *testing.T) {
	g, err := Connected(rnd.New(9), 30, 60)
	require.NoError(t, err)
	m := RandomMapping(rnd.New(10), 30)

	shuffled, err := g.NodesShuffled(m)
	require.NoError(t, err)
	back, err := shuffled.NodesShuffled(InverseMapping(m))
	require.NoError(t, err)

	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.ComponentCount(), back.ComponentCount())
}

func TestShufflesPreserveShape(t *testing.T) {
	src, err := Connected(rnd.New(1), 40, 80)
	require.NoError(t, err)

	tests := []struct {
		name    string
		shuffle func(*Graph, *rnd.Source) *Graph
		keepDir bool
	}{
		{"ShuffleNodesRand", (*Graph).ShuffleNodesRand, true},
		{"ShuffleEdgeList", (*Graph).ShuffleEdgeList, true},
		{"ShuffleEdgeListUndir", (*Graph).ShuffleEdgeListUndir, false},
		{"ShuffleAll", (*Graph).ShuffleAll, true},
		{"ShuffleAllUndir", (*Graph).ShuffleAllUndir, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.shuffle(src.Clone(), rnd.New(2))
			assert.Equal(t, src.NodeCount(), g.NodeCount())
			assert.Equal(t, src.EdgeCount(), g.EdgeCount())
			assert.Equal(t, 1, g.ComponentCount())
			assert.False(t, g.HasDuplicateEdgesUndir())
			assert.False(t, g.HasSelfLoops())
		})
	}
}

func TestShuffleEdgeListKeepsEdges(t *testing.T) {
	src, err := Random(rnd.New(3), 30, 100)
	require.NoError(t, err)

	g := src.Clone().ShuffleEdgeList(rnd.New(4))
	assert.ElementsMatch(t, src.Edges(), g.Edges())

	u := src.Clone().ShuffleEdgeListUndir(rnd.New(4))
	assert.Equal(t, sortedEdges(src.Edges()), sortedEdges(u.Edges()))
	for _, e := range u.Edges() {
		ok, err := u.HasEdge(e.From, e.To)
		require.NoError(t, err)
		assert.True(t, ok, "flipped edge %v must be indexed", e)
	}
}

func TestAllShuffledReturnsCopy(t *testing.T) {
	src, err := Path(rnd.New(1), 50)
	require.NoError(t, err)
	before := src.Edges()

	out := src.AllShuffled(rnd.New(6))
	assert.Equal(t, before, src.Edges())
	assert.True(t, out.IsTree())

	out = src.AllShuffledUndir(rnd.New(6))
	assert.Equal(t, before, src.Edges())
	assert.True(t, out.IsTree())
}

func TestShuffleDeterministic(t *testing.T) {
	src, err := RandomTree(rnd.New(10), 30)
	require.NoError(t, err)
	a := src.AllShuffledUndir(rnd.New(77))
	b := src.AllShuffledUndir(rnd.New(77))
	assert.Equal(t, a.Edges(), b.Edges())
}
