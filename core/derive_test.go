package core_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randgraph/core"
)

func buildPath(t *testing.T, n int) *core.Graph[int] {
	t.Helper()
	verts := make([]int, n)
	for i := range verts {
		verts[i] = i
	}
	g := core.New(verts)
	for i := 0; i < n-1; i++ {
		require.True(t, g.AddEdge(i, i+1))
	}

	return g
}

func TestSubgraph_Induced(t *testing.T) {
	g := buildPath(t, 5) // 0—1—2—3—4
	g.AddEdge(0, 4)

	sub := g.Subgraph(mapset.NewSet(0, 1, 4, 99))
	assert.Equal(t, []int{0, 1, 4}, sub.Vertices(), "source order, unknown label dropped")
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge(0, 1))
	assert.True(t, sub.HasEdge(0, 4))
	assert.False(t, sub.HasEdge(1, 2), "edges leaving the subset are cut")

	// Source untouched; the two instances are independent.
	assert.Equal(t, 5, g.EdgeCount())
	sub.AddEdge(1, 4)
	assert.False(t, g.HasEdge(1, 4))
}

func TestSubgraph_NilAndEmpty(t *testing.T) {
	g := buildPath(t, 3)

	empty := g.Subgraph(nil)
	assert.Equal(t, 0, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())

	none := g.Subgraph(mapset.NewSet[int]())
	assert.Equal(t, 0, none.VertexCount())
}

func TestSubgraph_Directed(t *testing.T) {
	g := core.New([]int{0, 1, 2}, core.WithDirected[int]())
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	sub := g.Subgraph(mapset.NewSet(0, 1))
	assert.True(t, sub.Directed())
	assert.Equal(t, 1, sub.EdgeCount())
	assert.True(t, sub.HasEdge(0, 1))
	assert.False(t, sub.HasEdge(1, 0))
}

// Concrete scenario: Digraph([0,1,2]) with 0→1, 1→2; reverse is 2→1, 1→0.
func TestReverse(t *testing.T) {
	g := core.New([]int{0, 1, 2}, core.WithDirected[int]())
	require.True(t, g.AddEdge(0, 1))
	require.True(t, g.AddEdge(1, 2))

	rev, err := g.Reverse()
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), rev.Vertices())
	assert.Equal(t, 2, rev.EdgeCount())
	assert.True(t, rev.HasEdge(1, 0))
	assert.True(t, rev.HasEdge(2, 1))
	assert.False(t, rev.HasEdge(0, 1))
	assert.False(t, rev.HasEdge(1, 2))

	// Source untouched.
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))
}

func TestReverse_Involution(t *testing.T) {
	g := core.New([]int{0, 1, 2, 3}, core.WithDirected[int]())
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 0}} {
		require.True(t, g.AddEdge(p[0], p[1]))
	}

	rev, err := g.Reverse()
	require.NoError(t, err)
	back, err := rev.Reverse()
	require.NoError(t, err)

	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	for _, v := range g.Vertices() {
		for _, w := range g.Vertices() {
			assert.Equal(t, g.HasEdge(v, w), back.HasEdge(v, w), "edge %d→%d", v, w)
		}
	}
}

func TestReverse_Undirected(t *testing.T) {
	g := core.New([]int{0, 1})
	rev, err := g.Reverse()
	assert.Nil(t, rev)
	assert.ErrorIs(t, err, core.ErrNotDirected)
}

func TestClone_Independent(t *testing.T) {
	g := buildPath(t, 4)
	cp := g.Clone()

	assert.Equal(t, g.Vertices(), cp.Vertices())
	assert.Equal(t, g.EdgeCount(), cp.EdgeCount())
	for _, v := range g.Vertices() {
		for _, w := range g.Vertices() {
			assert.Equal(t, g.HasEdge(v, w), cp.HasEdge(v, w))
		}
	}

	cp.AddEdge(0, 3)
	assert.False(t, g.HasEdge(0, 3), "clone mutation must not leak back")
}
