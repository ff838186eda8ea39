package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randgraph/builder"
	"github.com/katalvlaran/randgraph/core"
	"github.com/katalvlaran/randgraph/matrix"
)

func TestAdjacency_NilGraph(t *testing.T) {
	_, err := matrix.Adjacency[int](nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestAdjacency_Undirected(t *testing.T) {
	g := core.New([]int{0, 1, 2})
	require.True(t, g.AddEdge(0, 1))
	require.True(t, g.AddEdge(1, 2))

	mat, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, mat)
}

func TestAdjacency_Directed(t *testing.T) {
	g := core.New([]int{0, 1, 2}, core.WithDirected[int]())
	require.True(t, g.AddEdge(0, 1))
	require.True(t, g.AddEdge(1, 2))
	require.True(t, g.AddEdge(2, 0))

	mat, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}, mat)
}

func TestAdjacency_CatalogOrderIrrelevant(t *testing.T) {
	// Labels are dense but shuffled; rows follow labels, not positions.
	g := core.New([]int{2, 0, 1})
	require.True(t, g.AddEdge(2, 0))

	mat, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, 1, mat[2][0])
	assert.Equal(t, 1, mat[0][2])
	assert.Equal(t, 0, mat[1][2])
}

func TestAdjacency_UnsupportedLabels(t *testing.T) {
	s := core.New([]string{"a", "b"})
	_, err := matrix.Adjacency(s)
	assert.ErrorIs(t, err, matrix.ErrUnsupportedLabel)

	sparse := core.New([]int{0, 5})
	_, err = matrix.Adjacency(sparse)
	assert.ErrorIs(t, err, matrix.ErrUnsupportedLabel)

	negative := core.New([]int{-1, 0})
	_, err = matrix.Adjacency(negative)
	assert.ErrorIs(t, err, matrix.ErrUnsupportedLabel)
}

func TestAdjacency_EmptyGraph(t *testing.T) {
	g := core.New([]int{})
	mat, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Empty(t, mat)
}

func TestAdjacency_SymmetryOnRandomGraph(t *testing.T) {
	g, err := builder.Random(12, 20, builder.WithSeed(31))
	require.NoError(t, err)

	mat, err := matrix.Adjacency(g)
	require.NoError(t, err)

	ones := 0
	for i := range mat {
		assert.Equal(t, 0, mat[i][i], "no self-loops on the diagonal")
		for j := range mat[i] {
			assert.Equal(t, mat[i][j], mat[j][i], "undirected symmetry at (%d,%d)", i, j)
			ones += mat[i][j]
		}
	}
	assert.Equal(t, 2*g.EdgeCount(), ones)
}
