// SPDX-License-Identifier: MIT
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgualandi/rlfcoloring/graph"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.Freeze())
	return g
}

func TestNewGraph_RejectsOutOfBudget(t *testing.T) {
	_, err := graph.NewGraph(-1)
	assert.ErrorIs(t, err, graph.ErrNegativeVertexCount)

	_, err = graph.NewGraph(graph.MaxVertices + 1)
	assert.ErrorIs(t, err, graph.ErrTooManyVertices)
}

func TestAddEdge_IgnoresSelfLoopsAndDuplicates(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.Freeze())

	assert.Equal(t, 1, g.NEdges())
	assert.False(t, g.HasEdge(0, 0))
	assert.True(t, g.HasEdge(0, 1))
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(0, 5), graph.ErrVertexOutOfRange)
}

func TestAddEdge_AfterFreeze(t *testing.T) {
	g := buildTriangle(t)
	assert.ErrorIs(t, g.AddEdge(0, 1), graph.ErrAlreadyFrozen)
}

func TestTriangleInvariants(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, 3, g.NVertices())
	assert.Equal(t, 3, g.NEdges())
	assert.Equal(t, 2, g.MaxDegree())

	for v := 0; v < 3; v++ {
		assert.Equal(t, 2, g.Degree(v))
	}

	nb := g.Neighbors(0)
	require.Len(t, nb, 2)
	assert.Equal(t, int32(1), nb[0])
	assert.Equal(t, int32(2), nb[1])

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 0))
}

func TestEmptyGraph(t *testing.T) {
	g, err := graph.NewGraph(0)
	require.NoError(t, err)
	require.NoError(t, g.Freeze())
	assert.Equal(t, 0, g.NVertices())
	assert.Equal(t, 0, g.NEdges())
	assert.Equal(t, 0, g.MaxDegree())
}
