// SPDX-License-Identifier: MIT
package rlf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgualandi/rlfcoloring/graph"
	"github.com/sgualandi/rlfcoloring/rlf"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Freeze())
	return g
}

func assertProperColoring(t *testing.T, g *graph.Graph, res rlf.Result) {
	t.Helper()
	require.Len(t, res.Colors, g.NVertices())
	for v := 0; v < g.NVertices(); v++ {
		assert.GreaterOrEqual(t, res.Colors[v], 1)
		assert.LessOrEqual(t, res.Colors[v], res.K)
		for _, w := range g.Neighbors(v) {
			assert.NotEqual(t, res.Colors[v], res.Colors[int(w)], "adjacent vertices %d,%d share a color", v, w)
		}
	}
}

func TestColor_SingletonVertex(t *testing.T) {
	g := buildGraph(t, 1, nil)
	for _, variant := range []rlf.Variant{rlf.Flat, rlf.Plus, rlf.Adaptive} {
		res, err := rlf.Color(g, variant, rlf.WithSeed(1))
		require.NoError(t, err)
		assert.Equal(t, 1, res.K)
		assertProperColoring(t, g, res)
	}
}

func TestColor_EmptyGraph(t *testing.T) {
	g := buildGraph(t, 0, nil)
	for _, variant := range []rlf.Variant{rlf.Flat, rlf.Plus, rlf.Adaptive} {
		res, err := rlf.Color(g, variant, rlf.WithSeed(1))
		require.NoError(t, err)
		assert.Equal(t, 0, res.K)
		assert.Empty(t, res.Colors)
	}
}

func TestColor_EdgelessGraph(t *testing.T) {
	g := buildGraph(t, 5, nil)
	for _, variant := range []rlf.Variant{rlf.Flat, rlf.Plus, rlf.Adaptive} {
		res, err := rlf.Color(g, variant, rlf.WithSeed(1))
		require.NoError(t, err)
		assert.Equal(t, 1, res.K)
		assertProperColoring(t, g, res)
	}
}

func TestColor_CompleteGraphNeedsNColors(t *testing.T) {
	n := 6
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, n, edges)
	for _, variant := range []rlf.Variant{rlf.Flat, rlf.Plus, rlf.Adaptive} {
		res, err := rlf.Color(g, variant, rlf.WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, n, res.K)
		assertProperColoring(t, g, res)
	}
}

func TestColor_BipartiteGraphNeedsTwoColors(t *testing.T) {
	// K(3,3)
	var edges [][2]int
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, 6, edges)
	for _, variant := range []rlf.Variant{rlf.Flat, rlf.Plus, rlf.Adaptive} {
		res, err := rlf.Color(g, variant, rlf.WithSeed(5))
		require.NoError(t, err)
		assert.Equal(t, 2, res.K)
		assertProperColoring(t, g, res)
	}
}

func TestColor_CycleOddNeedsThreeColors(t *testing.T) {
	n := 7
	var edges [][2]int
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}
	g := buildGraph(t, n, edges)
	for _, variant := range []rlf.Variant{rlf.Flat, rlf.Plus, rlf.Adaptive} {
		res, err := rlf.Color(g, variant, rlf.WithSeed(11))
		require.NoError(t, err)
		assert.Equal(t, 3, res.K)
		assertProperColoring(t, g, res)
	}
}

func TestColor_RandomSparseGraph_AllVariantsProper(t *testing.T) {
	n := 40
	var edges [][2]int
	seedEdges := []int{0, 5, 11, 23, 31}
	for _, base := range seedEdges {
		for k := 1; k <= 6; k++ {
			edges = append(edges, [2]int{base % n, (base + k*k) % n})
		}
	}
	g := buildGraph(t, n, edges)
	for _, variant := range []rlf.Variant{rlf.Flat, rlf.Plus, rlf.Adaptive} {
		res, err := rlf.Color(g, variant, rlf.WithSeed(42))
		require.NoError(t, err)
		assertProperColoring(t, g, res)
	}
}

func TestColor_NilGraph(t *testing.T) {
	_, err := rlf.Color(nil, rlf.Flat)
	assert.ErrorIs(t, err, rlf.ErrNilGraph)
}

func TestColor_UnfrozenGraph(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	_, err = rlf.Color(g, rlf.Flat)
	assert.ErrorIs(t, err, rlf.ErrNotFrozen)
}

func TestColor_UnknownVariant(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	_, err := rlf.Color(g, rlf.Variant(99))
	assert.ErrorIs(t, err, rlf.ErrUnknownVariant)
}

func TestColor_DeterministicWithSameSeed(t *testing.T) {
	g := buildGraph(t, 10, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}, {1, 3}})
	r1, err := rlf.Color(g, rlf.Adaptive, rlf.WithSeed(99))
	require.NoError(t, err)
	r2, err := rlf.Color(g, rlf.Adaptive, rlf.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, r1.K, r2.K)
	assert.Equal(t, r1.Colors, r2.Colors)
}

func TestColor_DensityThresholdAffectsAdaptiveOnly(t *testing.T) {
	n := 20
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if (i+j)%3 == 0 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	g := buildGraph(t, n, edges)
	resAlwaysDense, err := rlf.Color(g, rlf.Adaptive, rlf.WithSeed(2), rlf.WithDensityThreshold(0))
	require.NoError(t, err)
	resAlwaysSparse, err := rlf.Color(g, rlf.Adaptive, rlf.WithSeed(2), rlf.WithDensityThreshold(2))
	require.NoError(t, err)
	assertProperColoring(t, g, resAlwaysDense)
	assertProperColoring(t, g, resAlwaysSparse)

	for _, variant := range []rlf.Variant{rlf.Flat, rlf.Plus} {
		resLow, err := rlf.Color(g, variant, rlf.WithSeed(2), rlf.WithDensityThreshold(0))
		require.NoError(t, err)
		resHigh, err := rlf.Color(g, variant, rlf.WithSeed(2), rlf.WithDensityThreshold(2))
		require.NoError(t, err)
		assert.Equal(t, resLow.Colors, resHigh.Colors)
	}
}
