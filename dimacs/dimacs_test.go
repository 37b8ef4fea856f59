// SPDX-License-Identifier: MIT
package dimacs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgualandi/rlfcoloring/dimacs"
	"github.com/sgualandi/rlfcoloring/graph"
)

func TestReadText_Triangle(t *testing.T) {
	src := "c a small triangle\np edge 3 3\ne 1 2\ne 2 3\ne 3 1\n"
	g, err := dimacs.ReadText(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NVertices())
	assert.Equal(t, 3, g.NEdges())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 0))
}

func TestReadText_MissingProblemLine(t *testing.T) {
	_, err := dimacs.ReadText(strings.NewReader("e 1 2\n"))
	assert.ErrorIs(t, err, dimacs.ErrProblemLineMissing)
}

func TestReadText_DuplicateProblemLine(t *testing.T) {
	src := "p edge 2 1\np edge 2 1\ne 1 2\n"
	_, err := dimacs.ReadText(strings.NewReader(src))
	assert.ErrorIs(t, err, dimacs.ErrDuplicateProblemLine)
}

func TestReadText_EdgeCountMismatch(t *testing.T) {
	src := "p edge 3 2\ne 1 2\n"
	_, err := dimacs.ReadText(strings.NewReader(src))
	assert.ErrorIs(t, err, dimacs.ErrEdgeCountMismatch)
}

func TestReadText_MalformedLine(t *testing.T) {
	_, err := dimacs.ReadText(strings.NewReader("p edge 2 1\nx 1 2\n"))
	assert.ErrorIs(t, err, dimacs.ErrMalformedLine)
}

func TestWriteText_RoundTrip(t *testing.T) {
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.Freeze())

	var buf bytes.Buffer
	require.NoError(t, dimacs.WriteText(&buf, g, "round trip"))

	g2, err := dimacs.ReadText(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NVertices(), g2.NVertices())
	assert.Equal(t, g.NEdges(), g2.NEdges())
	for v := 0; v < g.NVertices(); v++ {
		for w := 0; w < g.NVertices(); w++ {
			assert.Equal(t, g.HasEdge(v, w), g2.HasEdge(v, w))
		}
	}
}

func TestBinary_RoundTrip(t *testing.T) {
	g, err := graph.NewGraph(10)
	require.NoError(t, err)
	edges := [][2]int{{0, 1}, {0, 9}, {3, 7}, {5, 6}, {8, 9}, {1, 2}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Freeze())

	var buf bytes.Buffer
	require.NoError(t, dimacs.EncodeBinary(&buf, g, "roundtrip"))

	g2, err := dimacs.DecodeBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NVertices(), g2.NVertices())
	assert.Equal(t, g.NEdges(), g2.NEdges())
	for v := 0; v < g.NVertices(); v++ {
		for w := 0; w < g.NVertices(); w++ {
			assert.Equal(t, g.HasEdge(v, w), g2.HasEdge(v, w))
		}
	}
}

func TestDecodeBinary_CorruptPreamble(t *testing.T) {
	_, err := dimacs.DecodeBinary(strings.NewReader("not-a-length\n"))
	assert.ErrorIs(t, err, dimacs.ErrCorruptPreamble)
}
