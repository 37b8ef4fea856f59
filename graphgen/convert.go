// SPDX-License-Identifier: MIT
package graphgen

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/sgualandi/rlfcoloring/graph"
)

// ConvertORLibrary reads an OR-Library style instance: a first line
// "n m k" (vertex count, a count whose exact meaning the original
// converter never documented, and a third field read and discarded the
// same way), followed by n lines, one per vertex, each a whitespace
// separated list of 1-indexed neighbor ids.
//
// k is parsed and discarded exactly as the original converter does; its
// meaning in the source instance format was never pinned down, and
// nothing downstream of this function needs it.
//
// Per vertex i (0-indexed), a neighbor token v is added as edge (i, v-1)
// only when i < v-1, the same asymmetric filter the original converter
// applies; since the neighbor-list format is expected to list each edge
// from both endpoints, this keeps each edge from being added twice.
func ConvertORLibrary(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	if !scanner.Scan() {
		return nil, ErrMalformedORLibrary
	}
	header := strings.Fields(scanner.Text())
	if len(header) < 2 {
		return nil, ErrMalformedORLibrary
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, ErrMalformedORLibrary
	}
	// header[1] is m, header[2] (if present) is k; both discarded.

	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, ErrMalformedORLibrary
		}
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, ErrMalformedORLibrary
			}
			if i < v-1 {
				if err := g.AddEdge(i, v-1); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := g.Freeze(); err != nil {
		return nil, err
	}
	return g, nil
}
