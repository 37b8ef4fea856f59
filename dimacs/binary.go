// SPDX-License-Identifier: MIT
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sgualandi/rlfcoloring/graph"
)

// address computes the byte offset, within the bitmap, of the start of row
// i's packed lower-triangle bits. The formula is inherited verbatim from
// the original DIMACS binary reader/writer pair and must not be
// "simplified": written as (q+1)*(4q+r) with q = i>>3 and r = i&7, it is
// the closed form of k/8+1 summed over the rows k < i, and it is what
// every file on disk in this format was built with, so it stays exactly
// as is.
func address(i int) int {
	return ((i>>3)+1)*((i>>3)*4+(i&7))
}

// EncodeBinary writes g in the length-prefixed DIMACS binary bitmap format:
// an ASCII decimal header length followed by a newline, then that many
// header bytes (at minimum a "p edge n m" line), then a packed lower
// triangle of the adjacency matrix, row i occupying i/8+1 bytes.
func EncodeBinary(w io.Writer, g *graph.Graph, comment string) error {
	var header strings.Builder
	if comment != "" {
		header.WriteString("c ")
		header.WriteString(comment)
		header.WriteByte('\n')
	}
	fmt.Fprintf(&header, "p edge %d %d\n", g.NVertices(), g.NEdges())

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", header.Len()); err != nil {
		return err
	}
	if _, err := bw.WriteString(header.String()); err != nil {
		return err
	}

	n := g.NVertices()
	for i := 0; i < n; i++ {
		row := make([]byte, i/8+1)
		for j := 0; j < i; j++ {
			if g.HasEdge(i, j) {
				row[j/8] |= 1 << (7 - uint(j%8))
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeBinary reads the format written by EncodeBinary.
func DecodeBinary(r io.Reader) (*graph.Graph, error) {
	br := bufio.NewReader(r)

	lenLine, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w: %v", ErrCorruptPreamble, err)
	}
	headerLen, err := strconv.Atoi(strings.TrimSpace(lenLine))
	if err != nil || headerLen < 0 {
		return nil, ErrCorruptPreamble
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("dimacs: %w: %v", ErrCorruptPreamble, err)
	}

	n, _, err := parsePreamble(header)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrCorruptPreamble
	}

	bmpSize := address(n)
	bitmap := make([]byte, bmpSize)
	if _, err := io.ReadFull(br, bitmap); err != nil {
		return nil, fmt.Errorf("dimacs: %w: %v", ErrTruncatedBitmap, err)
	}

	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if getEdgeBit(bitmap, i, j) {
				if err := g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := g.Freeze(); err != nil {
		return nil, err
	}
	return g, nil
}

// getEdgeBit tests whether edge (i, j), i > j, is set in the packed
// bitmap, using the same address() arithmetic the writer used to place it.
func getEdgeBit(bitmap []byte, i, j int) bool {
	idx := address(i) + j/8
	if idx < 0 || idx >= len(bitmap) {
		return false
	}
	return bitmap[idx]&(1<<(7-uint(j%8))) != 0
}

// parsePreamble scans a DIMACS header for its "c" comment lines (skipped)
// and its single "p <fmt> <n> <m>" problem line.
func parsePreamble(header []byte) (n, m int, err error) {
	text := string(header)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] == 'c' {
			continue
		}
		if line[0] == 'p' {
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return 0, 0, ErrCorruptPreamble
			}
			n, err = strconv.Atoi(fields[2])
			if err != nil {
				return 0, 0, ErrCorruptPreamble
			}
			m, err = strconv.Atoi(fields[3])
			if err != nil {
				return 0, 0, ErrCorruptPreamble
			}
			return n, m, nil
		}
	}
	return 0, 0, ErrCorruptPreamble
}
