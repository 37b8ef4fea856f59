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

// ReadText parses the DIMACS ASCII coloring format:
//
//	c <comment, ignored>
//	p edge <n> <m>      (or "p col <n> <m>"; exactly one p line is required)
//	n <vertex> <weight> (vertex weight, parsed for well-formedness and discarded)
//	e <i> <j>           (1-indexed endpoints of an edge)
//
// Lines are whitespace-trimmed and blank lines are skipped. The number of
// "e" lines actually read must equal the edge count declared on the "p"
// line, or ReadText returns ErrEdgeCountMismatch.
func ReadText(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	var g *graph.Graph
	var declaredN, declaredM int
	haveProblem := false
	edgesSeen := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "p":
			if haveProblem {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrDuplicateProblemLine)
			}
			if len(fields) != 4 {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMalformedLine)
			}
			n, errN := strconv.Atoi(fields[2])
			m, errM := strconv.Atoi(fields[3])
			if errN != nil || errM != nil || n < 0 || m < 0 {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMalformedLine)
			}
			var err error
			g, err = graph.NewGraph(n)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			declaredN, declaredM = n, m
			haveProblem = true
		case "n":
			if !haveProblem {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrProblemLineMissing)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMalformedLine)
			}
			if _, err := strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMalformedLine)
			}
			if _, err := strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMalformedLine)
			}
		case "e":
			if !haveProblem {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrProblemLineMissing)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMalformedLine)
			}
			i, errI := strconv.Atoi(fields[1])
			j, errJ := strconv.Atoi(fields[2])
			if errI != nil || errJ != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMalformedLine)
			}
			if err := g.AddEdge(i-1, j-1); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			edgesSeen++
		default:
			return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMalformedLine)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if !haveProblem {
		return nil, ErrProblemLineMissing
	}
	if edgesSeen != declaredM {
		return nil, fmt.Errorf("dimacs: declared %d, n=%d edges read %d: %w", declaredM, declaredN, edgesSeen, ErrEdgeCountMismatch)
	}
	if err := g.Freeze(); err != nil {
		return nil, err
	}
	return g, nil
}

// WriteText writes g in the DIMACS ASCII coloring format, with an optional
// leading comment line.
func WriteText(w io.Writer, g *graph.Graph, comment string) error {
	bw := bufio.NewWriter(w)
	if comment != "" {
		if _, err := fmt.Fprintf(bw, "c %s\n", comment); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", g.NVertices(), g.NEdges()); err != nil {
		return err
	}
	for v := 0; v < g.NVertices(); v++ {
		for _, w := range g.Neighbors(v) {
			if int(w) <= v {
				continue
			}
			if _, err := fmt.Fprintf(bw, "e %d %d\n", v+1, w+1); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
