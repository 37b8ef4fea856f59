// SPDX-License-Identifier: MIT
package graphgen

import (
	"fmt"
	"io"
	"os"

	"github.com/sgualandi/rlfcoloring/dimacs"
	"github.com/sgualandi/rlfcoloring/graph"
)

// WriteText writes g in DIMACS ASCII format with a "graph gen seed <seed>"
// comment, matching the original command-line generator's t=0 output mode.
func WriteText(w io.Writer, g *graph.Graph, seed int64) error {
	return dimacs.WriteText(w, g, fmt.Sprintf("graph gen seed %d", seed))
}

// WriteAMPL writes a minimal AMPL data stub declaring only the vertex
// count. The original generator's t=1 mode left this incomplete ("Da
// completare"); this keeps that same incompleteness rather than inventing
// an AMPL data format nothing in this toolkit consumes.
func WriteAMPL(w io.Writer, g *graph.Graph) error {
	_, err := fmt.Fprintf(w, "data;\nparam n := %d;\n", g.NVertices())
	return err
}

// BinaryFileName reproduces the original generator's t=2 output filename
// convention: g-<n>-<density>-<seed>.b.
func BinaryFileName(n int, density float64, seed int64) string {
	return fmt.Sprintf("g-%d-%g-%d.b", n, density, seed)
}

// WriteBinaryFile writes g to path in DIMACS binary format.
func WriteBinaryFile(path string, g *graph.Graph, seed int64, density float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	comment := fmt.Sprintf("graph gen seed %d density %g", seed, density)
	return dimacs.EncodeBinary(f, g, comment)
}
