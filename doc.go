// SPDX-License-Identifier: MIT

// Package rlfcoloring is the root of a Recursive Largest First (RLF) graph
// coloring toolkit.
//
// It is organized as a handful of small, independently testable packages:
//
//   - graph holds the CSR-backed Graph type every other package consumes.
//   - dimacs reads and writes the two DIMACS instance formats.
//   - partition implements the doubly linked P/U vertex partitioning used
//     by RLF-Plus and RLF-Adaptive.
//   - rlf is the coloring entry point, Color, with its three variants.
//   - graphgen generates random instances and converts OR-Library files.
//
// The five cmd/ binaries (rlf, rlf-plus, rlf-adaptive, generator,
// converter) wire these packages into the command-line tools a user
// actually runs.
package rlfcoloring
