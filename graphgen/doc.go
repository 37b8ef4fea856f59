// SPDX-License-Identifier: MIT

// Package graphgen generates random graphs for benchmarking the rlf
// package's variants, and converts OR-Library style instance files into
// graph.Graph values.
//
// RandomGraph samples an Erdos-Renyi graph: each unordered vertex pair is
// an edge independently with probability p. WriteText, WriteAMPL and
// WriteBinaryFile mirror the three output modes of the original
// command-line generator. ConvertORLibrary reads the OR-Library's
// "n m k" plus per-vertex neighbor-list format.
package graphgen
