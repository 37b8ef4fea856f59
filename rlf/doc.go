// SPDX-License-Identifier: MIT

// Package rlf computes an upper bound on the chromatic number of an
// undirected graph using the Recursive Largest First heuristic, in three
// variants selected by Variant:
//
//   - Flat builds each color class from a pair of parallel degree arrays
//     over the whole graph, restated directly from the original RLF
//     algorithm.
//   - Plus builds each color class by shrinking a PartitionedVertexList,
//     eagerly maintaining degree-into-U as vertices are excluded.
//   - Adaptive is Plus with a per-color-class choice between that eager
//     (Sparse) maintenance and a lazy (Dense) one, based on the density of
//     the remaining subgraph.
//
// All three variants use the same external entry point, Color, and accept
// the same RNG-threading options so a run is reproducible from a seed.
package rlf
