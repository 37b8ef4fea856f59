// SPDX-License-Identifier: MIT

// Package graph provides a compact, immutable-after-build representation of
// an undirected simple graph on vertices 0..n-1, stored in compressed sparse
// row (CSR) form.
//
// A Graph is built in two phases: stage edges with AddEdge, then call
// Freeze to compact the staged adjacency into two flat arrays (the offsets
// array and the concatenated neighbor array). Once frozen, a Graph never mutates, so
// every read (Neighbors, HasEdge, Degree) is safe to call concurrently from
// multiple goroutines without locking.
package graph
