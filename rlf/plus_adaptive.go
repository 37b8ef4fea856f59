// SPDX-License-Identifier: MIT
package rlf

import "github.com/sgualandi/rlfcoloring/partition"

// colorPlus is the RLF-Plus color-class construction loop: always Sparse,
// with degree-into-U maintained eagerly.
func colorPlus(pvl *partition.PartitionedVertexList, cfg *config) Result {
	color := 0
	for !pvl.AllColored() {
		color++
		runColorClassSparse(pvl, cfg, color)
		pvl.SwapUIntoP()
	}
	return Result{K: color, Colors: pvl.Colors()}
}

// colorAdaptive is the RLF-Adaptive color-class construction loop: each
// class picks Sparse or Dense selection up front, based on whether the
// remaining subgraph's density has reached cfg.densityThreshold, and
// sticks with it for the whole class.
func colorAdaptive(pvl *partition.PartitionedVertexList, cfg *config) Result {
	color := 0
	for !pvl.AllColored() {
		color++
		if pvl.Density() >= cfg.densityThreshold {
			runColorClassDense(pvl, cfg, color)
		} else {
			runColorClassSparse(pvl, cfg, color)
		}
		pvl.SwapUIntoP()
	}
	return Result{K: color, Colors: pvl.Colors()}
}

// runColorClassSparse opens a color class on the current maximum-DegP
// vertex in P, then repeatedly extends it with SelectVertexSparse until P
// is exhausted.
func runColorClassSparse(pvl *partition.PartitionedVertexList, cfg *config, color int) {
	debugAssert(!pvl.Empty(), "runColorClassSparse called with empty P")

	v := pvl.MaxDegreePVertex(cfg.rng)
	pvl.SetColor(v, color)
	pvl.MoveNeighbors(v, partition.Sparse)

	for !pvl.Empty() {
		w := pvl.SelectVertexSparse()
		pvl.SetColor(w, color)
		pvl.MoveNeighbors(w, partition.Sparse)
	}
}

// runColorClassDense is runColorClassSparse's Dense-mode twin: it opens
// the class the same way, but extends it with SelectVertexDense and skips
// the eager degree-into-U bookkeeping MoveNeighbors would otherwise do.
func runColorClassDense(pvl *partition.PartitionedVertexList, cfg *config, color int) {
	debugAssert(!pvl.Empty(), "runColorClassDense called with empty P")

	v := pvl.MaxDegreePVertex(cfg.rng)
	pvl.SetColor(v, color)
	pvl.MoveNeighbors(v, partition.Dense)

	for !pvl.Empty() {
		w := pvl.SelectVertexDense(cfg.rng)
		pvl.SetColor(w, color)
		pvl.MoveNeighbors(w, partition.Dense)
	}
}
