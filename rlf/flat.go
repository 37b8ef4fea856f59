// SPDX-License-Identifier: MIT
package rlf

import "github.com/sgualandi/rlfcoloring/graph"

// colorFlat is the RLF-Flat color-class construction loop, restated from
// the original algorithm's two parallel arrays:
//
//   - F holds each vertex's degree among not-yet-colored vertices; it is
//     monotonically non-increasing across the whole run and is never
//     restored between color classes.
//   - E is F's working copy for the current color class: E[v] goes
//     negative the instant v is either colored or excluded from the
//     class, and is otherwise F[v] minus the number of v's neighbors
//     already excluded from the class.
//
// Both arrays are 1-indexed internally, matching the original restatement
// exactly, and translated back to 0-indexed vertex ids in the returned
// Result.
func colorFlat(g *graph.Graph, cfg *config) (Result, error) {
	n := g.NVertices()
	if n == 0 {
		return Result{K: 0, Colors: []int{}}, nil
	}

	F := make([]int, n+1)
	E := make([]int, n+1)
	C := make([]int, n+1)
	for i := 1; i <= n; i++ {
		F[i] = g.Degree(i - 1)
	}

	myDelete := func(H []int, m int) {
		H[m] = -1
		for _, w := range g.Neighbors(m - 1) {
			j := int(w) + 1
			H[j]--
		}
	}

	color := 0
	colored := 0
	for colored < n {
		color++
		copy(E, F)

		// Opening: pick the vertex with the largest F, fair-coin tiebreak.
		L := 1
		for i := 2; i <= n; i++ {
			if F[i] > F[L] || (F[i] == F[L] && cfg.rng.Intn(2) == 1) {
				L = i
			}
		}

		for E[L] >= 0 {
			myDelete(E, L)
			myDelete(F, L)
			C[L] = color
			colored++

			for _, w := range g.Neighbors(L - 1) {
				j := int(w) + 1
				if E[j] >= 0 {
					myDelete(E, j)
				}
			}

			// Extending: among still-candidate vertices, pick the one
			// maximizing F-E (most neighbors already excluded from this
			// class), with E ascending as the tiebreak.
			K := 0
			for i := 1; i <= n; i++ {
				if E[i] >= 0 {
					K = i
					break
				}
			}
			if K > 0 {
				L = K
				for i := K + 1; i <= n; i++ {
					if E[i] < 0 {
						continue
					}
					if F[i]-E[i] > F[L]-E[L] || (F[i]-E[i] == F[L]-E[L] && E[i] < E[L]) {
						L = i
					}
				}
			}
		}
	}

	debugAssert(colored == n, "flat loop finished without coloring every vertex")

	colors := make([]int, n)
	for i := 1; i <= n; i++ {
		colors[i-1] = C[i]
	}
	return Result{K: color, Colors: colors}, nil
}
