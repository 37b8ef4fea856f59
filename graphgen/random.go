// SPDX-License-Identifier: MIT
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= density <= 1 (else ErrInvalidProbability).
//   - An RNG is required even for density in {0,1}, to keep the contract
//     uniform and catch a missing WithSeed/WithRand at the call site
//     rather than silently defaulting.
//
// Complexity: O(n^2) Bernoulli trials, one per unordered vertex pair.
//
// Determinism: stable trial order, i ascending then j > i ascending, so a
// fixed seed always produces the same edge set.
package graphgen

import (
	"fmt"

	"github.com/sgualandi/rlfcoloring/graph"
)

const (
	minVertices = 1
	probMin     = 0.0
	probMax     = 1.0
)

// RandomGraph samples an Erdos-Renyi graph on n vertices where each
// unordered pair {i, j} is an edge independently with probability
// density.
func RandomGraph(n int, density float64, opts ...Option) (*graph.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("graphgen: n=%d: %w", n, ErrTooFewVertices)
	}
	if density < probMin || density > probMax {
		return nil, fmt.Errorf("graphgen: density=%.6f: %w", density, ErrInvalidProbability)
	}

	cfg := defaultGenConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < density {
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
