// SPDX-License-Identifier: MIT
package rlf

import (
	"github.com/sgualandi/rlfcoloring/graph"
	"github.com/sgualandi/rlfcoloring/partition"
)

// Variant selects which RLF color-class construction loop Color runs.
type Variant int

const (
	// Flat builds each color class from two parallel degree arrays over
	// the whole graph.
	Flat Variant = iota
	// Plus builds each color class by shrinking a PartitionedVertexList
	// in Sparse mode.
	Plus
	// Adaptive is Plus with a per-class Sparse/Dense choice driven by
	// the remaining subgraph's density.
	Adaptive
)

// Result is the outcome of a Color call.
type Result struct {
	// K is the number of colors used, i.e. the computed upper bound on
	// chi(G).
	K int
	// Colors holds, for each vertex v, its 1-indexed assigned color.
	Colors []int
}

// Color computes an RLF coloring of g using the given Variant.
//
// Contract: g must be non-nil and frozen. The RNG used to break ties is
// deterministic given WithSeed or WithRand; without either, Color uses a
// fixed default seed, so repeated calls on the same graph and variant
// return the same result.
func Color(g *graph.Graph, variant Variant, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Frozen() {
		return Result{}, ErrNotFrozen
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	switch variant {
	case Flat:
		return colorFlat(g, cfg)
	case Plus:
		return colorPlusVariant(g, cfg)
	case Adaptive:
		return colorAdaptiveVariant(g, cfg)
	default:
		return Result{}, ErrUnknownVariant
	}
}

func colorPlusVariant(g *graph.Graph, cfg *config) (Result, error) {
	pvl, err := partition.New(g)
	if err != nil {
		return Result{}, err
	}
	return colorPlus(pvl, cfg), nil
}

func colorAdaptiveVariant(g *graph.Graph, cfg *config) (Result, error) {
	pvl, err := partition.New(g)
	if err != nil {
		return Result{}, err
	}
	return colorAdaptive(pvl, cfg), nil
}
