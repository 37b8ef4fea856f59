// SPDX-License-Identifier: MIT
package rlf

import "math/rand"

// config collects the tunables every variant reads from.
type config struct {
	rng              *rand.Rand
	densityThreshold float64
}

func defaultConfig() *config {
	return &config{
		rng:              rand.New(rand.NewSource(1)),
		densityThreshold: 0.0,
	}
}

// Option configures a Color call.
type Option func(*config)

// WithSeed seeds the internal tie-break RNG deterministically. Two Color
// calls on the same graph, variant and seed produce the same coloring.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the tie-break RNG directly, for callers that want to
// share or control a *rand.Rand across multiple calls. Panics if rng is
// nil: a nil RNG is a programming error, not a runtime condition callers
// should need to handle.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("rlf: WithRand called with nil *rand.Rand")
	}
	return func(c *config) {
		c.rng = rng
	}
}

// WithDensityThreshold sets the Adaptive variant's DD threshold: a color
// class switches to Dense-mode selection once the remaining subgraph's
// edge density is at least this value. Ignored by Flat and Plus. The
// default, 0.0, makes every class Dense except one opened with a single
// uncolored vertex left, whose density is reported as -1.
func WithDensityThreshold(dd float64) Option {
	return func(c *config) {
		c.densityThreshold = dd
	}
}
