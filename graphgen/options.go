// SPDX-License-Identifier: MIT
package graphgen

import "math/rand"

// Option configures RandomGraph.
type Option func(*genConfig)

type genConfig struct {
	rng *rand.Rand
}

func defaultGenConfig() *genConfig {
	return &genConfig{}
}

// WithSeed seeds RandomGraph's sampler deterministically.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the sampler's RNG directly. Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("graphgen: WithRand called with nil *rand.Rand")
	}
	return func(c *genConfig) {
		c.rng = rng
	}
}
