// SPDX-License-Identifier: MIT
package graphgen

import "errors"

var (
	// ErrTooFewVertices indicates RandomGraph was called with n < 1.
	ErrTooFewVertices = errors.New("graphgen: need at least one vertex")
	// ErrInvalidProbability indicates RandomGraph was called with an
	// edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("graphgen: edge probability must be in [0, 1]")
	// ErrNeedRandSource indicates RandomGraph was called without a
	// WithSeed or WithRand option supplying its RNG.
	ErrNeedRandSource = errors.New("graphgen: no random source configured")
	// ErrMalformedORLibrary indicates an OR-Library instance file could
	// not be parsed.
	ErrMalformedORLibrary = errors.New("graphgen: malformed OR-Library instance")
)
