// SPDX-License-Identifier: MIT
package partition

import "errors"

var (
	// ErrNilGraph indicates New was called with a nil graph.
	ErrNilGraph = errors.New("partition: graph must not be nil")
	// ErrNotFrozen indicates New was called with a graph that has not
	// been frozen yet.
	ErrNotFrozen = errors.New("partition: graph must be frozen")
	// ErrEmptyP indicates a selection operation was attempted with no
	// candidate vertices left in P.
	ErrEmptyP = errors.New("partition: P is empty")
)
