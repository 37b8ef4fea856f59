// SPDX-License-Identifier: MIT
package graph

import "errors"

var (
	// ErrTooManyVertices indicates a vertex count beyond the 16-bit budget
	// the CSR representation and the DIMACS binary codec are both sized for.
	ErrTooManyVertices = errors.New("graph: vertex count exceeds 65535")
	// ErrTooManyEdges indicates an edge count beyond the representable range.
	ErrTooManyEdges = errors.New("graph: edge count exceeds 2^32-1")
	// ErrNegativeVertexCount indicates NewGraph was called with n < 0.
	ErrNegativeVertexCount = errors.New("graph: vertex count must be non-negative")
	// ErrVertexOutOfRange indicates an operation referenced a vertex id
	// outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
	// ErrAlreadyFrozen indicates AddEdge was called after Freeze.
	ErrAlreadyFrozen = errors.New("graph: cannot add edges after Freeze")
	// ErrNotFrozen indicates a read operation was attempted before Freeze.
	ErrNotFrozen = errors.New("graph: graph must be frozen before it can be queried")
)

const (
	// MaxVertices is the largest vertex count a Graph accepts, matching the
	// 16-bit vertex ids used throughout the DIMACS binary codec.
	MaxVertices = 65535
	// MaxEdges is the largest edge count a Graph accepts.
	MaxEdges = 1<<32 - 1
)
