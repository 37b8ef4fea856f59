// SPDX-License-Identifier: MIT
package dimacs

import "errors"

var (
	// ErrProblemLineMissing indicates a text instance had no "p" line.
	ErrProblemLineMissing = errors.New("dimacs: missing problem line")
	// ErrDuplicateProblemLine indicates more than one "p" line was seen.
	ErrDuplicateProblemLine = errors.New("dimacs: duplicate problem line")
	// ErrMalformedLine indicates a line could not be parsed as any of the
	// recognized DIMACS line types.
	ErrMalformedLine = errors.New("dimacs: malformed line")
	// ErrEdgeCountMismatch indicates the number of "e" lines read did not
	// match the edge count declared on the problem line.
	ErrEdgeCountMismatch = errors.New("dimacs: edge count does not match problem line")
	// ErrCorruptPreamble indicates a binary instance's length-prefixed
	// header could not be read or did not contain a usable problem line.
	ErrCorruptPreamble = errors.New("dimacs: corrupt preamble")
	// ErrTruncatedBitmap indicates fewer bitmap bytes were available than
	// the header's vertex count requires.
	ErrTruncatedBitmap = errors.New("dimacs: truncated bitmap")
)
