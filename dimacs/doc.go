// SPDX-License-Identifier: MIT

// Package dimacs reads and writes the two DIMACS graph-coloring instance
// formats the toolkit's CLI tools accept: the plain-text "edge"/"col"
// format used by ReadText, and the length-prefixed binary bitmap format
// used by EncodeBinary/DecodeBinary.
//
// Both formats are external wire formats, not internal ones: byte layout,
// including the binary format's row-offset arithmetic, is fixed by
// longstanding convention and must not be "simplified" even where a
// friendlier encoding would be easier to read.
package dimacs
