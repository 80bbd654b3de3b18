// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All algorithms MUST return these
// sentinels and tests MUST check them via errors.Is; panics are reserved
// for programmer errors, never for user-triggered input conditions.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a source slice's length does not match
	// the declared shape (e.g. column-major ingestion of the wrong length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOverflow indicates rows*cols overflows platform int, the one case
	// in which allocation failure is predictable ahead of calling make.
	ErrOverflow = errors.New("matrix: requested shape overflows int")
)
