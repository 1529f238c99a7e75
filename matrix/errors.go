// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers match them via errors.Is. No exported function panics on
// user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped with an operation tag
// ("At(2,3): matrix: index out of range"); errors.Is keeps matching.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or an empty row appended to a matrix).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or rank boundary)
	// is outside valid bounds. At/Set/SwapRows/DeleteRow return it, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. a row whose
	// length differs from the previous rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (Set, AppendRow, FromRows).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns where a
	// non-empty one is required.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")
)
