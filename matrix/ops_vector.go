// SPDX-License-Identifier: MIT
// Package matrix: matrix-vector kernels used to check solutions.
//
// Purpose:
//   - MulVec / Residual evaluate a linear system A·x = b stored as an
//     augmented matrix [A | b] (right-hand side in the last column).
//   - AllClose compares vectors under |a-b| <= atol + rtol*|b|.
//
// Determinism:
//   - Fixed loop orders; no allocation beyond the result vector.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMulVec   = "MulVec"
	opResidual = "Residual"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulVec computes y = A'·x where A' is the leading len(x) columns of m.
// Implementation:
//   - Stage 1: validate m and 0 < len(x) <= Cols().
//   - Stage 2: one dot product per row, i→j order.
//
// Returns:
//   - []float64 of length Rows().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*len(x)), Space O(r).
func MulVec(m *Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if len(x) == 0 || len(x) > m.Cols() {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	y := make([]float64, m.Rows())
	for i, row := range m.data {
		var sum float64
		for j, xv := range x {
			sum += row[j] * xv
		}
		y[i] = sum
	}

	return y, nil
}

// Residual computes r = A·x − b for the augmented matrix m = [A | b].
// Implementation:
//   - Stage 1: validate len(x) == Cols()-1.
//   - Stage 2: MulVec over the coefficient block, subtract the last column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (including Cols() < 2).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func Residual(m *Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if m.Cols() < 2 {
		return nil, matrixErrorf(opResidual, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(x, m.Cols()-1); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	y, err := MulVec(m, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	last := m.Cols() - 1
	for i, row := range m.data {
		y[i] -= row[last]
	}

	return y, nil
}

// MaxAbs returns max |v_i| (0 for an empty vector).
func MaxAbs(v []float64) float64 {
	var best float64
	for _, x := range v {
		if a := math.Abs(x); a > best {
			best = a
		}
	}

	return best
}

// AllClose reports whether |a_i − b_i| <= atol + rtol*|b_i| for every i.
// Policy:
//   - a and b must have equal lengths (ErrDimensionMismatch otherwise).
//   - negative tolerances are normalized; NaN/Inf tolerances yield ErrNaNInf.
//
// Complexity: O(n), early exit on the first violation.
func AllClose(a, b []float64, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateVecLen(a, len(b)); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			return false, nil
		}
	}

	return true, nil
}
