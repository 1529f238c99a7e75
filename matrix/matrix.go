// SPDX-License-Identifier: MIT

// Package matrix - row-owned storage & safe accessors.
//
// Purpose:
//   - Hold a rectangular grid of float64 as a list of independently owned rows,
//     so that row reordering swaps references instead of copying elements.
//   - Track the rank boundary written by elimination.
//   - Guarantee safety at the public surface: At/Set/SwapRows/DeleteRow return
//     errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set/SwapRows: O(1); DeleteRow: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromRows  = "FromRows"
	ctxAppendRow = "AppendRow"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSwap      = "SwapRows"
	ctxDelete    = "DeleteRow"
	ctxRow       = "Row"
	ctxRank      = "SetRankBoundary"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// cellErrorf wraps an error with a uniform Matrix context and callsite indices.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps an error with a Matrix method tag.
func opErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// Matrix is a dense rectangular matrix stored row by row.
//   - data holds rows independently owned slices, each of length cols.
//   - gcol is the rank boundary: 0 until elimination sets it.
//   - validateNaNInf enables NaN/Inf rejection on ingestion and Set.
type Matrix struct {
	cols           int         // shared row length (>=0)
	gcol           int         // rank boundary, 0 <= gcol <= min(rows, cols)
	data           [][]float64 // one owned slice per row
	validateNaNInf bool        // numeric guard
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate one zero-filled slice per row.
//
// Behavior highlights:
//   - Zero sizes are legal: an empty matrix is a valid value (e.g. an empty
//     input file); elimination rejects it later.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, opErrorf(ctxNew, ErrBadShape)
	}
	o := gatherOptions(opts...)
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
	}

	return &Matrix{cols: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// FromRows builds a matrix from a deep copy of rows.
// Implementation:
//   - Stage 1: check every row has len(rows[0]) entries.
//   - Stage 2: copy each row, applying the numeric policy.
//
// Errors:
//   - ErrDimensionMismatch for ragged input, ErrNaNInf under the default policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	m := &Matrix{validateNaNInf: o.validateNaNInf}
	if len(rows) == 0 {
		return m, nil
	}
	m.cols = len(rows[0])
	m.data = make([][]float64, 0, len(rows))
	for i, src := range rows {
		if len(src) != m.cols {
			return nil, cellErrorf(ctxFromRows, i, len(src), ErrDimensionMismatch)
		}
		if j, bad := m.firstNonFinite(src); bad {
			return nil, cellErrorf(ctxFromRows, i, j, ErrNaNInf)
		}
		row := make([]float64, m.cols)
		copy(row, src)
		m.data = append(m.data, row)
	}

	return m, nil
}

// AppendRow adds row at the bottom, taking ownership of the slice.
// The first row of an empty matrix fixes Cols(); later rows must match it.
//
// Errors:
//   - ErrBadShape for an empty row, ErrDimensionMismatch for a length that
//     differs from Cols(), ErrNaNInf under the default policy.
func (m *Matrix) AppendRow(row []float64) error {
	if m == nil {
		return opErrorf(ctxAppendRow, ErrNilMatrix)
	}
	if len(row) == 0 {
		return opErrorf(ctxAppendRow, ErrBadShape)
	}
	if len(m.data) > 0 && len(row) != m.cols {
		return cellErrorf(ctxAppendRow, len(m.data), len(row), ErrDimensionMismatch)
	}
	if j, bad := m.firstNonFinite(row); bad {
		return cellErrorf(ctxAppendRow, len(m.data), j, ErrNaNInf)
	}
	if len(m.data) == 0 {
		m.cols = len(row)
	}
	m.data = append(m.data, row)

	return nil
}

// firstNonFinite reports the first NaN/Inf index of row when the policy is on.
func (m *Matrix) firstNonFinite(row []float64) (int, bool) {
	if !m.validateNaNInf {
		return 0, false
	}
	for j, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return j, true
		}
	}

	return 0, false
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return len(m.data) }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return len(m.data), m.cols }

// RankBoundary returns the number of columns that obtained a pivot during
// the last elimination (0 before any elimination).
func (m *Matrix) RankBoundary() int { return m.gcol }

// SetRankBoundary records the rank boundary k.
// Errors:
//   - ErrOutOfRange unless 0 <= k <= min(Rows(), Cols()).
func (m *Matrix) SetRankBoundary(k int) error {
	if k < 0 || k > min(len(m.data), m.cols) {
		return cellErrorf(ctxRank, k, min(len(m.data), m.cols), ErrOutOfRange)
	}
	m.gcol = k

	return nil
}

// checkCell validates (row, col) for the caller's method tag.
func (m *Matrix) checkCell(method string, row, col int) error {
	if row < 0 || row >= len(m.data) || col < 0 || col >= m.cols {
		return cellErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.checkCell(ctxAt, row, col); err != nil {
		return 0, err
	}

	return m.data[row][col], nil
}

// Set assigns v at (row, col), enforcing the numeric policy.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.checkCell(ctxSet, row, col); err != nil {
		return err
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return cellErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[row][col] = v

	return nil
}

// Row returns the live row i (no copy). Writes through the slice bypass the
// numeric policy; kernels use it for their inner loops.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(m.data) {
		return nil, cellErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i], nil
}

// SwapRows exchanges the references of rows i and j; elements are not copied.
// Complexity: O(1).
func (m *Matrix) SwapRows(i, j int) error {
	if i < 0 || i >= len(m.data) || j < 0 || j >= len(m.data) {
		return cellErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	m.data[i], m.data[j] = m.data[j], m.data[i]

	return nil
}

// DeleteRow removes row i, shifting the rows below it up by one.
// Cols() is unchanged even when the last row goes. The rank boundary is
// clamped to the new min(Rows(), Cols()).
// Complexity: O(r) reference moves.
func (m *Matrix) DeleteRow(i int) error {
	if i < 0 || i >= len(m.data) {
		return cellErrorf(ctxDelete, i, 0, ErrOutOfRange)
	}
	copy(m.data[i:], m.data[i+1:])
	m.data[len(m.data)-1] = nil // drop the reference for the GC
	m.data = m.data[:len(m.data)-1]
	if limit := min(len(m.data), m.cols); m.gcol > limit {
		m.gcol = limit
	}

	return nil
}

// Clone returns a deep copy, including the rank boundary and numeric policy.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{
		cols:           m.cols,
		gcol:           m.gcol,
		data:           make([][]float64, len(m.data)),
		validateNaNInf: m.validateNaNInf,
	}
	for i, row := range m.data {
		cp.data[i] = append([]float64(nil), row...)
	}

	return cp
}

// ToRows returns a deep copy of the entries as a [][]float64.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, len(m.data))
	for i, row := range m.data {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// String renders rows as "[a, b, c]" lines for diagnostics.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.data {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// CountZeros returns the number of entries of row that are exactly zero.
// Elimination uses it as the sparsity tie-break between equal pivots.
func CountZeros(row []float64) int {
	z := 0
	for _, v := range row {
		if v == 0 {
			z++
		}
	}

	return z
}

// IsZeroRow reports whether every entry of row is exactly zero.
func IsZeroRow(row []float64) bool {
	return CountZeros(row) == len(row)
}
