// SPDX-License-Identifier: MIT

package gem

import (
	"math"

	"github.com/katalvlaran/lineq/matrix"
)

// Eliminate reduces m in place and returns the same pointer.
// Implementation:
//   - Stage 1: validate (nil / zero rows / zero cols → ErrInvalidMatrix).
//   - Stage 2: for c = 0..min(rows, cols)-1 pick the pivot row, combine
//     every other row of [c, rows) with it, swap it into position c. Stop at
//     the first column without a nonzero candidate.
//   - Stage 3: delete all-zero rows from the bottom up to index c.
//   - Stage 4: record c as the rank boundary.
//
// Behavior highlights:
//   - No division: row[j] = a·row[j] − b·pivot[j] with a = pivot[c], b = row[c].
//     Rows whose entry in column c is already zero are still scaled by a.
//   - A single-row matrix is left untouched; its rank boundary is 1 when the
//     leading entry is nonzero, else 0.
//   - Rows above the pivot are not combined: the reduced block is upper
//     triangular, which is what back substitution needs.
//
// Errors:
//   - ErrInvalidMatrix (wrapping matrix.ErrNilMatrix or matrix.ErrEmptyMatrix).
//
// Determinism:
//   - Fixed scan orders; full ties resolve to the topmost candidate row.
//
// Complexity:
//   - Time O(rows·cols·min(rows, cols)), Space O(1) beyond the matrix.
func Eliminate(m *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, gemErrorf(opEliminate, err)
	}

	rows, cols := m.Shape()
	if rows == 1 {
		lead, _ := m.At(0, 0)
		if lead != 0 {
			_ = m.SetRankBoundary(1)
		} else {
			_ = m.SetRankBoundary(0)
		}

		return m, nil
	}

	var c int // current pivot column; becomes the rank boundary
	for limit := min(rows, cols); c < limit; c++ {
		p := selectPivot(m, c)
		if p < 0 {
			break // no nonzero candidate: column c and later are free
		}
		combine(m, p, c)
		_ = m.SwapRows(p, c) // indices are in range by construction
	}

	prune(m, c)
	_ = m.SetRankBoundary(c) // c <= min(rows, cols); pruning keeps rows >= c

	return m, nil
}

// selectPivot returns the pivot row for column c, or -1 when every entry of
// column c in rows [c, Rows()) is zero.
// Primary key: smallest |m[r][c]|. Tie-break: most exact zeros in the row.
// The zero count is computed only when a tie actually occurs.
func selectPivot(m *matrix.Matrix, c int) int {
	best := -1
	var bestAbs float64
	bestZeros := -1 // unknown until needed

	for r := c; r < m.Rows(); r++ {
		row, _ := m.Row(r)
		if row[c] == 0 {
			continue
		}
		abs := math.Abs(row[c])
		switch {
		case best < 0 || abs < bestAbs:
			best, bestAbs, bestZeros = r, abs, -1
		case abs == bestAbs:
			if bestZeros < 0 {
				bestRow, _ := m.Row(best)
				bestZeros = matrix.CountZeros(bestRow)
			}
			if z := matrix.CountZeros(row); z > bestZeros {
				best, bestZeros = r, z
			}
		}
	}

	return best
}

// combine clears column c of every row in [c, Rows()) except the pivot row p
// using the fraction-free rule row[j] = a·row[j] − b·pivot[j], j > c.
func combine(m *matrix.Matrix, p, c int) {
	pivot, _ := m.Row(p)
	a := pivot[c]
	cols := m.Cols()

	for r := c; r < m.Rows(); r++ {
		if r == p {
			continue
		}
		row, _ := m.Row(r)
		b := row[c]
		row[c] = 0
		for j := c + 1; j < cols; j++ {
			row[j] = a*row[j] - b*pivot[j]
		}
	}
}

// prune deletes, from the bottom row up to index c, every row whose entries
// are all exactly zero.
func prune(m *matrix.Matrix, c int) {
	for r := m.Rows() - 1; r >= c; r-- {
		row, _ := m.Row(r)
		if matrix.IsZeroRow(row) {
			_ = m.DeleteRow(r)
		}
	}
}

// Rank eliminates a clone of m and returns its rank boundary; m itself is
// not modified.
//
// Errors:
//   - ErrInvalidMatrix as for Eliminate.
func Rank(m *matrix.Matrix) (int, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return 0, gemErrorf(opRank, err)
	}
	reduced, err := Eliminate(m.Clone())
	if err != nil {
		return 0, err
	}

	return reduced.RankBoundary(), nil
}
