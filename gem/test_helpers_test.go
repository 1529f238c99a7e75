// SPDX-License-Identifier: MIT
// Package gem_test contains test helpers
//
// Purpose:
//   - Deterministic fixtures with small integer entries, so fraction-free
//     elimination stays exact in float64 and results can be compared with ==.

package gem_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/matrix"
)

// MustRows builds a matrix from rows or fails the test.
func MustRows(tb testing.TB, rows [][]float64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// nonZeroInt returns a random integer in [-span, span] \ {0}.
func nonZeroInt(rng *rand.Rand, span int) float64 {
	v := rng.Intn(span) + 1
	if rng.Intn(2) == 0 {
		v = -v
	}

	return float64(v)
}

// RankedRows returns k independent rows of width n (upper triangular with a
// nonzero diagonal, so every leading block has full rank), followed by extra
// rows that are integer combinations of them, shuffled.
func RankedRows(rng *rand.Rand, k, n, extra int) [][]float64 {
	basis := make([][]float64, k)
	for i := range basis {
		basis[i] = make([]float64, n)
		basis[i][i] = nonZeroInt(rng, 3)
		for j := i + 1; j < n; j++ {
			basis[i][j] = float64(rng.Intn(7) - 3)
		}
	}

	rows := make([][]float64, 0, k+extra)
	for _, b := range basis {
		rows = append(rows, append([]float64(nil), b...))
	}
	for e := 0; e < extra; e++ {
		row := make([]float64, n)
		for _, b := range basis {
			coef := float64(rng.Intn(5) - 2)
			for j := range row {
				row[j] += coef * b[j]
			}
		}
		rows = append(rows, row)
	}
	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

	return rows
}

// RandomRows returns an r×c matrix of random integers in [-5, 5].
func RandomRows(rng *rand.Rand, r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return rows
}

// zeroPattern marks exact zeros of every row.
func zeroPattern(m *matrix.Matrix) [][]bool {
	out := make([][]bool, m.Rows())
	for i := range out {
		row, _ := m.Row(i)
		out[i] = make([]bool, len(row))
		for j, v := range row {
			out[i][j] = v == 0
		}
	}

	return out
}
