// SPDX-License-Identifier: MIT
// Package lineq_test contains test helpers
//
// Purpose:
//   - Build consistent integer systems [A | A·x0] of known rank, small enough
//     that elimination stays exact in float64.

package lineq_test

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

// consistentSystem returns [A | A·x0] where A has k independent rows of n
// unknowns plus extra dependent rows, and the x0 it was built from.
func consistentSystem(rng *rand.Rand, k, n, extra int) ([][]float64, []float64) {
	basis := make([][]float64, k)
	for i := range basis {
		basis[i] = make([]float64, n)
		d := float64(rng.Intn(3) + 1)
		if rng.Intn(2) == 0 {
			d = -d
		}
		basis[i][i] = d
		for j := i + 1; j < n; j++ {
			basis[i][j] = float64(rng.Intn(7) - 3)
		}
	}
	a := make([][]float64, 0, k+extra)
	a = append(a, basis...)
	for e := 0; e < extra; e++ {
		row := make([]float64, n)
		for _, b := range basis {
			coef := float64(rng.Intn(5) - 2)
			for j := range row {
				row[j] += coef * b[j]
			}
		}
		a = append(a, row)
	}
	rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })

	x0 := make([]float64, n)
	for j := range x0 {
		x0[j] = float64(rng.Intn(7) - 3)
	}
	rows := make([][]float64, len(a))
	for i, row := range a {
		var rhs float64
		for j, v := range row {
			rhs += v * x0[j]
		}
		rows[i] = append(append([]float64(nil), row...), rhs)
	}

	return rows, x0
}
