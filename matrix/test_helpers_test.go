// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/matrix"
)

// MustRows builds a matrix from rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustRow returns the live row i or fails the test.
func MustRow(t *testing.T, m *matrix.Matrix, i int) []float64 {
	t.Helper()
	row, err := m.Row(i)
	require.NoError(t, err)

	return row
}
