// SPDX-License-Identifier: MIT
// Package mtxio_test contains unit tests for matrix text input.
package mtxio_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/matrix"
	"github.com/katalvlaran/lineq/mtxio"
)

// TestRead covers accepted layouts and rejected inputs.
func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    [][]float64
		wantErr error
	}{
		{"spaces and tabs", "1 1\t3\n1 -1 1\n", [][]float64{{1, 1, 3}, {1, -1, 1}}, nil},
		{"blank lines skipped", "\n1 2\n   \n3 4", [][]float64{{1, 2}, {3, 4}}, nil},
		{"scientific notation", "1e2 -2.5E-1\n", [][]float64{{100, -0.25}}, nil},
		{"empty input", "", nil, nil},
		{"ragged", "1 2 3\n4 5\n", nil, matrix.ErrDimensionMismatch},
		{"bad token", "1 2\n3 x\n", nil, mtxio.ErrParse},
		{"nan rejected", "1 NaN\n", nil, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := mtxio.Read(strings.NewReader(tc.in))
			if tc.wantErr != nil {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.want == nil {
				assert.Equal(t, 0, m.Rows())
				return
			}
			assert.Equal(t, tc.want, m.ToRows())
		})
	}
}

// TestRead_LineNumbers reports the offending line.
func TestRead_LineNumbers(t *testing.T) {
	_, err := mtxio.Read(strings.NewReader("1 2\n\n3 4 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	_, err = mtxio.Read(strings.NewReader("1 oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), `"oops"`)
}

// TestRead_MatrixOptions forwards the NaN/Inf policy.
func TestRead_MatrixOptions(t *testing.T) {
	m, err := mtxio.Read(strings.NewReader("1 Inf\n"),
		mtxio.WithMatrixOptions(matrix.WithValidateNaNInf(false)))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
}

// TestReadFile reads from disk and wraps open failures.
func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "system.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 1 3\n1 -1 1\n"), 0o600))

	m, err := mtxio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 3}, {1, -1, 1}}, m.ToRows())

	_, err = mtxio.ReadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// TestParseRow returns nil for blank lines.
func TestParseRow(t *testing.T) {
	row, err := mtxio.ParseRow("  \t ")
	require.NoError(t, err)
	assert.Nil(t, row)

	row, err = mtxio.ParseRow("0 -0.5 7")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -0.5, 7}, row)
}
