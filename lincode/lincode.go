// SPDX-License-Identifier: MIT

// Package lincode keeps the matrix of a linear code, either its generator
// matrix or its control (parity-check) matrix, and reduces it with the
// fraction-free elimination of package gem.
//
// For a code of length n (the number of columns):
//   - a generator matrix of rank k describes a code of dimension k;
//   - a control matrix of rank r describes a code of dimension n − r.
package lincode

import (
	"errors"
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lineq/gem"
	"github.com/katalvlaran/lineq/matrix"
)

var log = logging.Logger("lincode")

var (
	// ErrUnknownKind is returned for a Kind other than Generator or Control.
	ErrUnknownKind = errors.New("lincode: unknown matrix kind")

	// ErrNotReduced is returned by Dimension and Redundancy before Reduce.
	ErrNotReduced = errors.New("lincode: matrix not reduced")
)

// Kind tells how the matrix of a Code is read.
type Kind int

const (
	// Generator: the rows span the code.
	Generator Kind = iota

	// Control: the code is the null space of the rows.
	Control
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Generator:
		return "generator"
	case Control:
		return "control"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Code is a linear code given by one matrix.
type Code struct {
	kind    Kind
	mtx     *matrix.Matrix
	reduced bool
	rank    int // set by Reduce
}

// New wraps m (not copied) as the generator or control matrix of a code.
// Errors: matrix.ErrNilMatrix, ErrUnknownKind.
func New(m *matrix.Matrix, kind Kind) (*Code, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if kind != Generator && kind != Control {
		return nil, fmt.Errorf("New: %w", ErrUnknownKind)
	}

	return &Code{kind: kind, mtx: m}, nil
}

// Kind returns how the matrix is read.
func (c *Code) Kind() Kind { return c.kind }

// Matrix returns the code's matrix (live, reduced in place by Reduce).
func (c *Code) Matrix() *matrix.Matrix { return c.mtx }

// Length returns n, the number of columns.
func (c *Code) Length() int { return c.mtx.Cols() }

// Reduce eliminates the matrix in place and records its rank.
// The rank boundary of the reduced matrix is not the rank when elimination
// stopped at a column without a pivot (for instance an all-zero first
// column), so the rank is counted separately on the reduced rows.
// Errors: gem.ErrInvalidMatrix.
func (c *Code) Reduce() error {
	if _, err := gem.Eliminate(c.mtx); err != nil {
		return fmt.Errorf("Reduce: %w", err)
	}
	c.rank = rank(c.mtx.ToRows())
	c.reduced = true
	log.Debugf("reduced %s matrix: %d rows, rank boundary %d, rank %d",
		c.kind, c.mtx.Rows(), c.mtx.RankBoundary(), c.rank)

	return nil
}

// rank counts the pivots of a row-echelon pass over a that skips columns
// without a nonzero candidate. Rows are combined fraction-free, like gem,
// so integer matrices are reduced exactly. a is modified.
func rank(a [][]float64) int {
	n := len(a)
	if n == 0 {
		return 0
	}
	cols := len(a[0])

	r := 0
	for col := 0; col < cols && r < n; col++ {
		pivot := -1
		for i := r; i < n; i++ {
			if a[i][col] != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue // no pivot in this column
		}
		a[r], a[pivot] = a[pivot], a[r]

		p := a[r]
		for i := r + 1; i < n; i++ {
			b := a[i][col]
			if b == 0 {
				continue
			}
			a[i][col] = 0
			for j := col + 1; j < cols; j++ {
				a[i][j] = p[col]*a[i][j] - b*p[j]
			}
		}
		r++
	}

	return r
}

// Dimension returns k, the dimension of the code: the rank of a generator
// matrix, or Length() minus the rank of a control matrix.
func (c *Code) Dimension() (int, error) {
	if !c.reduced {
		return 0, fmt.Errorf("Dimension: %w", ErrNotReduced)
	}
	if c.kind == Control {
		return c.Length() - c.rank, nil
	}

	return c.rank, nil
}

// Redundancy returns n − k.
func (c *Code) Redundancy() (int, error) {
	k, err := c.Dimension()
	if err != nil {
		return 0, fmt.Errorf("Redundancy: %w", err)
	}

	return c.Length() - k, nil
}
