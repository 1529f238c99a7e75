// SPDX-License-Identifier: MIT

package lineq

import (
	"github.com/katalvlaran/lineq/gem"
	"github.com/katalvlaran/lineq/matrix"
)

// Solve eliminates m in place and builds the solution set of m = [A | b].
// Implementation:
//   - Stage 1: reject nil and Cols() < 2 (ErrInvalidSystem).
//   - Stage 2: gem.Eliminate (ErrInvalidMatrix is propagated).
//   - Stage 3: particular solution by back substitution; free tail = 0.
//   - Stage 4: one generator per free column, same substitution with a
//     zero right-hand side.
//
// Behavior highlights:
//   - RankBoundary() >= Cols() (the right-hand column got a pivot) yields an
//     empty Solution: Len() is set, Particular() is nil, Dim() is 0.
//   - Pivot row r sits on column r after elimination, so row and column
//     indices coincide during substitution.
//
// Errors:
//   - ErrInvalidSystem, gem.ErrInvalidMatrix (zero rows).
//
// Complexity:
//   - Elimination O(rows·cols²); substitution O(rb·len·(dim+1)).
func Solve(m *matrix.Matrix) (*Solution, error) {
	if m == nil {
		return nil, lineqErrorf(opSolve, ErrInvalidSystem)
	}
	if m.Cols() < 2 {
		return nil, lineqErrorf(opSolve, ErrInvalidSystem)
	}
	if _, err := gem.Eliminate(m); err != nil {
		return nil, lineqErrorf(opSolve, err)
	}

	cols := m.Cols()
	rb := m.RankBoundary()
	sol := &Solution{n: cols - 1}
	if rb >= cols {
		return sol, nil
	}

	sol.particular = make([]float64, sol.n) // free tail stays 0
	substitute(m, sol.particular, true)

	if cols-rb <= 1 {
		return sol, nil
	}
	dim := cols - rb - 1
	sol.basis = make([][]float64, dim)
	for g := 0; g < dim; g++ {
		gen := make([]float64, sol.n)
		for c := 0; c < dim; c++ { // (…, 0, 1, 0, …, 0) over the free tail
			if c == g {
				gen[sol.n-1-c] = 1
			}
		}
		substitute(m, gen, false)
		sol.basis[g] = gen
	}

	return sol, nil
}

// substitute fills x[0:rb) from the pivot rows, bottom-up:
//
//	x[r] = (rhs_r − Σ_{c=r+1}^{len-1} m[r][c]·x[c]) / m[r][r]
//
// with rhs_r the last column when withRHS, else 0. Entries x[rb:] are inputs.
func substitute(m *matrix.Matrix, x []float64, withRHS bool) {
	last := m.Cols() - 1
	for r := m.RankBoundary() - 1; r >= 0; r-- {
		row, _ := m.Row(r)
		var R float64
		if withRHS {
			R = row[last]
		}
		for c := r + 1; c < last; c++ {
			R -= row[c] * x[c]
		}
		x[r] = R / row[r]
	}
}
