// SPDX-License-Identifier: MIT

package lineq

import "github.com/katalvlaran/lineq/matrix"

// Solution is the solution set of a linear system:
//
//	{ particular + Σ λᵢ·basis[i] : λᵢ ∈ ℝ }
//
// Fields are unexported; accessors return copies, so a returned Solution
// never changes.
type Solution struct {
	n          int         // length of every vector (unknowns)
	particular []float64   // nil for an empty (degenerate) solution
	basis      [][]float64 // generators of the homogeneous solutions
}

// Len returns the number of unknowns (Cols()-1 of the source matrix).
func (s *Solution) Len() int { return s.n }

// Dim returns the dimension of the homogeneous solution space.
func (s *Solution) Dim() int { return len(s.basis) }

// Empty reports whether no particular solution was produced, which happens
// when the right-hand column obtained a pivot during elimination.
func (s *Solution) Empty() bool { return s.particular == nil }

// Unique reports whether the solution set is the single point Particular().
func (s *Solution) Unique() bool { return !s.Empty() && s.Dim() == 0 }

// Particular returns a copy of the particular solution (nil when Empty).
func (s *Solution) Particular() []float64 {
	if s.particular == nil {
		return nil
	}

	return append([]float64(nil), s.particular...)
}

// Basis returns a deep copy of the homogeneous basis.
func (s *Solution) Basis() [][]float64 {
	out := make([][]float64, len(s.basis))
	for i, g := range s.basis {
		out[i] = append([]float64(nil), g...)
	}

	return out
}

// Point returns particular + Σ lambda[i]·basis[i].
// Errors:
//   - ErrInvalidSystem on an empty solution.
//   - matrix.ErrDimensionMismatch when len(lambda) != Dim().
//
// Complexity: O(Dim()·Len()).
func (s *Solution) Point(lambda ...float64) ([]float64, error) {
	if s.Empty() {
		return nil, lineqErrorf(opPoint, ErrInvalidSystem)
	}
	if err := matrix.ValidateVecLen(lambda, len(s.basis)); err != nil {
		return nil, lineqErrorf(opPoint, err)
	}
	x := s.Particular()
	for i, g := range s.basis {
		for j, v := range g {
			x[j] += lambda[i] * v
		}
	}

	return x, nil
}
