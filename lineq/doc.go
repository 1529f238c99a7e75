// SPDX-License-Identifier: MIT

// Package lineq solves linear systems A·x = b given as an augmented matrix
// [A | b] and returns the complete solution set.
//
// Solution set:
//
//	Solve eliminates the matrix (package gem) and back-substitutes twice:
//	once with the right-hand side to get a particular solution, and once per
//	free column with a zero right-hand side to get a basis of the
//	homogeneous solutions. Every solution is
//
//	    particular + λ₁·basis[0] + … + λ_d·basis[d-1]
//
//	Free variables are the trailing coordinates [RankBoundary, Len): they
//	are 0 in the particular solution and form standard unit vectors in the
//	basis.
//
// Limitations:
//
//	Equations left over below the rank boundary are not checked, so an
//	inconsistent overdetermined system still yields a "solution". Use
//	matrix.Residual on a copy of the original matrix when it matters.
package lineq
