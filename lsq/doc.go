// SPDX-License-Identifier: MIT

// Package lsq fits polynomials to sample points by least squares, solving the
// normal equations with the fraction-free solver of package lineq.
//
// ⚙️ Modes:
//
//   - simple: one polynomial for all points, Fit(data, degree).
//   - weighted (local): a polynomial per evaluation point x, where every
//     sample is weighted by w(|x − xᵢ|), FitAt(data, degree, w, x).
//
// The normal-equation matrix is (degree+1)×(degree+2):
//
//	m[r][c]    = Σᵢ xᵢ^(r+c) · w(|x − xᵢ|)     c ≤ degree
//	m[r][last] = Σᵢ xᵢ^r · yᵢ · w(|x − xᵢ|)
//
// Coefficients are returned lowest power first: c[0] + c[1]x + c[2]x² + …
//
// FitQR solves the same unweighted problem with gonum's QR factorization on
// the Vandermonde matrix; it exists to cross-check Fit.
package lsq
