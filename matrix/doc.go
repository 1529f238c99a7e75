// SPDX-License-Identifier: MIT

// Package matrix holds the dense matrix entity shared by the elimination
// engine, the solver and the command-line tools.
//
// What & Why:
//
//	A Matrix is a rectangular grid of float64 stored as independently owned
//	rows. Pivoting swaps row references (SwapRows) instead of copying
//	elements, and elimination drops redundant rows (DeleteRow) one by one.
//	The rank boundary written by elimination (RankBoundary) separates the
//	pivot rows from the free columns.
//
// Augmented systems:
//
//	Linear systems A·x = b are stored as [A | b]: the last column is the
//	right-hand side. Residual and MulVec evaluate candidate solutions
//	against the original entries.
//
// Numeric policy:
//
//	By default NaN and ±Inf are rejected on ingestion and Set
//	(WithValidateNaNInf(false) relaxes it).
//
// Complexity:
//
//	At/Set/SwapRows run in O(1); DeleteRow in O(rows); Clone in O(rows*cols).
package matrix
