// SPDX-License-Identifier: MIT

// Package gem reduces a matrix to echelon form by fraction-free Gaussian
// elimination.
//
// What is different from textbook elimination?
//
//	Rows are combined by cross-multiplication, row = a·row − b·pivot, so no
//	division happens during the reduction. Because entry magnitudes grow by
//	multiplication, the pivot of each column is the candidate with the
//	SMALLEST absolute value; ties go to the row with the most exact zeros,
//	which limits fill-in. Integer inputs therefore stay integral (and exact
//	in float64 while they fit in 53 bits).
//
// Result:
//
//	Eliminate works in place. Afterwards the matrix is upper triangular in
//	its first RankBoundary() columns, with nonzero diagonal pivots, and all
//	rows that became entirely zero are removed. The column loop stops at the
//	first column without a nonzero candidate; that column and all later
//	ones are treated as free.
//
// Limitations:
//
//	Nonzero rows left below the rank boundary (an inconsistent
//	overdetermined system) are kept but not reported.
//
// Complexity:
//
//	Time O(rows·cols²) in the worst case, O(cols) extra memory.
package gem
