// SPDX-License-Identifier: MIT

package mtxio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lineq/lineq"
	"github.com/katalvlaran/lineq/matrix"
)

// WriteMatrix prints every entry as "% e " and ends each row with a newline.
// A nil or empty matrix prints nothing.
func WriteMatrix(w io.Writer, m *matrix.Matrix) error {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		row, _ := m.Row(i)
		for _, v := range row {
			if _, err := fmt.Fprintf(bw, "% e ", v); err != nil {
				return errors.Wrap(err, "write matrix")
			}
		}
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "write matrix")
}

// WriteVector prints v as "(e0, e1, ...)" with %e entries, no newline.
func WriteVector(w io.Writer, v []float64) error {
	if v == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	bw.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			bw.WriteString(", ")
		}
		fmt.Fprintf(bw, "%e", x)
	}
	bw.WriteByte(')')

	return errors.Wrap(bw.Flush(), "write vector")
}

// WriteSolution prints the particular solution and, when the solution set is
// not a single point, " + <g1, g2, ...>" with the basis; then a newline.
// An empty solution prints nothing.
func WriteSolution(w io.Writer, sol *lineq.Solution) error {
	if sol == nil || sol.Empty() {
		return nil
	}
	if err := WriteVector(w, sol.Particular()); err != nil {
		return err
	}
	if sol.Dim() == 0 {
		_, err := io.WriteString(w, "\n")
		return errors.Wrap(err, "write solution")
	}
	if _, err := io.WriteString(w, " + <"); err != nil {
		return errors.Wrap(err, "write solution")
	}
	for g, gen := range sol.Basis() {
		if g > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return errors.Wrap(err, "write solution")
			}
		}
		if err := WriteVector(w, gen); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">\n")

	return errors.Wrap(err, "write solution")
}
