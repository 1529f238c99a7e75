// SPDX-License-Identifier: MIT

package lsq

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lineq/lineq"
	"github.com/katalvlaran/lineq/matrix"
)

// WeightFunc maps the distance |x − xᵢ| between the evaluation point and a
// sample to the weight of that sample.
type WeightFunc func(dist float64) float64

// Exponential is exp(−d) on [0, 1] and 0 outside, so only samples within
// distance 1 of the evaluation point contribute.
func Exponential(d float64) float64 {
	if d < 0 || d > 1 {
		return 0
	}

	return math.Exp(-d)
}

// NormalMatrix assembles the (degree+1)×(degree+2) normal equations weighted
// at x. A nil w weighs every sample by 1 (x is then irrelevant).
// Errors: ErrNoData, ErrBadDegree.
// Complexity: O(len(data)·degree²) calls to math.Pow.
func NormalMatrix(data Data, degree int, w WeightFunc, x float64) (*matrix.Matrix, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if degree < 1 {
		return nil, ErrBadDegree
	}
	rows, cols := degree+1, degree+2
	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, len(data))
	for i, p := range data {
		weights[i] = 1
		if w != nil {
			weights[i] = w(math.Abs(x - p.X))
		}
	}

	last := cols - 1
	for r := 0; r < rows; r++ {
		row, _ := m.Row(r)
		for c := 0; c < last; c++ {
			for i, p := range data {
				row[c] += math.Pow(p.X, float64(r+c)) * weights[i]
			}
		}
		for i, p := range data {
			row[last] += math.Pow(p.X, float64(r)) * p.Y * weights[i]
		}
	}

	return m, nil
}

// solveNormal solves m and returns the particular solution as coefficients.
func solveNormal(m *matrix.Matrix) ([]float64, error) {
	sol, err := lineq.Solve(m)
	if err != nil {
		return nil, err
	}
	if sol.Empty() {
		return nil, ErrNoSolution
	}
	if sol.Dim() > 0 {
		log.Debugf("normal equations are singular, %d free coefficients set to 0", sol.Dim())
	}

	return sol.Particular(), nil
}

// Fit returns the least-squares polynomial of the given degree for data.
func Fit(data Data, degree int) ([]float64, error) {
	m, err := NormalMatrix(data, degree, nil, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot figure out matrix from data")
	}
	coef, err := solveNormal(m)
	if err != nil {
		return nil, errors.Wrap(err, "cannot solve linear equations")
	}

	return coef, nil
}

// FitAt returns the polynomial that best fits data around x under weight w
// (Exponential when w is nil).
func FitAt(data Data, degree int, w WeightFunc, x float64) ([]float64, error) {
	if w == nil {
		w = Exponential
	}
	m, err := NormalMatrix(data, degree, w, x)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot figure out matrix at %e", x)
	}
	coef, err := solveNormal(m)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot solve equations for %e", x)
	}

	return coef, nil
}

// Eval evaluates the polynomial coef (lowest power first) at x by Horner's rule.
func Eval(coef []float64, x float64) float64 {
	var val float64
	for i := len(coef) - 1; i >= 0; i-- {
		val = val*x + coef[i]
	}

	return val
}

// writeApprox prints one approximation line.
func writeApprox(w io.Writer, p Point, val float64, diff bool) {
	if diff {
		fmt.Fprintf(w, "% e % e % e % e\n", p.X, val, p.Y, val-p.Y)
		return
	}
	fmt.Fprintf(w, "% e % e\n", p.X, val)
}

// Approx prints "x fit(x)" for every sample, or "x fit(x) y fit(x)-y" when diff.
func Approx(w io.Writer, data Data, coef []float64, diff bool) error {
	if len(coef) == 0 {
		return ErrNoSolution
	}
	bw := bufio.NewWriter(w)
	for _, p := range data {
		writeApprox(bw, p, Eval(coef, p.X), diff)
	}

	return errors.Wrap(bw.Flush(), "write approximation")
}

// WeightedApprox is Approx with a separate local fit at every sample.
func WeightedApprox(w io.Writer, data Data, degree int, wf WeightFunc, diff bool) error {
	bw := bufio.NewWriter(w)
	for _, p := range data {
		coef, err := FitAt(data, degree, wf, p.X)
		if err != nil {
			return errors.Wrapf(err, "cannot solve equations at %e", p.X)
		}
		writeApprox(bw, p, Eval(coef, p.X), diff)
	}

	return errors.Wrap(bw.Flush(), "write approximation")
}

// FitQR fits the same unweighted polynomial as Fit, by QR factorization of
// the Vandermonde matrix (gonum). Needs at least degree+1 points.
func FitQR(data Data, degree int) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if degree < 1 {
		return nil, ErrBadDegree
	}
	if len(data) < degree+1 {
		return nil, ErrTooFewPoints
	}

	a := vandermonde(data, degree)
	ys := make([]float64, len(data))
	for i, p := range data {
		ys[i] = p.Y
	}
	b := mat.NewDense(len(data), 1, ys)
	c := mat.NewDense(degree+1, 1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, errors.Wrap(err, "qr solve")
	}

	return mat.Col(nil, 0, c), nil
}

// vandermonde builds the len(data)×(degree+1) matrix of powers xᵢ^j.
func vandermonde(data Data, degree int) *mat.Dense {
	x := mat.NewDense(len(data), degree+1, nil)
	for i, p := range data {
		for j, pw := 0, 1.0; j <= degree; j, pw = j+1, pw*p.X {
			x.Set(i, j, pw)
		}
	}

	return x
}
