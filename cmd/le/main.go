// SPDX-License-Identifier: MIT

// Command le solves the system of linear equations stored in a matrix file.
// The last column is the right-hand side. The output is the particular
// solution, followed by " + <...>" with a basis of the homogeneous solutions
// when the solution is not unique.
//
// Usage:
//
//	le [-v] [--check] [--config file] [--log-level level] matrix
package main

import (
	"io"
	"math"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/internal/cli"
	"github.com/katalvlaran/lineq/lineq"
	"github.com/katalvlaran/lineq/matrix"
	"github.com/katalvlaran/lineq/mtxio"
)

var log = logging.Logger("le")

// checkRTol scales the residual tolerance of --check.
const checkRTol = 1e-9

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		common cli.Common
		check  bool
	)
	cmd := &cobra.Command{
		Use:           "le [-v] matrix",
		Short:         "Solve a system of linear equations",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := common.Resolve(cmd)
			if err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), args[0], cfg.Verbose, check)
		},
	}
	common.VerboseUsage = "print the input matrix"
	common.Register(cmd)
	cmd.Flags().BoolVar(&check, "check", false, "warn when the solution does not satisfy every input equation")

	return cmd
}

func run(out io.Writer, path string, verbose, check bool) error {
	m, err := mtxio.ReadFile(path)
	if err != nil {
		return err
	}
	if err := cli.DumpMatrix(out, m, verbose); err != nil {
		return err
	}

	var orig *matrix.Matrix
	if check {
		orig = m.Clone()
	}
	sol, err := lineq.Solve(m)
	if err != nil {
		return errors.Wrap(err, "cannot solve equations")
	}
	if check {
		checkSolution(orig, sol)
	}

	return mtxio.WriteSolution(out, sol)
}

// checkSolution warns when the particular solution leaves a residual larger
// than a tolerance scaled by the magnitudes involved. Elimination itself does
// not look at equations left below the rank boundary.
func checkSolution(orig *matrix.Matrix, sol *lineq.Solution) {
	if sol.Empty() {
		log.Warnf("no solution: the right-hand side is independent of the coefficients")
		return
	}
	x := sol.Particular()
	r, err := matrix.Residual(orig, x)
	if err != nil {
		log.Warnf("cannot check solution: %s", err)
		return
	}

	var scale float64
	for i := 0; i < orig.Rows(); i++ {
		row, _ := orig.Row(i)
		scale = math.Max(scale, matrix.MaxAbs(row))
	}
	scale *= (1 + matrix.MaxAbs(x)) * float64(orig.Cols())
	tol := checkRTol * math.Max(scale, 1)
	if res := matrix.MaxAbs(r); res > tol {
		log.Warnf("solution does not satisfy all equations: max residual %e > %e", res, tol)
		return
	}
	log.Infof("solution checked: %d equations, max residual within %e", orig.Rows(), tol)
}
