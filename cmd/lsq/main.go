// SPDX-License-Identifier: MIT

// Command lsq fits a least-squares polynomial to the "x y" points of a data
// file and evaluates it at every number read from standard input, printing
// "x p(x)" lines.
//
// Usage:
//
//	lsq [-D degree] [-d] [-n] [-v] [-w] [--check] data
//
// With -w every evaluation point gets its own polynomial, fitted with samples
// weighted by their distance to the point. -v prints the fit at every sample,
// -d adds the sample value and the difference (implies -v), -n skips reading
// standard input (implies -v).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/internal/cli"
	"github.com/katalvlaran/lineq/internal/config"
	"github.com/katalvlaran/lineq/lsq"
	"github.com/katalvlaran/lineq/matrix"
)

var log = logging.Logger("lsq-cmd")

// checkTol bounds the coefficient distance reported as agreement by --check.
const checkTol = 1e-6

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// flags mirrors the command line; config values fill what is not set.
type flags struct {
	common   cli.Common
	degree   int
	diff     bool
	noStdin  bool
	weighted bool
	check    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "lsq [-D degree] [-d] [-n] [-v] [-w] data",
		Short:         "Least-squares polynomial fitting",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			return run(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], cfg)
		},
	}
	f.common.VerboseUsage = "print the fitted value at every sample point"
	f.common.Register(cmd)
	fs := cmd.Flags()
	fs.IntVarP(&f.degree, "degree", "D", config.DefaultDegree, "polynomial degree (>= 1)")
	fs.BoolVarP(&f.diff, "diff", "d", false, "print sample values and differences (implies -v)")
	fs.BoolVarP(&f.noStdin, "no-stdin", "n", false, "do not evaluate points from standard input (implies -v)")
	fs.BoolVarP(&f.weighted, "weighted", "w", false, "weighted local fit at every evaluation point")
	fs.BoolVar(&f.check, "check", false, "cross-check the simple fit against a QR solution")

	return cmd
}

// resolve merges config and explicitly set flags.
func (f *flags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := f.common.Resolve(cmd)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed("degree") {
		cfg.LSQ.Degree = f.degree
	}
	if fs.Changed("diff") {
		cfg.LSQ.Diff = f.diff
	}
	if fs.Changed("no-stdin") {
		cfg.LSQ.NoStdin = f.noStdin
	}
	if fs.Changed("weighted") {
		cfg.LSQ.Weighted = f.weighted
	}
	if fs.Changed("check") {
		cfg.LSQ.Check = f.check
	}
	if cfg.LSQ.Diff || cfg.LSQ.NoStdin {
		cfg.Verbose = true
	}
	if cfg.LSQ.Degree < 1 {
		return cfg, errors.Wrapf(lsq.ErrBadDegree, "degree %d", cfg.LSQ.Degree)
	}

	return cfg, nil
}

func run(in io.Reader, out io.Writer, path string, cfg config.Config) error {
	data, err := lsq.ReadDataFile(path)
	if err != nil {
		return err
	}
	degree := cfg.LSQ.Degree
	if data.Underdetermined(degree) {
		log.Warnf("%d points for degree %d", len(data), degree)
	}

	if cfg.LSQ.Weighted {
		if cfg.Verbose {
			if err := lsq.WeightedApprox(out, data, degree, lsq.Exponential, cfg.LSQ.Diff); err != nil {
				return err
			}
		}
		if cfg.LSQ.NoStdin {
			return nil
		}

		return evalStdin(in, out, func(x float64) ([]float64, error) {
			return lsq.FitAt(data, degree, lsq.Exponential, x)
		})
	}

	coef, err := lsq.Fit(data, degree)
	if err != nil {
		return err
	}
	if cfg.LSQ.Check {
		crossCheck(data, degree, coef)
	}
	if cfg.Verbose {
		if err := lsq.Approx(out, data, coef, cfg.LSQ.Diff); err != nil {
			return err
		}
	}
	if cfg.LSQ.NoStdin {
		return nil
	}

	return evalStdin(in, out, func(float64) ([]float64, error) { return coef, nil })
}

// evalStdin reads numbers from in and prints "x p(x)" for each, with the
// polynomial returned by fit. A point whose fit fails is skipped with a warning.
func evalStdin(in io.Reader, out io.Writer, fit func(x float64) ([]float64, error)) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	bw := bufio.NewWriter(out)
	defer bw.Flush()

	for sc.Scan() {
		x, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return errors.Wrapf(err, "cannot read evaluation point %q", sc.Text())
		}
		coef, err := fit(x)
		if err != nil {
			log.Warnf("cannot solve equations for %e: %s", x, err)
			continue
		}
		fmt.Fprintf(bw, "% e % e\n", x, lsq.Eval(coef, x))
	}

	return errors.Wrap(sc.Err(), "read evaluation points")
}

// crossCheck logs how far the elimination fit is from gonum's QR fit.
func crossCheck(data lsq.Data, degree int, coef []float64) {
	ref, err := lsq.FitQR(data, degree)
	if err != nil {
		log.Warnf("cannot cross-check fit: %s", err)
		return
	}
	ok, err := matrix.AllClose(coef, ref, checkTol, checkTol)
	if err != nil {
		log.Warnf("cannot cross-check fit: %s", err)
		return
	}
	if !ok {
		log.Warnf("fit differs from QR solution: %v vs %v", coef, ref)
		return
	}
	log.Infof("fit agrees with QR solution within %g", checkTol)
}
