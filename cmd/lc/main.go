// SPDX-License-Identifier: MIT

// Command lc reads the matrix of a linear code, as a generator matrix (the
// default, -g) or as a control matrix (-c), and reduces it by fraction-free
// Gaussian elimination. With -v it prints the matrix before and after.
//
// Usage:
//
//	lc [-c] [-g] [-v] code
package main

import (
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/internal/cli"
	"github.com/katalvlaran/lineq/lincode"
	"github.com/katalvlaran/lineq/mtxio"
)

var log = logging.Logger("lc")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		common    cli.Common
		control   bool
		generator bool
	)
	cmd := &cobra.Command{
		Use:           "lc [-c] [-g] [-v] code",
		Short:         "Reduce the matrix of a linear code",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := common.Resolve(cmd)
			if err != nil {
				return err
			}
			kind := lincode.Generator
			if control {
				kind = lincode.Control
			}

			return run(cmd.OutOrStdout(), args[0], kind, cfg.Verbose)
		},
	}
	common.VerboseUsage = "print the matrix before and after reduction"
	common.Register(cmd)
	fs := cmd.Flags()
	fs.BoolVarP(&control, "control", "c", false, "the matrix is a control (parity-check) matrix")
	fs.BoolVarP(&generator, "generator", "g", false, "the matrix is a generator matrix (default)")
	cmd.MarkFlagsMutuallyExclusive("control", "generator")

	return cmd
}

func run(out io.Writer, path string, kind lincode.Kind, verbose bool) error {
	m, err := mtxio.ReadFile(path)
	if err != nil {
		return err
	}
	if err := cli.DumpMatrix(out, m, verbose); err != nil {
		return err
	}

	code, err := lincode.New(m, kind)
	if err != nil {
		return err
	}
	if err := code.Reduce(); err != nil {
		return errors.Wrap(err, "cannot reduce the matrix")
	}

	if verbose {
		fmt.Fprintln(out)
		if err := mtxio.WriteMatrix(out, code.Matrix()); err != nil {
			return err
		}
	}
	k, err := code.Dimension()
	if err != nil {
		return err
	}
	log.Infof("%s matrix: length %d, dimension %d", kind, code.Length(), k)

	return nil
}
