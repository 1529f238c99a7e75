// SPDX-License-Identifier: MIT

// Package mtxio reads matrices from line-oriented text and prints matrices
// and solutions in fixed-width scientific notation.
//
// Input format: one row per line, numbers separated by spaces or tabs.
// Blank lines are skipped. Every row must have the same number of columns
// as the first one.
package mtxio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lineq/matrix"
)

var log = logging.Logger("mtxio")

// ErrParse is returned when a token is not a number.
var ErrParse = errors.New("mtxio: cannot parse number")

// maxLineSize bounds a single input row.
const maxLineSize = 16 << 20

// Option configures Read.
type Option func(*options)

type options struct {
	matrixOpts []matrix.Option
}

// WithMatrixOptions passes numeric-policy options to the matrix being built.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// ParseRow splits line on blanks and parses every field as a float64.
// An empty (or all-blank) line yields a nil row.
func ParseRow(line string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrParse, "field %d %q", i+1, f)
		}
		row[i] = v
	}

	return row, nil
}

// Read parses a matrix from r.
// Errors carry the 1-based line number; ragged rows match
// matrix.ErrDimensionMismatch, bad tokens match ErrParse.
func Read(r io.Reader, opts ...Option) (*matrix.Matrix, error) {
	var o options
	for _, set := range opts {
		set(&o)
	}
	m, err := matrix.New(0, 0, o.matrixOpts...)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for line := 1; sc.Scan(); line++ {
		row, err := ParseRow(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if row == nil {
			continue
		}
		if err := m.AppendRow(row); err != nil {
			return nil, errors.Wrapf(err, "line %d: cannot add row %d", line, m.Rows()+1)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read matrix")
	}
	log.Debugf("read %dx%d matrix", m.Rows(), m.Cols())

	return m, nil
}

// ReadFile opens path and parses a matrix from it.
func ReadFile(path string, opts ...Option) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %q", path)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read matrix from %q", path)
	}

	return m, nil
}
