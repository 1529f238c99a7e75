// SPDX-License-Identifier: MIT

package lsq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
)

var log = logging.Logger("lsq")

var (
	// ErrBadDegree is returned for a polynomial degree below 1.
	ErrBadDegree = errors.New("lsq: degree must be >= 1")

	// ErrNoData is returned when there are no sample points.
	ErrNoData = errors.New("lsq: no data points")

	// ErrTooFewPoints is returned by FitQR when there are fewer points than
	// coefficients.
	ErrTooFewPoints = errors.New("lsq: fewer points than coefficients")

	// ErrParse is returned for a data line that is not an "x y" pair.
	ErrParse = errors.New("lsq: cannot parse data point")

	// ErrNoSolution is returned when the normal equations have no particular
	// solution.
	ErrNoSolution = errors.New("lsq: normal equations have no solution")
)

// Point is one sample (x, y).
type Point struct {
	X, Y float64
}

// Data is a list of sample points in input order.
type Data []Point

// Underdetermined reports whether data has too few points for a unique
// polynomial of the given degree (the normal equations are singular).
func (d Data) Underdetermined(degree int) bool {
	return len(d) <= degree
}

// ReadData parses "x y" pairs, one per line; blank lines are skipped.
func ReadData(r io.Reader) (Data, error) {
	var data Data
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, errors.Wrapf(ErrParse, "line %d: want 2 fields, got %d", line, len(fields))
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			return nil, errors.Wrapf(ErrParse, "line %d: %q", line, sc.Text())
		}
		data = append(data, Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read data")
	}
	log.Debugf("read %d data points", len(data))

	return data, nil
}

// ReadDataFile opens path and parses data points from it.
func ReadDataFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %q", path)
	}
	defer f.Close()

	data, err := ReadData(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read data from %q", path)
	}

	return data, nil
}

// WriteData prints every point as "% e % e".
func WriteData(w io.Writer, data Data) error {
	bw := bufio.NewWriter(w)
	for _, p := range data {
		fmt.Fprintf(bw, "% e % e\n", p.X, p.Y)
	}

	return errors.Wrap(bw.Flush(), "write data")
}
