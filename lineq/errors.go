// SPDX-License-Identifier: MIT

package lineq

import (
	"errors"
	"fmt"
)

// ErrInvalidSystem is returned when there is nothing to solve for: a nil
// matrix, or fewer than two columns (no unknown besides the right-hand side).
var ErrInvalidSystem = errors.New("lineq: invalid system")

// Operation tags for error wrapping.
const (
	opSolve = "Solve"
	opPoint = "Point"
)

// lineqErrorf wraps err with an operation tag, preserving it via %w.
func lineqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
