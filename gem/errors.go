// SPDX-License-Identifier: MIT

package gem

import (
	"errors"
	"fmt"
)

// ErrInvalidMatrix is returned for a nil matrix or one with zero rows or
// zero columns. The check runs before any mutation.
var ErrInvalidMatrix = errors.New("gem: invalid matrix")

// Operation tags for error wrapping.
const (
	opEliminate = "Eliminate"
	opRank      = "Rank"
)

// gemErrorf wraps err with an operation tag; errors.Is keeps matching both
// ErrInvalidMatrix and the underlying matrix sentinel.
func gemErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidMatrix, err)
}
