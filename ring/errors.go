// SPDX-License-Identifier: MIT
// Package ring: sentinel error set.
// Rings return these sentinels (optionally wrapped with %w) and callers match
// them with errors.Is. Wrapping packages (matrix, gf) propagate them unchanged.

package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInvertible is returned by Inverse when the element has no
	// multiplicative inverse in the ring (e.g. 2 in the integers).
	ErrNotInvertible = errors.New("ring: element is not invertible")

	// ErrDivisionByZero is returned by Inverse when the element is the
	// additive identity. It also matches ErrNotInvertible via errors.Is.
	ErrDivisionByZero = fmt.Errorf("ring: division by zero: %w", ErrNotInvertible)
)
