// SPDX-License-Identifier: MIT

package gf

import (
	"errors"
	"fmt"
)

// Every configuration failure matches ErrFieldConfig via errors.Is, so callers
// that only care about "bad (p, n)" can test a single sentinel.
var (
	// ErrFieldConfig is the umbrella for invalid field parameters.
	ErrFieldConfig = errors.New("gf: invalid field configuration")

	// ErrNotPrime indicates a characteristic that is not a prime number.
	ErrNotPrime = fmt.Errorf("gf: characteristic is not prime: %w", ErrFieldConfig)

	// ErrTooLarge indicates p^n >= MaxOrder; the tables would not fit the bound.
	ErrTooLarge = fmt.Errorf("gf: field order exceeds table bound: %w", ErrFieldConfig)

	// ErrUnknownPolynomial indicates that the catalog has no polynomial for (p, n).
	ErrUnknownPolynomial = fmt.Errorf("gf: no irreducible polynomial known: %w", ErrFieldConfig)

	// ErrReduciblePolynomial indicates a defining polynomial whose powers of X
	// do not run through every nonzero element (reducible or not primitive).
	ErrReduciblePolynomial = fmt.Errorf("gf: polynomial is not primitive: %w", ErrFieldConfig)

	// ErrZeroLog is returned by Log for the additive identity.
	ErrZeroLog = errors.New("gf: zero has no discrete logarithm")

	// ErrFieldMismatch is the panic value (wrapped) raised when an Element of
	// one field is passed to another field's arithmetic.
	ErrFieldMismatch = errors.New("gf: element belongs to a different field")
)

// fieldErrorf wraps err with an operation tag, preserving it via %w.
func fieldErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
