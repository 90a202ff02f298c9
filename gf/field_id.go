// SPDX-License-Identifier: MIT

package gf

import "fmt"

const (
	// MaxOrder bounds p^n; exp/log tables are sized by the field order.
	MaxOrder = 1 << 16

	// MaxDegree is the largest extension degree an Element can hold.
	// p^n < MaxOrder with p >= 2 already implies n <= 15.
	MaxDegree = 16
)

// FieldID names a finite field by its configuration. Two fields with the same
// FieldID and defining polynomial are interchangeable.
type FieldID struct {
	Characteristic int
	Degree         int
}

// String renders the field as "GF(p)" or "GF(p^n)".
func (id FieldID) String() string {
	if id.Degree == 1 {
		return fmt.Sprintf("GF(%d)", id.Characteristic)
	}

	return fmt.Sprintf("GF(%d^%d)", id.Characteristic, id.Degree)
}

// Validate checks that the characteristic is prime, the degree positive and
// the order below MaxOrder.
// Errors: ErrFieldConfig, ErrNotPrime, ErrTooLarge.
func (id FieldID) Validate() error {
	if id.Degree < 1 {
		return fmt.Errorf("%v: degree %d: %w", id, id.Degree, ErrFieldConfig)
	}
	// Size first: it bounds the trial division below.
	if _, ok := order(id.Characteristic, id.Degree); !ok {
		return fmt.Errorf("%v: %w", id, ErrTooLarge)
	}
	if !isPrime(id.Characteristic) {
		return fmt.Errorf("%v: %w", id, ErrNotPrime)
	}

	return nil
}

// Order returns p^n. Only meaningful for a FieldID that passes Validate.
func (id FieldID) Order() int {
	q, _ := order(id.Characteristic, id.Degree)

	return q
}

// order computes p^n, reporting false as soon as the product reaches MaxOrder.
func order(p, n int) (int, bool) {
	q := 1
	for i := 0; i < n; i++ {
		q *= p
		if q >= MaxOrder {
			return 0, false
		}
	}

	return q, true
}

// isPrime is trial division; inputs are bounded by MaxOrder.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}
