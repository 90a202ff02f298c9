// SPDX-License-Identifier: MIT

package ring

import "fmt"

// Ring is the minimal set of operations the matrix engine and the finite
// fields need from an element type E.
//
// Contract:
//   - Add and Multiply are associative and commutative.
//   - Zero() is the additive identity, One() the multiplicative identity.
//   - Inverse(x) returns y with Multiply(x, y) == One(), or an error matching
//     ErrNotInvertible when no such y exists. Inverse(Zero()) must fail.
//
// There are no default implementations; every concrete ring supplies all of
// the methods.
type Ring[E any] interface {
	// Add returns x + y.
	Add(x, y E) E
	// Subtract returns x − y.
	Subtract(x, y E) E
	// Negative returns −x.
	Negative(x E) E
	// Multiply returns x · y.
	Multiply(x, y E) E
	// Inverse returns x⁻¹ or an error matching ErrNotInvertible.
	Inverse(x E) (E, error)
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
}

// Divide returns x · y⁻¹. Errors from r.Inverse are returned unchanged.
func Divide[E any, R Ring[E]](r R, x, y E) (E, error) {
	inv, err := r.Inverse(y)
	if err != nil {
		var zero E
		return zero, err
	}

	return r.Multiply(x, inv), nil
}

// Pow returns x^n by square-and-multiply. A negative exponent inverts x first,
// so Pow(r, 0, -1) fails with the ring's inversion error.
// Complexity: O(log |n|) multiplications.
func Pow[E any, R Ring[E]](r R, x E, n int) (E, error) {
	if n < 0 {
		inv, err := r.Inverse(x)
		if err != nil {
			var zero E
			return zero, fmt.Errorf("Pow(%d): %w", n, err)
		}
		x, n = inv, -n
	}

	result := r.One()
	for n > 0 {
		if n&1 == 1 {
			result = r.Multiply(result, x)
		}
		x = r.Multiply(x, x)
		n >>= 1
	}

	return result, nil
}

// Sum folds xs with Add starting from Zero(). Sum of nothing is Zero().
func Sum[E any, R Ring[E]](r R, xs ...E) E {
	acc := r.Zero()
	for _, x := range xs {
		acc = r.Add(acc, x)
	}

	return acc
}
