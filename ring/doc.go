// Package ring defines the algebraic contract shared by every element type in
// this module, together with the two numeric rings used most often in tests
// and examples.
//
// The Ring[E] interface is a capability set, not a stored entity: a value of a
// type implementing Ring[E] knows how to add, subtract, negate, multiply and
// invert elements of type E, and it exposes the additive and multiplicative
// identities.
//
//   - Add/Multiply are assumed associative and commutative.
//   - Inverse is partial: it must fail (ErrNotInvertible or
//     ErrDivisionByZero) for elements without a multiplicative inverse.
//   - Division is not a primitive; use Divide(r, x, y) = x · y⁻¹.
//
// Concrete rings living elsewhere:
//
//	gf/        — prime fields Z/pZ and table-based extension fields GF(p^n)
//	quadratic/ — quadratic integer rings Z[√α]
//
// Quick example:
//
//	var r ring.Integers
//	x := r.Add(2, 3)          // 5
//	_, err := r.Inverse(2)    // errors.Is(err, ring.ErrNotInvertible)
package ring
