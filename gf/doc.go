// SPDX-License-Identifier: MIT

// Package gf implements table-driven finite fields.
//
// Two field kinds are provided, both satisfying ring.Ring so that they plug
// directly into matrix.Algebra:
//
//   - PrimeField: Z/pZ with int elements in [0, p). Inverses come from a
//     table built once from discrete logarithms of the least primitive root.
//   - Field[E]: GF(p^n) built from an irreducible (Conway) polynomial. Every
//     nonzero element is a power of the generator X, so multiplication and
//     inversion reduce to index arithmetic on precomputed exp/log tables.
//
// Field[E] is generic over the element storage. Two representations ship with
// the package:
//
//   - NewPackedField: elements are ints holding the base-p digits of their
//     coefficient vector (c0 + c1·p + c2·p² + ...). In characteristic 2,
//     addition is a plain XOR.
//   - NewVectorField: elements are Element values carrying the field's FieldID
//     and a fixed coefficient array. Elements are comparable values, not
//     pointers, and know which field they belong to; mixing fields panics.
//
// Any other storage can be plugged in through NewField with a custom
// Representation.
//
// Field construction:
//
//  1. Validate p prime, n >= 1 and p^n < MaxOrder (2^16).
//  2. Fetch the defining polynomial from a Catalog (the built-in Conway
//     table unless WithCatalog or WithPolynomial say otherwise).
//  3. Starting from X (or, for n = 1, from the root of the linear polynomial),
//     repeatedly multiply by the generator with a cyclic shift reduced by the
//     polynomial, filling exp[i] = X^i and log[X^i] = i.
//  4. The walk must visit every nonzero element exactly once before returning
//     to one; otherwise the polynomial is rejected.
//
// Tables are immutable after construction, so a Field may be shared read-only
// across goroutines.
//
// Example:
//
//	f, err := gf.NewPackedField(2, 8)
//	if err != nil {
//	    return err
//	}
//	x := f.Exp(5)
//	inv, _ := f.Inverse(x)
//	fmt.Println(f.Format(x), f.Multiply(x, inv)) // X^5 1
package gf
