// SPDX-License-Identifier: MIT

package gf

import (
	"fmt"
	"slices"
)

// Element is a GF(p^n) element stored as its coefficient vector.
//
// Element is a comparable value: == compares field identity and coefficients.
// It records the FieldID and defining polynomial of the field that produced it
// instead of pointing at the field, so copies never keep tables alive.
//
// The Go zero value Element{} is the zero of every vector field and is what
// Field.Zero returns, so zero-initialized storage (matrix.NewDense) holds
// valid zeros. Nonzero elements must come from a Field (One, Exp,
// FromCoefficients, ...).
type Element struct {
	field  FieldID
	poly   uint16 // defining polynomial packed base p, see polynomialKey
	coeffs [MaxDegree]uint16
}

// Field returns the configuration of the field e belongs to. The zero
// element belongs to every field and reports FieldID{}.
func (e Element) Field() FieldID { return e.field }

// Coefficient returns the coefficient of X^i, or 0 for i outside [0, n).
func (e Element) Coefficient(i int) int {
	if i < 0 || i >= e.field.Degree || i >= MaxDegree {
		return 0
	}

	return int(e.coeffs[i])
}

// IsZero reports whether every coefficient is zero.
func (e Element) IsZero() bool {
	return e.coeffs == [MaxDegree]uint16{}
}

// String renders e with DefaultSymbol, highest power first.
func (e Element) String() string {
	n := min(e.field.Degree, MaxDegree)
	coeffs := make([]int, n)
	for i := range coeffs {
		coeffs[i] = int(e.coeffs[i])
	}

	return formatTerms(coeffs, DefaultSymbol)
}

// vector is the Representation behind NewVectorField.
type vector struct {
	id  FieldID
	p   int
	key uint16 // polynomialKey of the defining polynomial
}

func (r vector) Field() FieldID { return r.id }

// check panics when e was produced by another field. Fields with the same
// FieldID but different defining polynomials are different fields.
func (r vector) check(e Element) {
	if e == (Element{}) {
		return
	}
	if e.field != r.id {
		panic(fmt.Errorf("%v element used in %v: %w", e.field, r.id, ErrFieldMismatch))
	}
	if e.poly != r.key {
		panic(fmt.Errorf("%v element with polynomial #%d used in %v with polynomial #%d: %w",
			e.field, e.poly, r.id, r.key, ErrFieldMismatch))
	}
}

func (r vector) Coefficient(e Element, i int) int {
	r.check(e)

	return int(e.coeffs[i])
}

func (r vector) Compose(coeffs []int) Element {
	var e Element
	for i, c := range coeffs {
		e.coeffs[i] = uint16(c)
	}
	if e.IsZero() {
		return Element{}
	}
	e.field, e.poly = r.id, r.key

	return e
}

func (r vector) Index(e Element) int {
	r.check(e)
	idx := 0
	for i := r.id.Degree - 1; i >= 0; i-- {
		idx = idx*r.p + int(e.coeffs[i])
	}

	return idx
}

// NewVectorField builds GF(p^n) over Element values.
// Errors: as NewField.
func NewVectorField(p, n int, opts ...Option) (*Field[Element], error) {
	id := FieldID{Characteristic: p, Degree: n}
	if err := id.Validate(); err != nil {
		return nil, fieldErrorf("NewVectorField", err)
	}
	coeffs, err := gatherOptions(opts...).polynomial(id)
	if err != nil {
		return nil, fieldErrorf("NewVectorField", err)
	}
	rep := vector{id: id, p: p, key: polynomialKey(id, coeffs)}

	return NewField[Element](rep, append(slices.Clip(opts), WithPolynomial(coeffs))...)
}

// polynomialKey packs the X^0..X^(n-1) coefficients of a defining polynomial
// as c0 + c1·p + ... Each coefficient is below p, so the key is below
// p^n < MaxOrder and fits in 16 bits.
func polynomialKey(id FieldID, coeffs []int) uint16 {
	key := 0
	for i := len(coeffs) - 1; i >= 0; i-- {
		key = key*id.Characteristic + coeffs[i]
	}

	return uint16(key)
}
