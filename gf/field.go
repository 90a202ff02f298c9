// SPDX-License-Identifier: MIT
// Package gf — table-based extension field GF(p^n).
//
// Purpose:
//   - One construction and one set of arithmetic kernels for every element
//     storage, parameterized by Representation[E].
//
// Implementation:
//   - Elements are read as coefficient vectors (Coefficient) and written back
//     with Compose; Index packs them into [0, p^n) to address the log table.
//   - exp[i] = X^i for i in [0, p^n − 1); log[Index(X^i)] = i; log[0] = −1.
//
// Determinism & Performance:
//   - Add/Subtract/Negative are O(n) on a stack buffer (XOR when packed, p = 2).
//   - Multiply/Inverse/Pow are O(n) for Index plus O(1) table lookups.

package gf

import (
	"fmt"
	"slices"

	"github.com/golang/glog"

	"github.com/katalvlaran/algebra/ring"
)

// Representation maps field elements of type E to and from coefficient
// vectors over GF(p). Implementations must be deterministic and Compose must
// not retain the slice it is given.
type Representation[E comparable] interface {
	// Field identifies the field the representation stores elements of.
	Field() FieldID
	// Coefficient returns the coefficient of X^i of e, in [0, p).
	Coefficient(e E, i int) int
	// Compose builds the element with the given coefficients (len == degree).
	Compose(coeffs []int) E
	// Index packs e into [0, p^n) as c0 + c1·p + ... + c(n-1)·p^(n-1).
	Index(e E) int
}

// Field is GF(p^n) over elements of type E.
// A Field is immutable after construction and safe for concurrent reads.
type Field[E comparable] struct {
	id     FieldID
	order  int
	poly   []int // X^0..X^(n-1) coefficients of the monic defining polynomial
	rep    Representation[E]
	symbol string

	zero, one E
	exp       []E   // exp[i] = X^i, len order-1
	log       []int // log[Index(e)], -1 for zero

	xor func(x, y E) E // set for packed characteristic-2 fields
}

var (
	_ ring.Ring[int]     = (*Field[int])(nil)
	_ ring.Ring[Element] = (*Field[Element])(nil)
)

// NewField builds GF(p^n) for the field rep describes.
//
// Errors:
//   - ErrFieldConfig, ErrNotPrime, ErrTooLarge from FieldID.Validate.
//   - ErrUnknownPolynomial when the catalog has no entry.
//   - ErrFieldConfig for a WithPolynomial of the wrong length.
//   - ErrReduciblePolynomial when X does not generate the multiplicative group.
//
// Complexity: O(p^n · n) time, O(p^n) memory.
func NewField[E comparable](rep Representation[E], opts ...Option) (*Field[E], error) {
	id := rep.Field()
	if err := id.Validate(); err != nil {
		return nil, fieldErrorf("NewField", err)
	}
	o := gatherOptions(opts...)
	coeffs, err := o.polynomial(id)
	if err != nil {
		return nil, fieldErrorf("NewField", err)
	}

	f := &Field[E]{
		id:     id,
		order:  id.Order(),
		poly:   coeffs,
		rep:    rep,
		symbol: o.symbol,
	}
	if err = f.buildTables(); err != nil {
		return nil, fieldErrorf("NewField", err)
	}
	glog.V(1).Infof("gf: built %v (order %d, polynomial %s)", id, f.order, f.PolynomialString())

	return f, nil
}

// buildTables walks X^1, X^2, ... through the cyclic shift and fills exp/log.
func (f *Field[E]) buildTables() error {
	cur := make([]int, f.id.Degree)

	cur[0] = 1
	f.one = f.rep.Compose(cur)
	cur[0] = 0
	f.zero = f.rep.Compose(cur)
	oneIdx := f.rep.Index(f.one)

	f.exp = make([]E, f.order-1)
	f.log = make([]int, f.order)
	for i := range f.log {
		f.log[i] = -1
	}

	// Seed: X for n > 1, the root −poly[0] of the linear polynomial for n = 1.
	// Both are one shifted once.
	cur[0] = 1
	f.shift(cur)
	for i := 1; i < f.order-1; i++ {
		e := f.rep.Compose(cur)
		idx := f.rep.Index(e)
		if idx == 0 || idx == oneIdx || f.log[idx] >= 0 {
			return fmt.Errorf("%v: X^%d repeats an earlier power: %w", f.id, i, ErrReduciblePolynomial)
		}
		f.log[idx] = i
		f.exp[i] = e
		f.shift(cur)
	}
	if f.rep.Index(f.rep.Compose(cur)) != oneIdx {
		return fmt.Errorf("%v: X^%d != 1: %w", f.id, f.order-1, ErrReduciblePolynomial)
	}
	f.exp[0] = f.one
	f.log[oneIdx] = 0

	return nil
}

// shift multiplies the coefficient vector c by X in place, reducing the
// overflowing X^n term with the defining polynomial.
func (f *Field[E]) shift(c []int) {
	n, p := len(c), f.id.Characteristic
	last := c[n-1]
	for i := n - 1; i > 0; i-- {
		c[i] = mod(c[i-1]-f.poly[i]*last, p)
	}
	c[0] = mod(-f.poly[0]*last, p)
}

// ID returns the field's configuration.
func (f *Field[E]) ID() FieldID { return f.id }

// Characteristic returns p.
func (f *Field[E]) Characteristic() int { return f.id.Characteristic }

// Degree returns n.
func (f *Field[E]) Degree() int { return f.id.Degree }

// Order returns p^n.
func (f *Field[E]) Order() int { return f.order }

// Symbol returns the variable name used by Format.
func (f *Field[E]) Symbol() string { return f.symbol }

// Polynomial returns the full monic defining polynomial, X^0..X^n.
func (f *Field[E]) Polynomial() []int {
	return append(slices.Clone(f.poly), 1)
}

// PolynomialString renders the defining polynomial, e.g. "X^3 + X + 1".
func (f *Field[E]) PolynomialString() string {
	return formatTerms(f.Polynomial(), f.symbol)
}

// Zero returns the additive identity.
func (f *Field[E]) Zero() E { return f.zero }

// One returns the multiplicative identity.
func (f *Field[E]) One() E { return f.one }

// Generator returns X (for n = 1, the primitive root the polynomial encodes).
func (f *Field[E]) Generator() E {
	if len(f.exp) > 1 {
		return f.exp[1]
	}

	return f.one
}

// Exp returns X^i; i is taken modulo p^n − 1, negative values included.
func (f *Field[E]) Exp(i int) E {
	return f.exp[mod(i, f.order-1)]
}

// Log returns the discrete logarithm of e to base X, in [0, p^n − 1).
// Errors: ErrZeroLog for the zero element.
func (f *Field[E]) Log(e E) (int, error) {
	l := f.log[f.rep.Index(e)]
	if l < 0 {
		return 0, fmt.Errorf("%v: %w", f.id, ErrZeroLog)
	}

	return l, nil
}

// Elements lists all p^n elements: zero first, then X^0, X^1, ... in exp order.
func (f *Field[E]) Elements() []E {
	out := make([]E, 0, f.order)
	out = append(out, f.zero)

	return append(out, f.exp...)
}

// Add returns x + y (coefficient-wise mod p).
func (f *Field[E]) Add(x, y E) E {
	if f.xor != nil {
		return f.xor(x, y)
	}

	return f.combine(x, y, 1)
}

// Subtract returns x − y.
func (f *Field[E]) Subtract(x, y E) E {
	if f.xor != nil {
		return f.xor(x, y)
	}

	return f.combine(x, y, -1)
}

// combine computes x + sign·y coefficient-wise.
func (f *Field[E]) combine(x, y E, sign int) E {
	var buf [MaxDegree]int
	n, p := f.id.Degree, f.id.Characteristic
	for i := 0; i < n; i++ {
		buf[i] = mod(f.rep.Coefficient(x, i)+sign*f.rep.Coefficient(y, i), p)
	}

	return f.rep.Compose(buf[:n])
}

// Negative returns −x. In characteristic 2 every element is its own negative.
func (f *Field[E]) Negative(x E) E {
	if f.id.Characteristic == 2 {
		f.rep.Index(x) // field check
		return x
	}

	return f.combine(f.zero, x, -1)
}

// Multiply returns x·y via exp[(log x + log y) mod (p^n − 1)].
// Zero has no logarithm and is handled first.
func (f *Field[E]) Multiply(x, y E) E {
	lx, ly := f.log[f.rep.Index(x)], f.log[f.rep.Index(y)]
	if lx < 0 || ly < 0 {
		return f.zero
	}

	return f.exp[(lx+ly)%(f.order-1)]
}

// Inverse returns x⁻¹ via exp[−log x mod (p^n − 1)].
// Errors: ring.ErrDivisionByZero for zero.
func (f *Field[E]) Inverse(x E) (E, error) {
	lx := f.log[f.rep.Index(x)]
	if lx < 0 {
		return f.zero, fmt.Errorf("%v: %w", f.id, ring.ErrDivisionByZero)
	}

	return f.exp[mod(-lx, f.order-1)], nil
}

// Pow returns x^k for any integer k.
// Errors: ring.ErrDivisionByZero for zero raised to a negative power.
func (f *Field[E]) Pow(x E, k int) (E, error) {
	lx := f.log[f.rep.Index(x)]
	switch {
	case k == 0:
		return f.one, nil
	case lx < 0 && k > 0:
		return f.zero, nil
	case lx < 0:
		return f.zero, fmt.Errorf("%v: Pow(0, %d): %w", f.id, k, ring.ErrDivisionByZero)
	}
	// lx·k may be large; reduce k first.
	k = mod(k, f.order-1)

	return f.exp[lx*k%(f.order-1)], nil
}

// Coefficients returns the X^0..X^(n-1) coefficients of e.
func (f *Field[E]) Coefficients(e E) []int {
	out := make([]int, f.id.Degree)
	for i := range out {
		out[i] = f.rep.Coefficient(e, i)
	}

	return out
}

// FromCoefficients builds the element with the given low→high coefficients,
// reducing each mod p. Fewer than n coefficients are zero-padded.
// Errors: ErrFieldConfig when more than n coefficients are given.
func (f *Field[E]) FromCoefficients(coeffs []int) (E, error) {
	n, p := f.id.Degree, f.id.Characteristic
	if len(coeffs) > n {
		return f.zero, fmt.Errorf("%v: %d coefficients for degree %d: %w", f.id, len(coeffs), n, ErrFieldConfig)
	}
	var buf [MaxDegree]int
	for i, c := range coeffs {
		buf[i] = mod(c, p)
	}

	return f.rep.Compose(buf[:n]), nil
}

// Format renders e as a polynomial in the field's symbol, highest power
// first: "X^2 + 2X + 1". Zero renders as "0".
func (f *Field[E]) Format(e E) string {
	return formatTerms(f.Coefficients(e), f.symbol)
}

// Equal reports whether f and g describe the same field: same configuration
// and defining polynomial. The display symbol is ignored.
func (f *Field[E]) Equal(g *Field[E]) bool {
	if f == nil || g == nil {
		return f == g
	}

	return f.id == g.id && slices.Equal(f.poly, g.poly)
}

// String returns "GF(p^n)".
func (f *Field[E]) String() string { return f.id.String() }
