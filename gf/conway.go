// SPDX-License-Identifier: MIT

package gf

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/algebra/poly"
)

// Catalog supplies defining polynomials for finite fields.
//
// Polynomial returns the coefficients of X^0..X^(n-1) of a monic polynomial of
// degree n over GF(p) (the leading 1 is implied), and false when it has no
// entry for id.
type Catalog interface {
	Polynomial(id FieldID) ([]int, bool)
}

// MapCatalog is a Catalog backed by a plain map, handy for tests and for
// fields defined by non-Conway polynomials.
type MapCatalog map[FieldID][]int

// Polynomial implements Catalog.
func (c MapCatalog) Polynomial(id FieldID) ([]int, bool) {
	coeffs, ok := c[id]
	if !ok {
		return nil, false
	}

	return append([]int(nil), coeffs...), true
}

// ConwayCatalog is the built-in Catalog of Conway polynomials. Degree 1 is
// computed as X - g with g the least primitive root of p; higher degrees come
// from a fixed table covering every p^n < MaxOrder.
type ConwayCatalog struct{}

// Polynomial implements Catalog.
func (ConwayCatalog) Polynomial(id FieldID) ([]int, bool) {
	if id.Degree == 1 {
		p := id.Characteristic
		return []int{(p - PrimitiveRoot(p)) % p}, true
	}
	coeffs, ok := conwayTable[id]
	if !ok {
		return nil, false
	}

	return append([]int(nil), coeffs...), true
}

// Conway returns the Conway polynomial for GF(p^n) as the coefficients of
// X^0..X^(n-1) (monic, leading 1 implied).
// Errors: ErrFieldConfig, ErrNotPrime, ErrTooLarge, ErrUnknownPolynomial.
func Conway(p, n int) ([]int, error) {
	id := FieldID{Characteristic: p, Degree: n}
	if err := id.Validate(); err != nil {
		return nil, fieldErrorf("Conway", err)
	}

	return lookup(ConwayCatalog{}, id)
}

// lookup fetches id from c and validates the shape of the answer.
func lookup(c Catalog, id FieldID) ([]int, error) {
	coeffs, ok := c.Polynomial(id)
	if !ok {
		return nil, fieldErrorf("Catalog", fmt.Errorf("%v: %w", id, ErrUnknownPolynomial))
	}
	if glog.V(2) {
		glog.Infof("gf: catalog %T: %v -> %v", c, id, coeffs)
	}

	return normalizePolynomial(id, coeffs)
}

// normalizePolynomial checks the length and reduces coefficients into [0, p).
func normalizePolynomial(id FieldID, coeffs []int) ([]int, error) {
	if len(coeffs) != id.Degree {
		return nil, fmt.Errorf("%v: polynomial has %d coefficients, want %d: %w",
			id, len(coeffs), id.Degree, ErrFieldConfig)
	}
	p := id.Characteristic
	out := make([]int, len(coeffs))
	for i, c := range coeffs {
		out[i] = mod(c, p)
	}

	return out, nil
}

// PrimitiveRoot returns the least generator of the multiplicative group of
// Z/pZ. p must be prime; PrimitiveRoot(2) is 1.
func PrimitiveRoot(p int) int {
	if p == 2 {
		return 1
	}
	factors := primeFactors(p - 1)
	for g := 2; g < p; g++ {
		primitive := true
		for _, q := range factors {
			if poly.PowMod(g, (p-1)/q, p) == 1 {
				primitive = false
				break
			}
		}
		if primitive {
			return g
		}
	}

	return 0 // unreachable for prime p
}

// primeFactors lists the distinct prime factors of n in ascending order.
func primeFactors(n int) []int {
	var out []int
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}

	return out
}

// mod returns the representative of a in [0, p).
func mod(a, p int) int {
	a %= p
	if a < 0 {
		a += p
	}

	return a
}
