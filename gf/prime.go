// SPDX-License-Identifier: MIT

package gf

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"

	"github.com/katalvlaran/algebra/ring"
)

// PrimeField is Z/pZ over int elements in [0, p).
//
// Arithmetic is plain modular arithmetic; inverses are looked up in a table
// built at construction from the discrete logarithms of the least primitive
// root. Inputs outside [0, p) are accepted by Add/Subtract/Negative/Multiply
// and normalized; use Reduce to bring arbitrary ints into range explicitly.
type PrimeField struct {
	p   int
	g   int
	inv []int // inv[x] = x⁻¹, inv[0] unused
}

var _ ring.Ring[int] = (*PrimeField)(nil)

// NewPrimeField builds Z/pZ.
// Errors: ErrNotPrime, ErrTooLarge (p >= MaxOrder).
// Complexity: O(p) time and memory.
func NewPrimeField(p int) (*PrimeField, error) {
	id := FieldID{Characteristic: p, Degree: 1}
	if err := id.Validate(); err != nil {
		return nil, fieldErrorf("NewPrimeField", err)
	}

	g := PrimitiveRoot(p)
	exp := make([]int, p-1)
	log := make([]int, p)
	x := 1
	for i := range exp {
		exp[i] = x
		log[x] = i
		x = x * g % p
	}
	inv := make([]int, p)
	for v := 1; v < p; v++ {
		inv[v] = exp[(p-1-log[v])%(p-1)]
	}
	glog.V(1).Infof("gf: built prime field %v (generator %d)", id, g)

	return &PrimeField{p: p, g: g, inv: inv}, nil
}

// ID returns the field's configuration.
func (f *PrimeField) ID() FieldID { return FieldID{Characteristic: f.p, Degree: 1} }

// Characteristic returns p.
func (f *PrimeField) Characteristic() int { return f.p }

// Generator returns the least primitive root of p.
func (f *PrimeField) Generator() int { return f.g }

// Reduce maps any int to its representative in [0, p).
func (f *PrimeField) Reduce(v int) int { return mod(v, f.p) }

func (f *PrimeField) Add(x, y int) int      { return mod(x+y, f.p) }
func (f *PrimeField) Subtract(x, y int) int { return mod(x-y, f.p) }
func (f *PrimeField) Negative(x int) int    { return mod(-x, f.p) }
func (f *PrimeField) Zero() int             { return 0 }
func (f *PrimeField) One() int              { return 1 }

// Multiply returns x·y mod p.
func (f *PrimeField) Multiply(x, y int) int {
	return mod(f.Reduce(x)*f.Reduce(y), f.p)
}

// Inverse returns x⁻¹ mod p, or ring.ErrDivisionByZero when x ≡ 0.
func (f *PrimeField) Inverse(x int) (int, error) {
	x = f.Reduce(x)
	if x == 0 {
		return 0, fmt.Errorf("%v: %w", f.ID(), ring.ErrDivisionByZero)
	}

	return f.inv[x], nil
}

// Elements lists 0..p-1.
func (f *PrimeField) Elements() []int {
	out := make([]int, f.p)
	for i := range out {
		out[i] = i
	}

	return out
}

// Format renders x as its reduced decimal value.
func (f *PrimeField) Format(x int) string { return strconv.Itoa(f.Reduce(x)) }

// String returns "GF(p)".
func (f *PrimeField) String() string { return f.ID().String() }
