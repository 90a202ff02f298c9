// SPDX-License-Identifier: MIT

package gf

import "fmt"

// packed stores an element as the int c0 + c1·p + ... + c(n-1)·p^(n-1).
type packed struct {
	id    FieldID
	pow   [MaxDegree]int // pow[i] = p^i
	order int
}

func newPacked(id FieldID) packed {
	r := packed{id: id, order: id.Order()}
	q := 1
	for i := 0; i < id.Degree && i < MaxDegree; i++ {
		r.pow[i] = q
		q *= id.Characteristic
	}

	return r
}

func (r packed) Field() FieldID { return r.id }

func (r packed) Coefficient(e, i int) int {
	return e / r.pow[i] % r.id.Characteristic
}

func (r packed) Compose(coeffs []int) int {
	e := 0
	for i, c := range coeffs {
		e += c * r.pow[i]
	}

	return e
}

// Index is the identity after a range check; an int outside [0, p^n) cannot
// be an element of this field.
func (r packed) Index(e int) int {
	if e < 0 || e >= r.order {
		panic(fmt.Errorf("%v: element %d outside [0, %d): %w", r.id, e, r.order, ErrFieldMismatch))
	}

	return e
}

// NewPackedField builds GF(p^n) over packed int elements in [0, p^n).
// For p = 2, Add and Subtract are XOR.
// Errors: as NewField.
func NewPackedField(p, n int, opts ...Option) (*Field[int], error) {
	id := FieldID{Characteristic: p, Degree: n}
	if err := id.Validate(); err != nil {
		return nil, fieldErrorf("NewPackedField", err)
	}
	f, err := NewField[int](newPacked(id), opts...)
	if err != nil {
		return nil, err
	}
	if p == 2 {
		f.xor = func(x, y int) int { return f.rep.Index(x) ^ f.rep.Index(y) }
	}

	return f, nil
}
