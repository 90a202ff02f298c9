// SPDX-License-Identifier: MIT

// Package quadratic implements the quadratic integer rings Z[√α] and the
// element search used to study factorization in them.
//
// Elements a + b√α are stored as float64 pairs so that quotients in the
// quadratic field Q(√α) can be formed and then tested with IsIntegral; ring
// arithmetic on integral inputs stays exact well beyond the sizes the
// factorization helpers explore.
//
// Ring satisfies ring.Ring[Element] for the integral ring Z[√α]: Inverse only
// succeeds for units (norm ±1). Divide is the field quotient and may leave
// Z[√α].
package quadratic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/algebra/ring"
)

// Element is a + b√α. The ring it belongs to is implied by context.
type Element struct {
	A, B float64
}

// Ring is Z[√α].
type Ring struct {
	Alpha int
}

var _ ring.Ring[Element] = Ring{}

// New returns Z[√alpha].
func New(alpha int) Ring { return Ring{Alpha: alpha} }

// Element builds a + b√α.
func (r Ring) Element(a, b float64) Element { return Element{A: a, B: b} }

func (r Ring) Add(x, y Element) Element      { return Element{x.A + y.A, x.B + y.B} }
func (r Ring) Subtract(x, y Element) Element { return Element{x.A - y.A, x.B - y.B} }
func (r Ring) Negative(x Element) Element    { return Element{-x.A, -x.B} }
func (r Ring) Zero() Element                 { return Element{} }
func (r Ring) One() Element                  { return Element{A: 1} }

// Multiply returns (a + b√α)(c + d√α) = (ac + αbd) + (ad + bc)√α.
func (r Ring) Multiply(x, y Element) Element {
	alpha := float64(r.Alpha)

	return Element{
		A: x.A*y.A + alpha*x.B*y.B,
		B: x.A*y.B + x.B*y.A,
	}
}

// Norm returns a² − αb², the product of z and its conjugate.
func (r Ring) Norm(z Element) float64 {
	return z.A*z.A - float64(r.Alpha)*z.B*z.B
}

// Conjugate returns a − b√α.
func (r Ring) Conjugate(z Element) Element { return Element{z.A, -z.B} }

// IsIntegral reports whether both coordinates are whole numbers, i.e. z lies
// in Z[√α] rather than only in Q(√α).
func (r Ring) IsIntegral(z Element) bool {
	return z.A == math.Trunc(z.A) && z.B == math.Trunc(z.B)
}

// Divide returns x / y = x·conj(y) / N(y) in Q(√α).
// Errors: ring.ErrDivisionByZero when N(y) = 0.
func (r Ring) Divide(x, y Element) (Element, error) {
	n := r.Norm(y)
	if n == 0 {
		return Element{}, fmt.Errorf("quadratic: divide by %s: %w", r.Format(y), ring.ErrDivisionByZero)
	}
	p := r.Multiply(x, r.Conjugate(y))

	return Element{p.A / n, p.B / n}, nil
}

// Inverse returns z⁻¹ when z is a unit of Z[√α].
// Errors: ring.ErrDivisionByZero for norm 0, ring.ErrNotInvertible when the
// inverse leaves Z[√α].
func (r Ring) Inverse(z Element) (Element, error) {
	inv, err := r.Divide(r.One(), z)
	if err != nil {
		return Element{}, err
	}
	if !r.IsIntegral(inv) {
		return Element{}, fmt.Errorf("quadratic: %s has norm %g: %w", r.Format(z), r.Norm(z), ring.ErrNotInvertible)
	}

	return inv, nil
}

// Format renders z as "a+b\sqrt{α}", dropping zero parts and a unit
// coefficient on the root: 1+\sqrt{-5}, -2\sqrt{3}, 7. Zero renders as "0".
func (r Ring) Format(z Element) string {
	if z.A == 0 && z.B == 0 {
		return "0"
	}
	var b strings.Builder
	if z.A != 0 {
		b.WriteString(formatFloat(z.A))
		if z.B > 0 {
			b.WriteByte('+')
		}
	}
	if z.B != 0 {
		switch z.B {
		case 1:
		case -1:
			b.WriteByte('-')
		default:
			b.WriteString(formatFloat(z.B))
		}
		fmt.Fprintf(&b, `\sqrt{%d}`, r.Alpha)
	}

	return b.String()
}

// String returns "Z[\sqrt{α}]".
func (r Ring) String() string { return fmt.Sprintf(`Z[\sqrt{%d}]`, r.Alpha) }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
