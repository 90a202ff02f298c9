// SPDX-License-Identifier: MIT

package ring

// Compile-time conformance.
var (
	_ Ring[int]     = Integers{}
	_ Ring[float64] = Reals{}
)

// Integers is the ring Z over machine ints. Overflow wraps silently; callers
// needing exact big-number arithmetic are out of scope for this package.
// The only units are 1 and −1.
type Integers struct{}

func (Integers) Add(x, y int) int      { return x + y }
func (Integers) Subtract(x, y int) int { return x - y }
func (Integers) Negative(x int) int    { return -x }
func (Integers) Multiply(x, y int) int { return x * y }
func (Integers) Zero() int             { return 0 }
func (Integers) One() int              { return 1 }

// Inverse returns x for x ∈ {1, −1}; 0 yields ErrDivisionByZero and every
// other integer ErrNotInvertible.
func (Integers) Inverse(x int) (int, error) {
	switch x {
	case 1, -1:
		return x, nil
	case 0:
		return 0, ErrDivisionByZero
	default:
		return 0, ErrNotInvertible
	}
}

// Reals is the field of float64 values under IEEE-754 arithmetic.
// Equality is exact; tolerance-based comparison is the caller's concern.
type Reals struct{}

func (Reals) Add(x, y float64) float64      { return x + y }
func (Reals) Subtract(x, y float64) float64 { return x - y }
func (Reals) Negative(x float64) float64    { return -x }
func (Reals) Multiply(x, y float64) float64 { return x * y }
func (Reals) Zero() float64                 { return 0 }
func (Reals) One() float64                  { return 1 }

// Inverse returns 1/x, or ErrDivisionByZero when x == 0.
func (Reals) Inverse(x float64) (float64, error) {
	if x == 0 {
		return 0, ErrDivisionByZero
	}

	return 1 / x, nil
}
