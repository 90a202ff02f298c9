// SPDX-License-Identifier: MIT

package poly

// PowMod returns base^exp mod m in [0, m) by square-and-multiply.
// base may be negative; exp must be non-negative. It panics with ErrModulus
// when m < 1. Intermediate products are below m², so m must stay under 2^31
// on 64-bit platforms.
func PowMod(base, exp, m int) int {
	checkModulus(m)
	if exp < 0 {
		panic("poly: PowMod: negative exponent")
	}
	result := 1 % m
	base = mod(base, m)
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}

	return result
}

// Evaluate returns p(x) mod m in [0, m).
//
// Horner's scheme over the sparse terms: walking powers from the top, the
// accumulator is multiplied by x^(gap) between consecutive powers, so the
// cost is O(t log d) for t terms of degree at most d. Negative powers are
// not supported and cause a panic in PowMod. It panics with ErrModulus when
// m < 1.
func Evaluate(p Poly, x, m int) int {
	checkModulus(m)
	powers := p.Powers()
	if len(powers) == 0 {
		return 0
	}

	result := 0
	last := powers[0]
	for _, power := range powers {
		result = result * PowMod(x, last-power, m) % m
		result = mod(result+p[power], m)
		last = power
	}
	if last != 0 {
		result = result * PowMod(x, last, m) % m
	}

	return result
}

func checkModulus(m int) {
	if m <= 0 {
		panic(ErrModulus)
	}
}

// mod returns the representative of a in [0, m).
func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}

	return a
}
