// SPDX-License-Identifier: MIT

// Package poly reads, writes and evaluates integer polynomials in one
// variable written as text, e.g. "3x^2 - x + 5".
//
// A polynomial is a Poly: a power → coefficient map. Parsing is lenient about
// layout (whitespace, "**" for "^", braces around exponents, upper-case X, an
// optional "*" between coefficient and variable) and strict about content:
// anything that is not a sequence of signed monomials fails with ErrSyntax.
package poly

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrSyntax indicates text that is not a polynomial.
	ErrSyntax = errors.New("poly: invalid polynomial syntax")

	// ErrDegree indicates a term whose power does not fit the requested degree.
	ErrDegree = errors.New("poly: power out of range")

	// ErrModulus indicates a modulus below 1. PowMod and Evaluate panic with
	// it; Coefficients returns it.
	ErrModulus = errors.New("poly: modulus must be positive")
)

// Poly maps powers to integer coefficients. Absent powers are zero.
type Poly map[int]int

var (
	// termRE splits normalized input into signed chunks.
	termRE = regexp.MustCompile(`[+-]?[^+-]+`)
	// monomialRE recognizes one chunk: sign, coefficient, variable, exponent.
	monomialRE = regexp.MustCompile(`^([+-]?)(\d*)(?:\*?(x)(?:\^(\d+))?)?$`)
)

// Parse reads a polynomial such as "3x^2 - x + 5", "x**3 + 1" or "X^{12} + X".
// Like terms are summed.
// Errors: ErrSyntax.
func Parse(s string) (Poly, error) {
	in := normalize(s)
	if in == "" {
		return nil, fmt.Errorf("parse %q: empty input: %w", s, ErrSyntax)
	}

	chunks := termRE.FindAllString(in, -1)
	if strings.Join(chunks, "") != in {
		return nil, fmt.Errorf("parse %q: dangling sign: %w", s, ErrSyntax)
	}

	p := make(Poly, len(chunks))
	for _, chunk := range chunks {
		power, coeff, err := parseMonomial(chunk)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		p[power] += coeff
	}

	return p, nil
}

// normalize strips whitespace and braces, lower-cases X and rewrites "**".
func normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '{', '}':
			return -1
		case 'X':
			return 'x'
		}

		return r
	}, s)

	return strings.ReplaceAll(s, "**", "^")
}

func parseMonomial(chunk string) (power, coeff int, err error) {
	m := monomialRE.FindStringSubmatch(chunk)
	if m == nil {
		return 0, 0, fmt.Errorf("term %q: %w", chunk, ErrSyntax)
	}
	sign, digits, variable, exponent := m[1], m[2], m[3], m[4]
	if digits == "" && variable == "" {
		return 0, 0, fmt.Errorf("term %q: %w", chunk, ErrSyntax)
	}

	coeff = 1
	if digits != "" {
		if coeff, err = strconv.Atoi(digits); err != nil {
			return 0, 0, fmt.Errorf("term %q: %w", chunk, ErrSyntax)
		}
	}
	if sign == "-" {
		coeff = -coeff
	}

	switch {
	case variable == "":
		power = 0
	case exponent == "":
		power = 1
	default:
		if power, err = strconv.Atoi(exponent); err != nil {
			return 0, 0, fmt.Errorf("term %q: %w", chunk, ErrSyntax)
		}
	}

	return power, coeff, nil
}

// Powers returns the powers carrying a nonzero coefficient, highest first.
func (p Poly) Powers() []int {
	out := make([]int, 0, len(p))
	for power, c := range p {
		if c != 0 {
			out = append(out, power)
		}
	}
	slices.Sort(out)
	slices.Reverse(out)

	return out
}

// Degree returns the highest power with a nonzero coefficient, or -1 for the
// zero polynomial.
func (p Poly) Degree() int {
	if powers := p.Powers(); len(powers) > 0 {
		return powers[0]
	}

	return -1
}

// Coefficients returns the coefficients of x^0..x^(degree-1), reduced into
// [0, modulus). Used to turn text into a GF(p^n) element.
// Errors: ErrModulus for modulus < 1, ErrDegree when a nonzero term has a
// power outside [0, degree).
func (p Poly) Coefficients(modulus, degree int) ([]int, error) {
	if modulus <= 0 {
		return nil, fmt.Errorf("modulus %d: %w", modulus, ErrModulus)
	}
	out := make([]int, degree)
	for _, power := range p.Powers() {
		if power < 0 || power >= degree {
			return nil, fmt.Errorf("x^%d with degree %d: %w", power, degree, ErrDegree)
		}
		out[power] = mod(p[power], modulus)
	}

	return out, nil
}

// Format renders p highest power first in compact LaTeX-friendly form:
// "3 x^{2}-x+5". The zero polynomial renders as "0".
func Format(p Poly) string {
	var b strings.Builder
	for i, power := range p.Powers() {
		c := p[power]
		if c > 0 && i > 0 {
			b.WriteByte('+')
		}
		if power == 0 {
			b.WriteString(strconv.Itoa(c))
			continue
		}

		monomial := "x^{" + strconv.Itoa(power) + "}"
		if power == 1 {
			monomial = "x"
		}
		switch c {
		case 1:
			b.WriteString(monomial)
		case -1:
			b.WriteString("-" + monomial)
		default:
			b.WriteString(strconv.Itoa(c) + " " + monomial)
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

// String implements fmt.Stringer via Format.
func (p Poly) String() string { return Format(p) }
