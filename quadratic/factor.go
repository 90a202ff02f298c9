// SPDX-License-Identifier: MIT

package quadratic

import (
	"cmp"
	"math"
	"slices"
)

// IsPrime reports whether n is a rational prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// IsDivisible reports whether y divides x in Z[√α]: N(y) must divide N(x)
// and the quotient must be integral.
func (r Ring) IsDivisible(x, y Element) bool {
	ny := r.Norm(y)
	if ny == 0 || math.Mod(r.Norm(x), ny) != 0 {
		return false
	}
	q, err := r.Divide(x, y)

	return err == nil && r.IsIntegral(q)
}

// FindFactors looks for a non-trivial split p = z·w of the rational integer p
// with z = a + b√α, a, b >= 1 and a² <= p. It returns [z, w] for the first
// split found, or [p] when none exists in that search window.
func FindFactors(r Ring, p int) []Element {
	pe := r.Element(float64(p), 0)
	for a := 1; a*a <= p; a++ {
		for b := 1; b <= p; b++ {
			z := r.Element(float64(a), float64(b))
			n := math.Abs(r.Norm(z))
			if n > float64(p) {
				break
			}
			if n <= 1 {
				continue // units divide everything
			}
			if w, err := r.Divide(pe, z); err == nil && r.IsIntegral(w) {
				return []Element{z, w}
			}
		}
	}

	return []Element{pe}
}

// IrreducibleElements returns candidate irreducible elements a + b√α with
// 0 <= a, b <= n, ordered by |norm| and then by max(a, b).
//
// Candidates are non-units with coprime coordinates (or a zero coordinate).
// When √α itself is a unit (α = −1) the rational integers are dropped. A
// sieve then removes every candidate divisible by an earlier one or by its
// conjugate.
func IrreducibleElements(r Ring, n int) []Element {
	var cands []Element
	for a := 0; a <= n; a++ {
		for b := 0; b <= n; b++ {
			z := r.Element(float64(a), float64(b))
			if math.Abs(r.Norm(z)) <= 1 {
				continue
			}
			if a != 0 && b != 0 && GCD(a, b) != 1 {
				continue
			}
			cands = append(cands, z)
		}
	}
	slices.SortStableFunc(cands, func(x, y Element) int {
		if c := cmp.Compare(math.Abs(r.Norm(x)), math.Abs(r.Norm(y))); c != 0 {
			return c
		}

		return cmp.Compare(max(x.A, x.B), max(y.A, y.B))
	})
	if r.Norm(r.Element(0, 1)) == 1 {
		cands = slices.DeleteFunc(cands, func(z Element) bool { return z.B == 0 })
	}

	for i := 0; i < len(cands); i++ {
		pivot, conj := cands[i], r.Conjugate(cands[i])
		kept := cands[:i+1]
		for _, z := range cands[i+1:] {
			if !r.IsDivisible(z, pivot) && !r.IsDivisible(z, conj) {
				kept = append(kept, z)
			}
		}
		cands = kept
	}

	return cands
}

// Factors returns the elements of irreducibles (sorted as IrreducibleElements
// returns them) that divide the rational integer number.
func Factors(r Ring, number int, irreducibles []Element) []Element {
	limit := float64(number) * float64(number)
	ne := r.Element(float64(number), 0)

	var out []Element
	for _, z := range irreducibles {
		if math.Abs(r.Norm(z)) > limit {
			break
		}
		if r.IsDivisible(ne, z) {
			out = append(out, z)
		}
	}

	return out
}

// Factorizations decomposes number once per starting factor.
//
// For each factor f not yet used, number is divided by f (and by conj(f) when
// possible), and the remainder is broken down greedily by the first factor or
// conjugate that divides it, until a unit is left. Each decomposition lists
// its factors followed by that unit. Factors consumed along the way are not
// used as starting points again.
//
// Entries of factors with norm 0 or ±1 are ignored: the former divide
// nothing and units never shrink the remainder. Zero has no decomposition,
// so Factorizations(r, 0, ...) is nil.
func Factorizations(r Ring, number int, factors []Element) [][]Element {
	if number == 0 {
		return nil
	}
	left := slices.DeleteFunc(slices.Clone(factors), func(z Element) bool { return !r.isProperFactor(z) })
	pool := make([]Element, 0, 2*len(left))
	pool = append(pool, left...)
	for _, f := range left {
		pool = append(pool, r.Conjugate(f))
	}

	var out [][]Element
	for len(left) > 0 {
		f := left[0]
		left = left[1:]

		cur, err := r.Divide(r.Element(float64(number), 0), f)
		if err != nil {
			continue
		}
		decomposition := []Element{f}
		if conj := r.Conjugate(f); r.IsDivisible(cur, conj) {
			if q, err := r.Divide(cur, conj); err == nil {
				cur = q
				left = remove(left, conj)
				decomposition = append(decomposition, conj)
			}
		}

		for math.Abs(r.Norm(cur)) != 1 {
			i := slices.IndexFunc(pool, func(g Element) bool { return r.IsDivisible(cur, g) })
			if i < 0 {
				break
			}
			q, err := r.Divide(cur, pool[i])
			if err != nil {
				break
			}
			decomposition = append(decomposition, pool[i])
			left = remove(left, pool[i])
			cur = q
		}
		out = append(out, append(decomposition, cur))
	}

	return out
}

// isProperFactor reports whether z is neither zero-norm nor a unit.
func (r Ring) isProperFactor(z Element) bool {
	n := math.Abs(r.Norm(z))

	return n != 0 && n != 1
}

// remove deletes the first occurrence of z from s.
func remove(s []Element, z Element) []Element {
	if i := slices.Index(s, z); i >= 0 {
		return slices.Delete(s, i, i+1)
	}

	return s
}
