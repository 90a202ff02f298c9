// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algebra/gf"
	"github.com/katalvlaran/algebra/matrix"
	"github.com/katalvlaran/algebra/poly"
	"github.com/katalvlaran/algebra/quadratic"
)

// PrimeField builds GF(p) for a KindPrime ring.
func (s RingSpec) PrimeField() (*gf.PrimeField, error) {
	if s.Kind != KindPrime {
		return nil, fmt.Errorf("ring %s is not %s: %w", s.Kind, KindPrime, ErrInvalidJob)
	}

	return gf.NewPrimeField(s.Characteristic)
}

// Field builds the packed table field GF(p^n) for a KindGF ring, applying the
// symbol and polynomial overrides.
func (s RingSpec) Field() (*gf.Field[int], error) {
	if s.Kind != KindGF {
		return nil, fmt.Errorf("ring %s is not %s: %w", s.Kind, KindGF, ErrInvalidJob)
	}
	var opts []gf.Option
	if s.Symbol != "" {
		opts = append(opts, gf.WithSymbol(s.Symbol))
	}
	if len(s.Polynomial) > 0 {
		opts = append(opts, gf.WithPolynomial(s.Polynomial))
	}

	return gf.NewPackedField(s.Characteristic, s.degree(), opts...)
}

// Quadratic builds Z[√α] for a KindQuadratic ring.
func (s RingSpec) Quadratic() (quadratic.Ring, error) {
	if s.Kind != KindQuadratic {
		return quadratic.Ring{}, fmt.Errorf("ring %s is not %s: %w", s.Kind, KindQuadratic, ErrInvalidJob)
	}

	return quadratic.New(s.Alpha), nil
}

// ParseInteger reads an integer entry.
func ParseInteger(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEntry, err)
	}

	return v, nil
}

// ParseReal reads a real entry.
func ParseReal(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEntry, err)
	}

	return v, nil
}

// PrimeParser reads integer entries and reduces them into [0, p).
func PrimeParser(f *gf.PrimeField) func(string) (int, error) {
	return func(s string) (int, error) {
		v, err := ParseInteger(s)
		if err != nil {
			return 0, err
		}

		return f.Reduce(v), nil
	}
}

// FieldParser reads entries written as polynomials in the field symbol,
// e.g. "a^2 + 2a + 1" for symbol "a". Coefficients are reduced mod p and the
// degree must stay below n.
func FieldParser(f *gf.Field[int]) func(string) (int, error) {
	return func(s string) (int, error) {
		p, err := parseIn(s, f.Symbol())
		if err != nil {
			return 0, err
		}
		coeffs, err := p.Coefficients(f.Characteristic(), f.Degree())
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrEntry, err)
		}

		return f.FromCoefficients(coeffs)
	}
}

// QuadraticParser reads entries "a + b x" where x stands for √α.
func QuadraticParser(r quadratic.Ring) func(string) (quadratic.Element, error) {
	return func(s string) (quadratic.Element, error) {
		p, err := parseIn(s, "x")
		if err != nil {
			return quadratic.Element{}, err
		}
		if p.Degree() > 1 {
			return quadratic.Element{}, fmt.Errorf("%w: %q: %w", ErrEntry, s, poly.ErrDegree)
		}

		return r.Element(float64(p[0]), float64(p[1])), nil
	}
}

// parseIn parses s as a polynomial in symbol.
func parseIn(s, symbol string) (poly.Poly, error) {
	if symbol != "x" && symbol != "X" {
		s = strings.ReplaceAll(s, symbol, "x")
	}
	p, err := poly.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntry, err)
	}

	return p, nil
}

// Matrix decodes the named matrix with parse.
// Errors: ErrUnknownMatrix, ErrEntry (wrapping the parser's error) and the
// shape errors of matrix.FromRows.
func Matrix[E any](j *Job, name string, parse func(string) (E, error)) (*matrix.Dense[E], error) {
	raw, ok := j.Matrices[name]
	if !ok {
		return nil, fmt.Errorf("matrix %q: %w", name, ErrUnknownMatrix)
	}

	rows := make([][]E, len(raw))
	for i, row := range raw {
		rows[i] = make([]E, len(row))
		for k, entry := range row {
			v, err := parse(string(entry))
			if err != nil {
				return nil, fmt.Errorf("matrix %q (%d,%d) %q: %w", name, i, k, entry, err)
			}
			rows[i][k] = v
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix %q: %w", name, err)
	}

	return m, nil
}

// Blocks decodes the job's block layout into a grid ready for matrix.Block.
// Each referenced matrix is decoded once and shared between its cells.
func Blocks[E any](j *Job, parse func(string) (E, error)) ([][]matrix.Matrix[E], error) {
	if len(j.Blocks) == 0 {
		return nil, fmt.Errorf("blocks: no layout: %w", ErrInvalidJob)
	}

	seen := make(map[string]*matrix.Dense[E])
	grid := make([][]matrix.Matrix[E], len(j.Blocks))
	for i, row := range j.Blocks {
		grid[i] = make([]matrix.Matrix[E], len(row))
		for k, name := range row {
			m, ok := seen[name]
			if !ok {
				var err error
				if m, err = Matrix(j, name, parse); err != nil {
					return nil, err
				}
				seen[name] = m
			}
			grid[i][k] = m
		}
	}

	return grid, nil
}
