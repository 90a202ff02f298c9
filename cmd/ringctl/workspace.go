// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/algebra/internal/config"
	"github.com/katalvlaran/algebra/matrix"
	"github.com/katalvlaran/algebra/ring"
)

// operations is what the matrix subcommands need from a job, whatever its
// element type. Results come back rendered in the ring's own notation.
type operations interface {
	invert(name string, check bool) (*matrix.Dense[string], error)
	multiply(names []string) (*matrix.Dense[string], error)
	block() (*matrix.Dense[string], error)
}

// workspace is a job bound to one concrete ring.
type workspace[E comparable, R ring.Ring[E]] struct {
	job    *config.Job
	alg    *matrix.Algebra[E, R]
	parse  func(string) (E, error)
	format func(E) string
}

func newWorkspace[E comparable, R ring.Ring[E]](job *config.Job, r R, parse func(string) (E, error), format func(E) string) *workspace[E, R] {
	return &workspace[E, R]{job: job, alg: matrix.NewAlgebra[E](r), parse: parse, format: format}
}

// open builds the ring a job asks for and binds the job to it.
func open(job *config.Job) (operations, error) {
	switch job.Ring.Kind {
	case config.KindIntegers:
		return newWorkspace(job, ring.Integers{}, config.ParseInteger, strconv.Itoa), nil
	case config.KindReals:
		return newWorkspace(job, ring.Reals{}, config.ParseReal, formatReal), nil
	case config.KindPrime:
		f, err := job.Ring.PrimeField()
		if err != nil {
			return nil, err
		}
		return newWorkspace(job, f, config.PrimeParser(f), f.Format), nil
	case config.KindGF:
		f, err := job.Ring.Field()
		if err != nil {
			return nil, err
		}
		return newWorkspace(job, f, config.FieldParser(f), f.Format), nil
	case config.KindQuadratic:
		r, err := job.Ring.Quadratic()
		if err != nil {
			return nil, err
		}
		return newWorkspace(job, r, config.QuadraticParser(r), r.Format), nil
	}

	return nil, fmt.Errorf("ring %q: %w", job.Ring.Kind, config.ErrUnknownKind)
}

func formatReal(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (w *workspace[E, R]) load(name string) (*matrix.Dense[E], error) {
	return config.Matrix(w.job, name, w.parse)
}

func (w *workspace[E, R]) render(m *matrix.Dense[E]) (*matrix.Dense[string], error) {
	return matrix.Map[E](m, w.format)
}

// invert inverts the named matrix. With check set, the result is multiplied
// back and compared against the identity.
func (w *workspace[E, R]) invert(name string, check bool) (*matrix.Dense[string], error) {
	m, err := w.load(name)
	if err != nil {
		return nil, err
	}
	inv, err := w.alg.Inverse(m)
	if err != nil {
		return nil, fmt.Errorf("invert %q: %w", name, err)
	}
	if check {
		prod, err := w.alg.Multiply(m, inv)
		if err != nil {
			return nil, err
		}
		id, err := matrix.IdentityLike[E, R](w.alg, m)
		if err != nil {
			return nil, err
		}
		if !matrix.Equal[E](id, prod) {
			return nil, fmt.Errorf("invert %q: product with the inverse is not the identity", name)
		}
	}

	return w.render(inv)
}

// multiply returns the left-to-right product of the named matrices.
func (w *workspace[E, R]) multiply(names []string) (*matrix.Dense[string], error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("multiply: no matrices: %w", config.ErrInvalidJob)
	}
	acc, err := w.load(names[0])
	if err != nil {
		return nil, err
	}
	for _, name := range names[1:] {
		next, err := w.load(name)
		if err != nil {
			return nil, err
		}
		if acc, err = w.alg.Multiply(acc, next); err != nil {
			return nil, fmt.Errorf("multiply by %q: %w", name, err)
		}
	}

	return w.render(acc)
}

// block assembles the job's block layout.
func (w *workspace[E, R]) block() (*matrix.Dense[string], error) {
	grid, err := config.Blocks(w.job, w.parse)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Block(grid)
	if err != nil {
		return nil, err
	}

	return w.render(m)
}
