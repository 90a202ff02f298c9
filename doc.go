// Package algebra is a small toolkit for exact linear algebra over rings:
// dense matrices whose entries live in any ring you plug in, with finite
// fields, modular integers and quadratic integer rings ready to use.
//
// 🚀 What is in the box?
//
//	• Ring contract: one interface (Add, Subtract, Negative, Multiply,
//	  Zero, One, Inverse) that every coefficient type implements
//	• Dense matrices: row-major storage, bounds-checked At/Set, slicing,
//	  block assembly, text and LaTeX rendering
//	• Matrix algebra: sums, products, identity, Gauss–Jordan inverse over
//	  any ring, with non-invertible pivots reported rather than guessed at
//	• Finite fields: GF(p) and GF(p^n) for every p^n < 2^16, built from
//	  Conway polynomials into exp/log tables
//	• Polynomial text: parse "3x^2 - x + 5", render it back, evaluate mod m
//	• Quadratic rings: Z[√α] arithmetic and a small factorization explorer
//
// ✨ Why use it?
//
//   - Generic – one Gauss–Jordan kernel serves ints, floats, GF(2^8) and Z[√2]
//   - Exact – finite-field arithmetic is table lookups, never floating point
//   - Explicit – every failure is a sentinel error you can match with errors.Is
//
// Packages:
//
//	ring/            — the Ring contract, Integers, Reals, Pow, Sum, Divide
//	matrix/          — Matrix, Dense, Algebra, Block, Slice, validators
//	gf/              — FieldID, Conway catalog, PrimeField, Field[E]
//	poly/            — polynomial text parser, formatter, PowMod, Evaluate
//	quadratic/       — Z[√α] and its irreducible/factorization helpers
//	internal/config/ — YAML job files for the CLI
//	cmd/ringctl/     — command line front end
//
// Quick example, inverting over GF(2^8):
//
//	f, _ := gf.NewPackedField(2, 8)
//	alg := matrix.NewAlgebra[int](f)
//	inv, err := alg.Inverse(m) // matrix.ErrSingular when no pivot exists
//
//	go install github.com/katalvlaran/algebra/cmd/ringctl@latest
package algebra
