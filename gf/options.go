// SPDX-License-Identifier: MIT

// Functional options for field construction.
//
// Option constructors panic only on nonsensical values (programmer error);
// values that depend on the field being built (polynomial length, its
// primitivity) are checked by the constructor and reported as errors.

package gf

// DefaultSymbol is the variable name used when rendering extension-field elements.
const DefaultSymbol = "X"

const panicEmptySymbol = "gf: WithSymbol: symbol must be non-empty"

// Option configures field construction.
type Option func(*options)

type options struct {
	symbol  string
	poly    []int
	catalog Catalog
}

func gatherOptions(opts ...Option) options {
	o := options{symbol: DefaultSymbol, catalog: ConwayCatalog{}}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSymbol sets the variable name used by Format (default "X").
// Panics on an empty symbol.
func WithSymbol(symbol string) Option {
	if symbol == "" {
		panic(panicEmptySymbol)
	}

	return func(o *options) { o.symbol = symbol }
}

// WithPolynomial overrides the catalog: coeffs are the X^0..X^(n-1)
// coefficients of the monic defining polynomial. The polynomial must be
// primitive, otherwise construction fails with ErrReduciblePolynomial.
func WithPolynomial(coeffs []int) Option {
	cp := append([]int(nil), coeffs...)

	return func(o *options) { o.poly = cp }
}

// WithCatalog replaces the built-in Conway catalog. A nil catalog restores it.
func WithCatalog(c Catalog) Option {
	return func(o *options) {
		if c == nil {
			c = ConwayCatalog{}
		}
		o.catalog = c
	}
}

// polynomial resolves the defining polynomial: the WithPolynomial override
// when given, the catalog entry otherwise.
func (o options) polynomial(id FieldID) ([]int, error) {
	if o.poly != nil {
		return normalizePolynomial(id, o.poly)
	}

	return lookup(o.catalog, id)
}
