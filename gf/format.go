// SPDX-License-Identifier: MIT

package gf

import (
	"strconv"
	"strings"
)

// formatTerms renders low→high coefficients as a polynomial in symbol:
// nonzero terms only, highest power first, joined by " + ". A coefficient of
// 1 is dropped except on the constant term; powers of ten and above are
// braced (X^{12}). All-zero input renders as "0".
func formatTerms(coeffs []int, symbol string) string {
	terms := make([]string, 0, len(coeffs))
	for i := len(coeffs) - 1; i >= 0; i-- {
		if coeffs[i] != 0 {
			terms = append(terms, formatTerm(coeffs[i], i, symbol))
		}
	}
	if len(terms) == 0 {
		return "0"
	}

	return strings.Join(terms, " + ")
}

func formatTerm(c, power int, symbol string) string {
	if power == 0 {
		return strconv.Itoa(c)
	}
	var b strings.Builder
	if c != 1 {
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteString(symbol)
	switch {
	case power == 1:
	case power < 10:
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(power))
	default:
		b.WriteString("^{")
		b.WriteString(strconv.Itoa(power))
		b.WriteByte('}')
	}

	return b.String()
}
