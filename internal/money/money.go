// Package money represents currency amounts as integer counts of paise
// (1/100 of a rupee). All arithmetic stays in integers so repeated
// additions never drift the way floating point would.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in paise. Stored monetary fields are never negative.
type Money int64

// Parse converts a human decimal string to paise. Everything except digits
// and the decimal point is stripped first, so "₹1,250.75" parses the same
// as "1250.75". The fractional part is taken as exactly two digits: shorter
// inputs are padded ("12.5" -> 1250), longer ones truncated ("12.509" -> 1250).
// Empty or malformed input yields 0; Parse never fails.
func Parse(text string) Money {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "." {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	// Shift into paise, IntPart discards anything past two decimals.
	return Money(d.Shift(2).IntPart())
}

// Format renders the amount as "{whole}.{frac:02d}". No thousands
// separators and no currency symbol; the symbol is a presentation concern.
func (m Money) Format() string {
	return decimal.New(int64(m), -2).StringFixed(2)
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return m + o
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return m - o
}

// Mul multiplies two paise amounts and scales the product back down to
// paise, flooring away any sub-paise remainder. Both operands are already
// in paise, so the raw product is in paise² and must be divided down once.
// This is the single primitive used for quantity × unit price.
func Mul(a, b Money) Money {
	return a * b / 100
}
