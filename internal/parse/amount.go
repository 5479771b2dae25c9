// Package parse converts raw textual statement fields into amounts and dates,
// tolerating locale punctuation, currency symbols, and two-digit years.
package parse

import (
	"math"
	"strconv"
	"strings"
)

// Amount parses a raw monetary field into a numeric amount. Every character
// that is not a digit, decimal point, or minus sign is stripped before
// parsing, so "£1,234.56" and "1234.56" are equivalent. Unparseable or
// non-finite input yields 0.
func Amount(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0
	}
	return amount
}

// HasNumericValue reports whether a raw amount field is present at all. It
// must run on the raw value: "0" is present, "" and "   " are not. Zero is a
// valid debit or credit, so presence cannot be inferred from the parsed value.
func HasNumericValue(raw string) bool {
	return strings.TrimSpace(raw) != ""
}
