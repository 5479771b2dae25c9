package cli

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount as pounds sterling with thousands
// separators, e.g. 1234.5 → "£1,234.50". Negative amounts carry the sign
// before the symbol; NaN and infinities render as "£0.00".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	formatted := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(formatted, ".")
	return sign + "£" + groupThousands(whole) + "." + frac
}

// FormatSignedCurrency is FormatCurrency with an explicit plus on positive
// amounts, used for net totals.
func FormatSignedCurrency(amount float64) string {
	if amount > 0 {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
