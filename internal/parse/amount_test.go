package parse

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain decimal", raw: "1234.56", want: 1234.56},
		{name: "currency symbol and thousands separator", raw: "£1,234.56", want: 1234.56},
		{name: "negative", raw: "-42.10", want: -42.10},
		{name: "zero", raw: "0", want: 0},
		{name: "empty", raw: "", want: 0},
		{name: "whitespace only", raw: "   ", want: 0},
		{name: "no digits", raw: "GBP", want: 0},
		{name: "embedded text", raw: "12.50 CR", want: 12.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Amount(tt.raw), 1e-9)
		})
	}
}

func TestAmountIdempotentOnCleanInput(t *testing.T) {
	for _, raw := range []string{"0", "12.5", "-3.25", "1000"} {
		first := Amount(raw)
		second := Amount(strconv.FormatFloat(first, 'f', -1, 64))
		assert.InDelta(t, first, second, 1e-9, "re-parsing %q changed the value", raw)
	}
}

func TestHasNumericValue(t *testing.T) {
	assert.True(t, HasNumericValue("0"), "a literal zero is present")
	assert.True(t, HasNumericValue("12.50"))
	assert.True(t, HasNumericValue(" 5 "))
	assert.False(t, HasNumericValue(""))
	assert.False(t, HasNumericValue("   "))
}
