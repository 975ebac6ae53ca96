package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234.56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"€1,234.56", "1234.56"},
		{"$99.00", "99"},
		{"£12.50", "12.5"},
		{"-123.45", "-123.45"},
		{"123.45-", "-123.45"},
		{"(123.45)", "-123.45"},
		{`"1,234.56"`, "1234.56"},
		{"1,234", "1234"},
		{"12,345,678.90", "12345678.9"},
		{"0.00", "0"},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.input)
		assert.True(t, got.Equal(dec(tt.want)), "input %q: got %s want %s", tt.input, got, tt.want)
	}
}

func TestParseAmount_Garbage(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "-", "()", "12.34.56,78junk"} {
		assert.True(t, ParseAmount(input).IsZero(), "input %q", input)
	}
}
