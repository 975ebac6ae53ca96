package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a statement amount in the formats banks actually
// emit: currency symbols, EU (1.234,56) and US (1,234.56) separators,
// parenthesized and trailing-minus negatives. It is total: anything
// unparseable comes back as zero, mirroring how statement exports
// leave blank amount cells.
func ParseAmount(val string) decimal.Decimal {
	val = strings.TrimSpace(val)
	val = strings.Trim(val, `"`)
	val = strings.TrimSpace(val)
	if val == "" {
		return decimal.Zero
	}

	negative := strings.HasPrefix(val, "-") ||
		strings.HasSuffix(val, "-") ||
		(strings.HasPrefix(val, "(") && strings.HasSuffix(val, ")"))

	// Strip currency symbols, spaces, signs, and parentheses.
	val = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '€', '$', '£', '-', '(', ')':
			return -1
		}
		return r
	}, val)

	commaPos := strings.LastIndex(val, ",")
	dotPos := strings.LastIndex(val, ".")
	switch {
	case commaPos >= 0 && dotPos >= 0:
		if commaPos > dotPos {
			// EU format: 1.234,56
			val = strings.ReplaceAll(val, ".", "")
			val = strings.ReplaceAll(val, ",", ".")
		} else {
			// US format: 1,234.56
			val = strings.ReplaceAll(val, ",", "")
		}
	case commaPos >= 0:
		// A single comma with at most two trailing digits is a decimal
		// separator; anything else is a thousands separator.
		if strings.Count(val, ",") == 1 && len(val)-commaPos-1 <= 2 {
			val = strings.Replace(val, ",", ".", 1)
		} else {
			val = strings.ReplaceAll(val, ",", "")
		}
	}

	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return d.Neg()
	}
	return d
}
