package models

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonNumericChars = regexp.MustCompile(`[^0-9.\-]+`)

// ParseAmount coerces a loosely formatted numeric string to a decimal.
// Every character that is not a digit, '.' or '-' is stripped before
// parsing, so "1,234.56" and "Rs. 500" both work. Empty or unparsable
// input yields zero; this function never fails.
func ParseAmount(amountStr string) decimal.Decimal {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return decimal.Zero
	}
	amountStr = nonNumericChars.ReplaceAllString(amountStr, "")
	dec, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// ParseCount coerces a numeric string to an integer, truncating any
// fractional part. Same fallback behavior as ParseAmount.
func ParseCount(s string) int {
	return int(ParseAmount(s).IntPart())
}
