package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount parses a raw amount string into a non-negative
// decimal. Thousands separators and currency prefixes are stripped and
// the absolute value is taken: direction belongs to TxnType, never to
// the amount.
func NormalizeAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "₹")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "INR"))

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return dec.Abs(), nil
}
