package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmount bounds a single amount so that its cent value always fits int64.
var maxAmount = decimal.New(1, 15)

// ParseAmount parses a user-entered money amount into a positive decimal
// rounded to whole cents. A comma decimal separator is accepted; explicit
// signs are not, amounts are magnitudes and the kind flag carries direction.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, ErrMalformedAmount
	}
	if strings.ContainsAny(s, "+-") {
		return decimal.Zero, ErrMalformedAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrMalformedAmount
	}

	d = d.Round(2) // half up on the third decimal
	if d.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveAmount
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, ErrAmountTooLarge
	}
	return d, nil
}

// Cents converts an amount to its integer cent value for storage.
// The amount must already be rounded to two places.
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).IntPart()
}

// FromCents converts a stored cent value back to a decimal amount.
func FromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}
