package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// DollarsToCents converts a decimal dollar value (like 12.34) to integer
// cents. Rounds to the nearest cent, so inputs with at most two decimal
// digits round-trip exactly.
func DollarsToCents(dollars float64) (int64, error) {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0, ErrInvalidAmount
	}
	if dollars < 0 {
		return 0, ErrInvalidAmount
	}
	// int64 max ~9e18 => dollars max ~9e16
	if dollars > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	return int64(math.Round(dollars * 100.0)), nil
}

// CentsToDollars converts stored integer cents back to decimal dollars.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100.0
}

// FormatCents renders integer cents as a dollar string, e.g. 1234 -> "$12.34".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
