// Package money converts between the primary trip currency (JPY, no minor
// units) and the secondary display currency (MYR, 2 decimal places). The
// exchange rate is MYR per 1 JPY and is mutable at runtime.
package money

import (
	"math"
	"strconv"
	"strings"
)

// DefaultRate is the fallback exchange rate, roughly 1 JPY = 0.03 MYR.
const DefaultRate = 0.03

// ToSecondary converts a primary-currency amount to the secondary currency,
// rounded to 2 decimal places.
func ToSecondary(amountPrimary, rate float64) float64 {
	if rate <= 0 || !isFinite(amountPrimary) || !isFinite(rate) {
		return 0
	}
	return round2(amountPrimary * rate)
}

// ToPrimary converts a secondary-currency amount back to the primary
// currency. A rate of zero or below yields 0; this never divides by zero.
func ToPrimary(amountSecondary, rate float64) float64 {
	if rate <= 0 || !isFinite(amountSecondary) || !isFinite(rate) {
		return 0
	}
	return round2(amountSecondary / rate)
}

// ParseAmount reads a user-entered amount. Empty, non-numeric, or negative
// input yields 0; entry errors are never surfaced.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !isFinite(v) || v < 0 {
		return 0
	}
	return v
}

// ParseRate reads a user-entered exchange rate, falling back to zero for
// anything that is not a positive number.
func ParseRate(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !isFinite(v) || v <= 0 {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
