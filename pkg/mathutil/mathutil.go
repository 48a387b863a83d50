// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"loanledger/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used at every boundary where a monetary value is stored or displayed.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsFinite reports whether a value is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Clamp restricts a value to the [lo, hi] interval.
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
