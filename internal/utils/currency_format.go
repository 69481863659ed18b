package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// ToMajorUnits converts an integer amount of minor units into its exact decimal value.
// Example: 1234 with precision 2 returns 12.34
// Example: 1234 with precision 0 returns 1234
func ToMajorUnits(minor int64, precision int) decimal.Decimal {
	return decimal.New(minor, -int32(precision))
}

// ToMinorUnits scales a major-unit value to minor units, rounding half away from zero.
// The boolean is false when the result does not fit in an int64.
// Example: 12.345 with precision 2 returns 1235
// Example: -12.345 with precision 2 returns -1235
func ToMinorUnits(amount decimal.Decimal, precision int) (int64, bool) {
	scaled := amount.Shift(int32(precision)).Round(0)
	if scaled.GreaterThan(maxInt64) || scaled.LessThan(minInt64) {
		return 0, false
	}
	return scaled.IntPart(), true
}

// FormatWithPrecision formats an amount with exactly the given number of fraction digits.
// Example: 12.3 with precision 2 returns "12.30"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
