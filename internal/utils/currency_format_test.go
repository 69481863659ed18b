package utils_test

import (
	"math"
	"testing"

	"github.com/SscSPs/money_field/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMajorUnits(t *testing.T) {
	assert.Equal(t, "12.34", utils.ToMajorUnits(1234, 2).String())
	assert.Equal(t, "-0.05", utils.ToMajorUnits(-5, 2).String())
	assert.Equal(t, "1234", utils.ToMajorUnits(1234, 0).String())
	assert.Equal(t, "0.001234", utils.ToMajorUnits(1234, 6).String())
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		in        string
		precision int
		want      int64
	}{
		{"12.34", 2, 1234},
		{"12.345", 2, 1235},
		{"-12.345", 2, -1235},
		{"0.005", 2, 1},
		{"-0.005", 2, -1},
		{"0.004", 2, 0},
		{"1234.56", 2, 123456},
		{"7", 0, 7},
		{"2.5", 0, 3},
	}
	for _, tt := range tests {
		got, ok := utils.ToMinorUnits(decimal.RequireFromString(tt.in), tt.precision)
		assert.True(t, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestToMinorUnits_Overflow(t *testing.T) {
	_, ok := utils.ToMinorUnits(decimal.NewFromInt(math.MaxInt64), 2)
	assert.False(t, ok)

	got, ok := utils.ToMinorUnits(decimal.NewFromInt(math.MinInt64), 0)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), got)
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.30", utils.FormatWithPrecision(decimal.RequireFromString("12.3"), 2))
	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.RequireFromString("12.3"), 0))
	assert.Equal(t, "-0.50", utils.FormatWithPrecision(decimal.RequireFromString("-0.5"), 2))
}
