package components

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/SscSPs/money_field/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	maxStored = decimal.NewFromInt(math.MaxInt64)
	minStored = decimal.NewFromInt(math.MinInt64)
)

// storedAmount reads a persisted value as minor units. Integer columns arrive
// as Go integers, text columns as decimal strings; fractional parts are dropped.
// present is false for nil and empty values, valid is false for anything that
// cannot be read as a whole amount.
func storedAmount(raw any) (amount domain.MinorUnits, present bool, valid bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false, true
	case int64:
		return v, true, true
	case *int64:
		if v == nil {
			return 0, false, true
		}
		return *v, true, true
	case int:
		return int64(v), true, true
	case int32:
		return int64(v), true, true
	case int16:
		return int64(v), true, true
	case int8:
		return int64(v), true, true
	case uint:
		return uint64Amount(uint64(v))
	case uint64:
		return uint64Amount(v)
	case uint32:
		return int64(v), true, true
	case uint16:
		return int64(v), true, true
	case uint8:
		return int64(v), true, true
	case float64:
		return decimalAmount(decimal.NewFromFloat(v))
	case float32:
		return decimalAmount(decimal.NewFromFloat32(v))
	case decimal.Decimal:
		return decimalAmount(v)
	case json.Number:
		return stringAmount(v.String())
	case string:
		return stringAmount(v)
	case *string:
		if v == nil {
			return 0, false, true
		}
		return stringAmount(*v)
	case []byte:
		return stringAmount(string(v))
	}
	return 0, true, false
}

func stringAmount(s string) (int64, bool, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, true
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, true, false
	}
	return decimalAmount(d)
}

func decimalAmount(d decimal.Decimal) (int64, bool, bool) {
	whole := d.Truncate(0)
	if whole.GreaterThan(maxStored) || whole.LessThan(minStored) {
		return 0, true, false
	}
	return whole.IntPart(), true, true
}

func uint64Amount(v uint64) (int64, bool, bool) {
	if v > math.MaxInt64 {
		return 0, true, false
	}
	return int64(v), true, true
}

// submittedValue classifies a value submitted by the host's form state. Text
// goes through locale-aware parsing; numbers already carry their value and
// skip it.
func submittedValue(raw any) (text string, number decimal.Decimal, isNumber bool, present bool) {
	switch v := raw.(type) {
	case nil:
		return "", decimal.Decimal{}, false, false
	case string:
		return v, decimal.Decimal{}, false, strings.TrimSpace(v) != ""
	case *string:
		if v == nil {
			return "", decimal.Decimal{}, false, false
		}
		return *v, decimal.Decimal{}, false, strings.TrimSpace(*v) != ""
	case []byte:
		return string(v), decimal.Decimal{}, false, strings.TrimSpace(string(v)) != ""
	case int:
		return "", decimal.NewFromInt(int64(v)), true, true
	case int64:
		return "", decimal.NewFromInt(v), true, true
	case int32:
		return "", decimal.NewFromInt32(v), true, true
	case uint32:
		return "", decimal.NewFromInt(int64(v)), true, true
	case uint64:
		return "", decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), true, true
	case float64:
		return "", decimal.NewFromFloat(v), true, true
	case float32:
		return "", decimal.NewFromFloat32(v), true, true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return v.String(), decimal.Decimal{}, false, v.String() != ""
		}
		return "", d, true, true
	case decimal.Decimal:
		return "", v, true, true
	}
	return fmt.Sprint(raw), decimal.Decimal{}, false, true
}
