package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/money_field/internal/apperrors"
)

// MinorUnits is a monetary amount counted in the currency's smallest unit (e.g. cents).
// Negative values are allowed.
type MinorUnits = int64

// SymbolPlacement defines where the currency symbol goes relative to the number.
type SymbolPlacement string

const (
	PlacementBefore SymbolPlacement = "before"
	PlacementAfter  SymbolPlacement = "after"
	PlacementHidden SymbolPlacement = "hidden"
)

// MaxDecimalDigits bounds DecimalDigits so that 10^digits still fits an int64.
const MaxDecimalDigits = 18

// ParseSymbolPlacement converts a configuration string into a SymbolPlacement.
func ParseSymbolPlacement(s string) (SymbolPlacement, error) {
	p := SymbolPlacement(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, apperrors.ErrInvalidPlacement, s)
	}
	return p, nil
}

// IsValid reports whether p is one of the three known placements.
func (p SymbolPlacement) IsValid() bool {
	switch p {
	case PlacementBefore, PlacementAfter, PlacementHidden:
		return true
	}
	return false
}

// FormatConfig is the fully resolved formatting configuration of one component.
type FormatConfig struct {
	CurrencyCode    string          `json:"currencyCode"`
	Locale          string          `json:"locale"`
	DecimalDigits   int             `json:"decimalDigits"`
	SymbolPlacement SymbolPlacement `json:"symbolPlacement"`
}

// DefaultFormatConfig returns the built-in defaults used when neither the
// component nor the process configuration sets a value.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		CurrencyCode:    "USD",
		Locale:          "en_US",
		DecimalDigits:   2,
		SymbolPlacement: PlacementBefore,
	}
}
