package components

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/core/domain"
	"github.com/SscSPs/money_field/internal/core/money"
	"github.com/SscSPs/money_field/internal/utils"
)

// MoneyInput is an editable form field for amounts stored as minor units.
//
// The user sees 12.34 with the currency symbol as an affix outside the text;
// the stored value is "1234".
type MoneyInput struct {
	moneyAttributes
	strict bool
}

// NewMoneyInput creates an input for the field at name.
func NewMoneyInput(name string, opts ...Option) (*MoneyInput, error) {
	attrs, err := newMoneyAttributes(name, opts)
	if err != nil {
		return nil, err
	}
	return &MoneyInput{moneyAttributes: attrs}, nil
}

// HideCurrencySymbol drops the affix symbol.
func (i *MoneyInput) HideCurrencySymbol() *MoneyInput {
	i.placement = Value(domain.PlacementHidden)
	return i
}

// StrictParse makes DehydrateState reject malformed text instead of storing zero.
func (i *MoneyInput) StrictParse() *MoneyInput {
	i.strict = true
	return i
}

// IsStrict reports whether malformed input is rejected.
func (i *MoneyInput) IsStrict() bool {
	return i.strict
}

// SymbolPlacement returns the placement resolved for rc.
func (i *MoneyInput) SymbolPlacement(rc ResolveContext) domain.SymbolPlacement {
	return i.ResolveConfig(rc).SymbolPlacement
}

// Affixes returns the text shown before and after the editable value.
func (i *MoneyInput) Affixes(rc ResolveContext) (prefix, suffix string, err error) {
	f, err := i.Formatter(rc)
	if err != nil {
		return "", "", err
	}
	switch f.Config().SymbolPlacement {
	case domain.PlacementBefore:
		return f.CurrencySymbol(), "", nil
	case domain.PlacementAfter:
		return "", f.CurrencySymbol(), nil
	}
	return "", "", nil
}

// InputAttributes are the HTML attributes the host should put on the text input.
func (i *MoneyInput) InputAttributes() map[string]string {
	return map[string]string{
		"inputmode": "decimal",
		"class":     "text-right",
	}
}

// FormatState is the read hook: stored minor units to editable text.
func (i *MoneyInput) FormatState(rc ResolveContext, raw any) (string, error) {
	f, err := i.Formatter(rc)
	if err != nil {
		return "", err
	}
	return i.formatStored(f, raw, f.FormatAmount), nil
}

// DehydrateState is the write hook: submitted text to minor units encoded as a
// string, or nil when nothing was entered. Malformed text stores "0" unless
// StrictParse is set.
func (i *MoneyInput) DehydrateState(rc ResolveContext, raw any) (*string, error) {
	f, err := i.Formatter(rc)
	if err != nil {
		return nil, err
	}

	text, number, isNumber, present := submittedValue(raw)
	if !present {
		return nil, nil
	}

	var minor int64
	switch {
	case isNumber:
		v, ok := utils.ToMinorUnits(number, f.Config().DecimalDigits)
		if !ok {
			if i.strict {
				return nil, fmt.Errorf("%w: %s overflows", apperrors.ErrMalformedAmount, number)
			}
			if i.observer != nil {
				i.observer(money.Event{Kind: money.EventParseDegraded, Input: number.String(), Config: f.Config()})
			}
		}
		minor = v
	case i.strict:
		minor, err = f.ParseStrict(text)
		if err != nil {
			return nil, err
		}
	default:
		minor = f.Parse(text)
	}

	stored := strconv.FormatInt(minor, 10)
	return &stored, nil
}
