package money

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/core/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// parseCurrency validates code against the ISO 4217 table.
func parseCurrency(code string) (currency.Unit, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 3 {
		return currency.Unit{}, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, apperrors.ErrInvalidCurrency, code)
	}
	unit, err := currency.ParseISO(normalized)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, apperrors.ErrInvalidCurrency, code)
	}
	return unit, nil
}

// ValidateCurrencyCode reports a configuration error for codes outside the ISO 4217 table.
func ValidateCurrencyCode(code string) error {
	_, err := parseCurrency(code)
	return err
}

// ValidateLocale reports a configuration error for unknown locale identifiers.
func ValidateLocale(locale string) error {
	_, err := resolveLocale(locale)
	return err
}

func symbolFor(tag language.Tag, unit currency.Unit) string {
	return message.NewPrinter(tag).Sprint(currency.Symbol(unit))
}

// LookupCurrency describes one ISO 4217 currency as displayed in locale.
func LookupCurrency(code, locale string) (domain.Currency, error) {
	unit, err := parseCurrency(code)
	if err != nil {
		return domain.Currency{}, err
	}
	tag, err := resolveLocale(locale)
	if err != nil {
		return domain.Currency{}, err
	}
	scale, _ := currency.Standard.Rounding(unit)
	return domain.Currency{
		CurrencyCode: unit.String(),
		Symbol:       symbolFor(tag, unit),
		Precision:    scale,
	}, nil
}

// KnownCurrencies lists the currencies currently in use as legal tender, sorted by code.
func KnownCurrencies(locale string) ([]domain.Currency, error) {
	tag, err := resolveLocale(locale)
	if err != nil {
		return nil, err
	}

	seen := make(map[currency.Unit]struct{})
	var out []domain.Currency
	for it := currency.Query(); it.Next(); {
		unit := it.Unit()
		if _, ok := seen[unit]; ok {
			continue
		}
		seen[unit] = struct{}{}
		scale, _ := currency.Standard.Rounding(unit)
		out = append(out, domain.Currency{
			CurrencyCode: unit.String(),
			Symbol:       symbolFor(tag, unit),
			Precision:    scale,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}
