// Package components holds the money-aware admin panel adapters: an editable
// input, a table column and a read-only entry. Each composes the shared
// money attributes and exposes the read and write hooks a host framework calls.
package components

import (
	"fmt"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/core/domain"
	"github.com/SscSPs/money_field/internal/core/money"
)

// Option configures the money attributes shared by every adapter.
type Option func(*moneyAttributes) error

// moneyAttributes holds the per-field currency configuration. Settings are
// resolved on every hook call, falling back to the field defaults.
type moneyAttributes struct {
	name      string
	currency  Setting[string]
	locale    Setting[string]
	decimals  Setting[int]
	placement Setting[domain.SymbolPlacement]
	defaults  domain.FormatConfig
	observer  money.Observer

	minValue *int64
	maxValue *int64
	step     *int64
}

func newMoneyAttributes(name string, opts []Option) (moneyAttributes, error) {
	a := moneyAttributes{
		name:     name,
		defaults: domain.DefaultFormatConfig(),
	}
	for _, opt := range opts {
		if err := opt(&a); err != nil {
			return moneyAttributes{}, fmt.Errorf("field %q: %w", name, err)
		}
	}
	if a.minValue != nil && a.maxValue != nil && *a.minValue > *a.maxValue {
		return moneyAttributes{}, fmt.Errorf("field %q: %w: min value %d is greater than max value %d",
			name, apperrors.ErrValidation, *a.minValue, *a.maxValue)
	}
	return a, nil
}

// WithDefaults replaces the built-in defaults with process-wide configuration.
// The defaults are validated immediately.
func WithDefaults(cfg domain.FormatConfig) Option {
	return func(a *moneyAttributes) error {
		if _, err := money.NewFormatter(cfg); err != nil {
			return err
		}
		a.defaults = cfg
		return nil
	}
}

// WithCurrency sets the ISO 4217 currency. A literal code is validated now.
func WithCurrency(s Setting[string]) Option {
	return func(a *moneyAttributes) error {
		if s.IsLiteral() {
			code, _ := s.Resolve(ResolveContext{})
			if err := money.ValidateCurrencyCode(code); err != nil {
				return err
			}
		}
		a.currency = s
		return nil
	}
}

// WithLocale sets the formatting locale. A literal locale is validated now.
func WithLocale(s Setting[string]) Option {
	return func(a *moneyAttributes) error {
		if s.IsLiteral() {
			locale, _ := s.Resolve(ResolveContext{})
			if err := money.ValidateLocale(locale); err != nil {
				return err
			}
		}
		a.locale = s
		return nil
	}
}

// WithDecimals sets the number of fraction digits.
func WithDecimals(s Setting[int]) Option {
	return func(a *moneyAttributes) error {
		if s.IsLiteral() {
			digits, _ := s.Resolve(ResolveContext{})
			if digits < 0 || digits > domain.MaxDecimalDigits {
				return fmt.Errorf("%w: %w: %d", apperrors.ErrValidation, apperrors.ErrInvalidDecimals, digits)
			}
		}
		a.decimals = s
		return nil
	}
}

// WithSymbolPlacement sets where the currency symbol goes.
func WithSymbolPlacement(placement string) Option {
	return func(a *moneyAttributes) error {
		p, err := domain.ParseSymbolPlacement(placement)
		if err != nil {
			return err
		}
		a.placement = Value(p)
		return nil
	}
}

// WithObserver forwards formatter events to o.
func WithObserver(o money.Observer) Option {
	return func(a *moneyAttributes) error {
		a.observer = o
		return nil
	}
}

// WithMinValue sets the minimum amount in minor units.
func WithMinValue(v int64) Option {
	return func(a *moneyAttributes) error {
		a.minValue = &v
		return nil
	}
}

// WithMaxValue sets the maximum amount in minor units.
func WithMaxValue(v int64) Option {
	return func(a *moneyAttributes) error {
		a.maxValue = &v
		return nil
	}
}

// WithStep sets the input step in minor units.
func WithStep(v int64) Option {
	return func(a *moneyAttributes) error {
		if v <= 0 {
			return fmt.Errorf("%w: step must be positive, got %d", apperrors.ErrValidation, v)
		}
		a.step = &v
		return nil
	}
}

// Name returns the state path of the field.
func (a *moneyAttributes) Name() string {
	return a.name
}

// MinValue returns the minimum amount in minor units, if any.
func (a *moneyAttributes) MinValue() *int64 {
	return a.minValue
}

// MaxValue returns the maximum amount in minor units, if any.
func (a *moneyAttributes) MaxValue() *int64 {
	return a.maxValue
}

// Step returns the input step in minor units, if any.
func (a *moneyAttributes) Step() *int64 {
	return a.step
}

// CheckRange reports apperrors.ErrOutOfRange when amount falls outside the
// configured bounds.
func (a *moneyAttributes) CheckRange(amount domain.MinorUnits) error {
	if a.minValue != nil && amount < *a.minValue {
		return fmt.Errorf("%w: %d is below the minimum %d", apperrors.ErrOutOfRange, amount, *a.minValue)
	}
	if a.maxValue != nil && amount > *a.maxValue {
		return fmt.Errorf("%w: %d is above the maximum %d", apperrors.ErrOutOfRange, amount, *a.maxValue)
	}
	return nil
}

// ResolveConfig evaluates every setting against rc and fills the gaps from the defaults.
func (a *moneyAttributes) ResolveConfig(rc ResolveContext) domain.FormatConfig {
	if rc.Field == "" {
		rc.Field = a.name
	}
	cfg := a.defaults
	if v, ok := a.currency.Resolve(rc); ok {
		cfg.CurrencyCode = v
	}
	if v, ok := a.locale.Resolve(rc); ok {
		cfg.Locale = v
	}
	if v, ok := a.decimals.Resolve(rc); ok {
		cfg.DecimalDigits = v
	}
	if v, ok := a.placement.Resolve(rc); ok {
		cfg.SymbolPlacement = v
	}
	return cfg
}

// Formatter resolves the configuration and builds a formatter for it.
func (a *moneyAttributes) Formatter(rc ResolveContext) (*money.Formatter, error) {
	var opts []money.Option
	if a.observer != nil {
		opts = append(opts, money.WithObserver(a.observer))
	}
	f, err := money.NewFormatter(a.ResolveConfig(rc), opts...)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", a.name, err)
	}
	return f, nil
}

// formatStored renders a stored value through render, degrading unreadable
// stored values to zero the same way malformed input is treated.
func (a *moneyAttributes) formatStored(f *money.Formatter, raw any, render func(int64) string) string {
	amount, present, valid := storedAmount(raw)
	if !present {
		return ""
	}
	if !valid && a.observer != nil {
		a.observer(money.Event{Kind: money.EventStateDegraded, Input: fmt.Sprint(raw), Config: f.Config()})
	}
	return render(amount)
}
