// Package money converts between integer minor units and locale formatted strings.
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/core/domain"
	"github.com/SscSPs/money_field/internal/utils"
	"github.com/shopspring/decimal"
)

var (
	shortSuffixes = [...]string{"", "K", "M", "B", "T"}
	thousand      = decimal.NewFromInt(1000)

	permissiveNumber = regexp.MustCompile(`^-?[0-9]*(\.[0-9]*)?`)
)

// Formatter is the money value formatter of one resolved FormatConfig.
// It is immutable after construction and safe for concurrent use.
type Formatter struct {
	cfg      domain.FormatConfig
	symbols  numberSymbols
	symbol   string
	observer Observer
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithObserver installs an observer for parse fallbacks and configuration events.
func WithObserver(o Observer) Option {
	return func(f *Formatter) {
		f.observer = o
	}
}

// NewFormatter validates cfg and builds a Formatter. Invalid currency codes,
// locales, digit counts or placements fail here, never at format time.
// An empty placement means PlacementBefore.
func NewFormatter(cfg domain.FormatConfig, opts ...Option) (*Formatter, error) {
	unit, err := parseCurrency(cfg.CurrencyCode)
	if err != nil {
		return nil, err
	}
	tag, err := resolveLocale(cfg.Locale)
	if err != nil {
		return nil, err
	}
	if cfg.DecimalDigits < 0 || cfg.DecimalDigits > domain.MaxDecimalDigits {
		return nil, fmt.Errorf("%w: %w: %d (must be between 0 and %d)",
			apperrors.ErrValidation, apperrors.ErrInvalidDecimals, cfg.DecimalDigits, domain.MaxDecimalDigits)
	}
	if cfg.SymbolPlacement == "" {
		cfg.SymbolPlacement = domain.PlacementBefore
	}
	if !cfg.SymbolPlacement.IsValid() {
		return nil, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, apperrors.ErrInvalidPlacement, cfg.SymbolPlacement)
	}
	cfg.CurrencyCode = unit.String()

	f := &Formatter{
		cfg:     cfg,
		symbols: loadNumberSymbols(tag),
		symbol:  symbolFor(tag, unit),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.emit(EventConfigResolved, "")
	return f, nil
}

// Config returns the validated configuration.
func (f *Formatter) Config() domain.FormatConfig {
	return f.cfg
}

// CurrencySymbol returns the locale specific symbol of the configured currency.
func (f *Formatter) CurrencySymbol() string {
	return f.symbol
}

// Format renders amount, or "" when amount is nil.
func (f *Formatter) Format(amount *domain.MinorUnits) string {
	if amount == nil {
		return ""
	}
	return f.FormatAmount(*amount)
}

// FormatAmount renders amount with exactly DecimalDigits fraction digits using
// the locale's grouping and decimal marks. No currency symbol is added.
func (f *Formatter) FormatAmount(amount domain.MinorUnits) string {
	return f.renderDecimal(utils.ToMajorUnits(amount, f.cfg.DecimalDigits))
}

// FormatWithSymbol renders amount with the currency symbol placed according to
// the configured placement. A leading minus goes in front of a prefix symbol.
func (f *Formatter) FormatWithSymbol(amount domain.MinorUnits) string {
	switch f.cfg.SymbolPlacement {
	case domain.PlacementAfter:
		return f.FormatAmount(amount) + " " + f.symbol
	case domain.PlacementHidden:
		return f.FormatAmount(amount)
	}
	major := utils.ToMajorUnits(amount, f.cfg.DecimalDigits)
	if major.IsNegative() {
		return f.symbols.minus + f.symbol + f.renderDecimal(major.Neg())
	}
	return f.symbol + f.renderDecimal(major)
}

// FormatShort renders amount compressed with a K/M/B/T suffix. The symbol, when
// not hidden, is always a prefix in this mode.
func (f *Formatter) FormatShort(amount domain.MinorUnits) string {
	number := f.FormatShortNumber(amount)
	if f.cfg.SymbolPlacement == domain.PlacementHidden {
		return number
	}
	return f.symbol + number
}

// FormatShortNumber is FormatShort without any currency symbol.
func (f *Formatter) FormatShortNumber(amount domain.MinorUnits) string {
	value := utils.ToMajorUnits(amount, f.cfg.DecimalDigits)
	i := 0
	for value.Abs().GreaterThanOrEqual(thousand) && i < len(shortSuffixes)-1 {
		value = value.Shift(-3)
		i++
	}
	return f.renderDecimal(value) + shortSuffixes[i]
}

// Parse reads a display string back into minor units. It never fails: empty
// input is zero, and text that neither the locale-aware nor the permissive
// pass can read degrades to zero.
func (f *Formatter) Parse(text string) domain.MinorUnits {
	minor, err := f.parse(text, false)
	if err != nil {
		return 0
	}
	return minor
}

// ParseStrict is Parse without the permissive fallback. Malformed text returns
// apperrors.ErrMalformedAmount. Empty input is still zero.
func (f *Formatter) ParseStrict(text string) (domain.MinorUnits, error) {
	return f.parse(text, true)
}

func (f *Formatter) parse(text string, strict bool) (domain.MinorUnits, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	value, ok := f.parseLocalized(text)
	if !ok {
		if strict {
			return 0, fmt.Errorf("%w: %q", apperrors.ErrMalformedAmount, text)
		}
		f.emit(EventParseFallback, text)
		value, ok = parsePermissive(text)
		if !ok {
			f.emit(EventParseDegraded, text)
			return 0, fmt.Errorf("%w: %q", apperrors.ErrMalformedAmount, text)
		}
	}

	minor, ok := utils.ToMinorUnits(value, f.cfg.DecimalDigits)
	if !ok {
		if !strict {
			f.emit(EventParseDegraded, text)
		}
		return 0, fmt.Errorf("%w: %q overflows", apperrors.ErrMalformedAmount, text)
	}
	return minor, nil
}

// parseLocalized accepts an optional leading minus, digits with group marks
// between them in the integer part, and at most one decimal mark.
func (f *Formatter) parseLocalized(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(stripBidiMarks(text))

	negative := false
	if minus := stripBidiMarks(f.symbols.minus); minus != "" && strings.HasPrefix(s, minus) {
		negative = true
		s = s[len(minus):]
	} else if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	runes := []rune(s)
	var intPart, fracPart strings.Builder
	seenDecimal := false
	for i, r := range runes {
		if d, ok := f.symbols.digitValue(r); ok {
			if seenDecimal {
				fracPart.WriteByte('0' + d)
			} else {
				intPart.WriteByte('0' + d)
			}
			continue
		}
		switch {
		case r == f.symbols.decimal:
			if seenDecimal {
				return decimal.Decimal{}, false
			}
			seenDecimal = true
		case f.isGroupMark(r) && !seenDecimal:
			if i == 0 || i == len(runes)-1 {
				return decimal.Decimal{}, false
			}
			if _, ok := f.symbols.digitValue(runes[i-1]); !ok {
				return decimal.Decimal{}, false
			}
			if _, ok := f.symbols.digitValue(runes[i+1]); !ok {
				return decimal.Decimal{}, false
			}
		default:
			return decimal.Decimal{}, false
		}
	}
	if intPart.Len() == 0 && fracPart.Len() == 0 {
		return decimal.Decimal{}, false
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if intPart.Len() == 0 {
		b.WriteByte('0')
	} else {
		b.WriteString(intPart.String())
	}
	if fracPart.Len() > 0 {
		b.WriteByte('.')
		b.WriteString(fracPart.String())
	}
	value, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}

func (f *Formatter) isGroupMark(r rune) bool {
	if f.symbols.group == 0 {
		return false
	}
	if r == f.symbols.group {
		return true
	}
	return f.symbols.isSpaceGroup() && (r == ' ' || r == '\u00a0' || r == '\u202f')
}

// parsePermissive keeps only digits, '.' and '-' and reads the longest
// -?digits.digits prefix of what remains.
func parsePermissive(text string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, text)

	match := permissiveNumber.FindString(cleaned)
	if !strings.ContainsAny(match, "0123456789") {
		return decimal.Decimal{}, false
	}
	match = strings.TrimSuffix(match, ".")
	negative := strings.HasPrefix(match, "-")
	match = strings.TrimPrefix(match, "-")
	if strings.HasPrefix(match, ".") {
		match = "0" + match
	}
	if negative {
		match = "-" + match
	}

	value, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}

// renderDecimal applies the locale conventions to value, rounded to DecimalDigits.
func (f *Formatter) renderDecimal(value decimal.Decimal) string {
	fixed := utils.FormatWithPrecision(value, f.cfg.DecimalDigits)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intDigits, fracDigits, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteString(f.symbols.minus)
	}
	b.WriteString(f.symbols.localizeDigits(f.symbols.groupInteger(intDigits)))
	if f.cfg.DecimalDigits > 0 {
		b.WriteRune(f.symbols.decimal)
		b.WriteString(f.symbols.localizeDigits(fracDigits))
	}
	return b.String()
}

func (f *Formatter) emit(kind EventKind, input string) {
	if f.observer == nil {
		return
	}
	f.observer(Event{Kind: kind, Input: input, Config: f.cfg})
}
