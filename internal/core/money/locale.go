package money

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/SscSPs/money_field/internal/apperrors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberSymbols holds the decimal conventions of one locale, read from CLDR data.
type numberSymbols struct {
	decimal rune
	group   rune // 0 when the locale does not group digits
	minus   string
	zero    rune

	primaryGroup   int
	secondaryGroup int
	minGrouping    int
}

var latinSymbols = numberSymbols{
	decimal:        '.',
	group:          ',',
	minus:          "-",
	zero:           '0',
	primaryGroup:   3,
	secondaryGroup: 3,
	minGrouping:    1,
}

// resolveLocale accepts ICU style ("de_DE") and BCP 47 ("de-DE") identifiers.
func resolveLocale(id string) (language.Tag, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(id), "_", "-")
	if normalized == "" {
		return language.Und, fmt.Errorf("%w: %w: empty locale", apperrors.ErrValidation, apperrors.ErrInvalidLocale)
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %w: %q: %v", apperrors.ErrValidation, apperrors.ErrInvalidLocale, id, err)
	}
	if _, conf := tag.Base(); conf == language.No || tag == language.Und {
		return language.Und, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, apperrors.ErrInvalidLocale, id)
	}
	return tag, nil
}

// loadNumberSymbols derives the separators and grouping of a locale by
// formatting probe values and reading back the marks placed between digits.
func loadNumberSymbols(tag language.Tag) numberSymbols {
	p := message.NewPrinter(tag)

	syms, ok := readProbe(p.Sprint(number.Decimal(1234567.5, number.Scale(1))))
	if !ok {
		return latinSymbols
	}

	// Some locales (es, pl) leave four digit integers ungrouped.
	if small, ok := readProbe(p.Sprint(number.Decimal(1234.5, number.Scale(1)))); ok && syms.group != 0 && small.group == 0 {
		syms.minGrouping = 2
	}

	minus := strings.TrimFunc(stripBidiMarks(p.Sprint(number.Decimal(-1))), unicode.IsDigit)
	if minus == "" {
		minus = "-"
	}
	syms.minus = minus
	return syms
}

// readProbe splits a formatted 1234567.5 into digit runs and separators.
func readProbe(s string) (numberSymbols, bool) {
	var (
		runs []int
		seps []rune
		zero rune
		cur  int
	)
	for _, r := range s {
		if unicode.IsDigit(r) {
			if zero == 0 {
				// first digit of the probe is always '1'
				zero = r - 1
			}
			cur++
			continue
		}
		if isBidiMark(r) {
			continue
		}
		if cur > 0 {
			runs = append(runs, cur)
			seps = append(seps, r)
			cur = 0
		}
	}
	if cur > 0 {
		runs = append(runs, cur)
	}
	if len(runs) < 2 || len(seps) != len(runs)-1 {
		return numberSymbols{}, false
	}

	syms := numberSymbols{
		decimal:     seps[len(seps)-1],
		zero:        zero,
		minGrouping: 1,
	}
	intRuns := runs[:len(runs)-1]
	if len(intRuns) > 1 {
		syms.group = seps[0]
		syms.primaryGroup = intRuns[len(intRuns)-1]
		syms.secondaryGroup = syms.primaryGroup
		if len(intRuns) > 2 {
			syms.secondaryGroup = intRuns[len(intRuns)-2]
		}
	}
	return syms, true
}

func isBidiMark(r rune) bool {
	switch r {
	case '\u200e', '\u200f', '\u061c':
		return true
	}
	return false
}

func stripBidiMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if isBidiMark(r) {
			return -1
		}
		return r
	}, s)
}

// isSpaceGroup reports whether the locale groups digits with a space variant,
// in which case any of the common space characters is accepted when parsing.
func (s numberSymbols) isSpaceGroup() bool {
	return s.group != 0 && unicode.IsSpace(s.group)
}

// groupInteger inserts group separators into a string of ASCII digits.
func (s numberSymbols) groupInteger(digits string) string {
	if s.group == 0 || s.primaryGroup <= 0 || len(digits) < s.primaryGroup+s.minGrouping {
		return digits
	}

	parts := []string{digits[len(digits)-s.primaryGroup:]}
	head := digits[:len(digits)-s.primaryGroup]
	size := s.secondaryGroup
	if size <= 0 {
		size = s.primaryGroup
	}
	for len(head) > size {
		parts = append(parts, head[len(head)-size:])
		head = head[:len(head)-size]
	}
	if head != "" {
		parts = append(parts, head)
	}

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteRune(s.group)
		}
	}
	return b.String()
}

// localizeDigits maps ASCII digits onto the locale's numbering system.
func (s numberSymbols) localizeDigits(ascii string) string {
	if s.zero == 0 || s.zero == '0' {
		return ascii
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return s.zero + (r - '0')
		}
		return r
	}, ascii)
}

// digitValue accepts both ASCII digits and the locale's native digits.
func (s numberSymbols) digitValue(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r - '0'), true
	}
	if s.zero != 0 && r >= s.zero && r <= s.zero+9 {
		return byte(r - s.zero), true
	}
	return 0, false
}
