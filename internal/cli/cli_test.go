package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/cli"
	"github.com/SscSPs/money_field/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *config.Config {
	return &config.Config{Money: config.MoneyConfig{
		DefaultCurrency: "USD",
		DefaultLocale:   "en_US",
		DecimalDigits:   2,
		SymbolPlacement: "before",
	}}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := cli.Execute(defaultConfig(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"format", "--", "123456", "-5"}, "1,234.56\n-0.05\n"},
		{"symbol", []string{"format", "--symbol", "1234"}, "$12.34\n"},
		{"german after", []string{"format", "-s", "--currency", "EUR", "--locale", "de_DE", "--placement", "after", "1050"}, "10,50 €\n"},
		{"no decimals", []string{"format", "--decimals", "0", "1234"}, "1,234\n"},
		{"short", []string{"short", "123456789"}, "$1.23M\n"},
		{"short hidden", []string{"short", "--hide-symbol", "123456789"}, "1.23M\n"},
		{"symbol command", []string{"symbol", "--currency", "GBP", "--locale", "en_GB"}, "£\n"},
		{"parse", []string{"parse", "1,234.56", "abc"}, "123456\n0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParseStrict(t *testing.T) {
	_, _, err := run(t, "parse", "--strict", "abc")
	assert.ErrorIs(t, err, apperrors.ErrMalformedAmount)

	out, _, err := run(t, "parse", "--strict", "12.34")
	require.NoError(t, err)
	assert.Equal(t, "1234\n", out)
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := run(t, "format", "--currency", "XXX999", "1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)

	_, _, err = run(t, "format", "--placement", "left", "1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPlacement)

	_, _, err = run(t, "format", "12.5")
	assert.Error(t, err)

	_, _, err = run(t, "format")
	assert.Error(t, err)
}

func TestVerboseLogsEvents(t *testing.T) {
	_, errOut, err := run(t, "-v", "parse", "abc")
	require.NoError(t, err)
	assert.Contains(t, errOut, "parse_fallback")
}

func TestCurrencies(t *testing.T) {
	out, _, err := run(t, "currencies", "--locale", "en_US")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 100)
	assert.Equal(t, []string{"CODE", "SYMBOL", "DIGITS"}, strings.Fields(lines[0]))
	assert.Contains(t, out, "JPY")
}
