// Package cli implements the moneyfmt command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/SscSPs/money_field/internal/core/domain"
	"github.com/SscSPs/money_field/internal/core/money"
	"github.com/SscSPs/money_field/internal/platform/config"
	"github.com/spf13/cobra"
)

type options struct {
	currency  string
	locale    string
	decimals  int
	placement string
	strict    bool
	verbose   bool
}

// formatter builds a formatter from the flags. Flags left unset keep the
// configured defaults.
func (o *options) formatter(cmd *cobra.Command) (*money.Formatter, error) {
	var opts []money.Option
	if o.verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, money.WithObserver(money.LogObserver(logger)))
	}
	return money.NewFormatter(domain.FormatConfig{
		CurrencyCode:    o.currency,
		Locale:          o.locale,
		DecimalDigits:   o.decimals,
		SymbolPlacement: domain.SymbolPlacement(o.placement),
	}, opts...)
}

// NewRootCommand builds the moneyfmt command tree with flag defaults taken from cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "moneyfmt",
		Short:         "Format and parse money amounts stored as integer minor units",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.currency, "currency", cfg.Money.DefaultCurrency, "ISO 4217 currency code")
	flags.StringVar(&o.locale, "locale", cfg.Money.DefaultLocale, "locale identifier such as en_US or de_DE")
	flags.IntVar(&o.decimals, "decimals", cfg.Money.DecimalDigits, "number of minor-unit digits")
	flags.StringVar(&o.placement, "placement", cfg.Money.SymbolPlacement, "currency symbol placement: before, after or hidden")
	flags.BoolVar(&o.strict, "strict", cfg.Money.StrictParse, "reject malformed input instead of falling back")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log formatter events to stderr")

	root.AddCommand(
		newFormatCommand(o),
		newShortCommand(o),
		newParseCommand(o),
		newSymbolCommand(o),
		newCurrenciesCommand(o),
	)
	return root
}

// Execute runs the command tree against args, writing to out and errOut.
func Execute(cfg *config.Config, args []string, out, errOut io.Writer) error {
	root := NewRootCommand(cfg)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.Execute()
}

func parseMinorUnits(arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer amount of minor units", arg)
	}
	return v, nil
}
