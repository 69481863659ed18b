package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/money_field/internal/core/money"
	"github.com/spf13/cobra"
)

func newFormatCommand(o *options) *cobra.Command {
	var symbol bool
	cmd := &cobra.Command{
		Use:   "format MINOR_UNITS...",
		Short: "Render minor units as locale formatted text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.formatter(cmd)
			if err != nil {
				return err
			}
			render := f.FormatAmount
			if symbol {
				render = f.FormatWithSymbol
			}
			for _, arg := range args {
				amount, err := parseMinorUnits(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render(amount))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&symbol, "symbol", "s", false, "include the currency symbol")
	return cmd
}

func newShortCommand(o *options) *cobra.Command {
	var hideSymbol bool
	cmd := &cobra.Command{
		Use:   "short MINOR_UNITS...",
		Short: "Render minor units in the compact K/M/B/T form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.formatter(cmd)
			if err != nil {
				return err
			}
			render := f.FormatShort
			if hideSymbol {
				render = f.FormatShortNumber
			}
			for _, arg := range args {
				amount, err := parseMinorUnits(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render(amount))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hideSymbol, "hide-symbol", false, "omit the currency symbol")
	return cmd
}

func newParseCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Convert user-entered amounts into minor units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.formatter(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				if !o.strict {
					fmt.Fprintln(cmd.OutOrStdout(), f.Parse(arg))
					continue
				}
				amount, err := f.ParseStrict(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), amount)
			}
			return nil
		},
	}
}

func newSymbolCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "symbol",
		Short: "Print the currency symbol for the configured locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := o.formatter(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.CurrencySymbol())
			return nil
		},
	}
}

func newCurrenciesCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List ISO 4217 currencies with their symbol and standard precision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := money.KnownCurrencies(o.locale)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tSYMBOL\tDIGITS")
			for _, c := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.CurrencyCode, c.Symbol, c.Precision)
			}
			return w.Flush()
		},
	}
}
