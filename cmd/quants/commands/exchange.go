package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/quants/config"
	"github.com/teranos/quants/errors"
	"github.com/teranos/quants/logger"
	"github.com/teranos/quants/market"
)

// ExchangeCmd converts money between currencies with configured rates.
var ExchangeCmd = &cobra.Command{
	Use:   "exchange <amount> <from> <to>",
	Short: "Exchange a money amount between currencies",
	Long: `Convert a money amount using the exchange rates from configuration.

Rates live in the [rates] table of ~/.quants/config.toml (or a project
quants.toml), keyed "BASE/COUNTER":

  [rates]
  "USD/EUR" = 0.85

A rate works in both directions, so USD/EUR also answers EUR to USD.

Examples:
  quants exchange 100 USD EUR
  quants exchange 85 EUR USD`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return errors.Mark(
				errors.Newf("unable to parse amount: %q", args[0]),
				errors.ErrParse)
		}

		from, ok := market.CurrencyFromCode(args[1])
		if !ok {
			return errors.Mark(
				errors.Newf("unknown currency: %q", args[1]),
				errors.ErrParse)
		}
		to, ok := market.CurrencyFromCode(args[2])
		if !ok {
			return errors.Mark(
				errors.Newf("unknown currency: %q", args[2]),
				errors.ErrParse)
		}

		rate, err := findRate(cfg, from, to)
		if err != nil {
			return err
		}
		logger.Debugw("using exchange rate", "rate", rate.String())

		converted, err := rate.Convert(market.NewMoney(amount, from))
		if err != nil {
			return err
		}

		pterm.Success.Println(fmt.Sprintf("%s = %s",
			market.NewMoney(amount, from).Formatted(), converted.Formatted()))
		return nil
	},
}

// findRate looks for a configured rate in either direction.
func findRate(cfg *config.Config, from, to market.Currency) (market.ExchangeRate, error) {
	if value, ok := cfg.Rates[from.Code()+"/"+to.Code()]; ok {
		return market.NewExchangeRate(from, to, value)
	}
	if value, ok := cfg.Rates[to.Code()+"/"+from.Code()]; ok {
		return market.NewExchangeRate(to, from, value)
	}
	return market.ExchangeRate{}, errors.Mark(
		errors.Newf("no configured rate for %s/%s", from.Code(), to.Code()),
		errors.ErrConversion)
}
