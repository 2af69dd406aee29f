package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/quants/catalog"
	"github.com/teranos/quants/config"
)

// ParseCmd identifies and normalizes a quantity from text.
var ParseCmd = &cobra.Command{
	Use:   "parse <quantity>",
	Short: "Identify and normalize a quantity",
	Long: `Parse a quantity string against every known dimension and report the
first match with its normalized form.

Examples:
  quants parse "10 m"
  quants parse "1.5e3 kWh"
  quants parse 300K`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		value, dimension, err := catalog.ParseAny(args[0])
		if err != nil {
			return err
		}

		if cfg.Output.JSON {
			out, err := json.Marshal(struct {
				catalog.Value
				Dimension string `json:"dimension"`
			}{value, dimension})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", value.Text, dimension)
		return nil
	},
}
