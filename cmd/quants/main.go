package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/quants/cmd/quants/commands"
	"github.com/teranos/quants/logger"
)

var rootCmd = &cobra.Command{
	Use:   "quants",
	Short: "quants - unit-of-measure conversions and quantity arithmetic",
	Long: `quants - typed quantities, units of measure and conversions.

Parse quantities from text, convert between units of the same dimension,
inspect unit tables, and exchange money amounts with configured rates.

Examples:
  quants convert "10 km" --to mi     # Convert between units
  quants parse "1.5e3 kWh"           # Identify and normalize a quantity
  quants units length                # Show the Length unit table
  quants exchange 100 USD EUR        # Exchange money with configured rates`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(false, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ConvertCmd)
	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.UnitsCmd)
	rootCmd.AddCommand(commands.ExchangeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
