package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/quants/catalog"
	"github.com/teranos/quants/config"
	"github.com/teranos/quants/errors"
	"github.com/teranos/quants/logger"
)

var (
	convertTo  string
	convertDim string
)

// ConvertCmd converts a quantity to another unit of its dimension.
var ConvertCmd = &cobra.Command{
	Use:   "convert <quantity>",
	Short: "Convert a quantity to another unit",
	Long: `Parse a quantity and re-express it in the target unit.

The dimension is inferred from the unit symbol when unambiguous; pass
--dim to disambiguate symbols shared across dimensions (e.g. "gr" is a
troy grain, "pc" a parsec).

Examples:
  quants convert "10 km" --to mi
  quants convert 100°C --to K
  quants convert "1 gal" --to L
  quants convert "1 gr" --to g --dim mass`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		entry, err := resolveDimension(args[0], convertDim)
		if err != nil {
			return err
		}
		logger.Debugw("resolved dimension", "dimension", entry.Name, "input", args[0])

		result, err := entry.Convert(args[0], convertTo)
		if err != nil {
			return err
		}

		if cfg.Output.JSON {
			out, err := json.Marshal(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%.*g %s\n", cfg.Output.Precision, result.Value, result.Symbol)
		return nil
	},
}

// resolveDimension picks the catalog entry for an input, preferring an
// explicit --dim, then unique symbol ownership, then first-parse-wins.
func resolveDimension(input, dim string) (catalog.Entry, error) {
	if dim != "" {
		entry, ok := catalog.Lookup(dim)
		if !ok {
			return catalog.Entry{}, errors.Mark(
				errors.Newf("unknown dimension: %q", dim),
				errors.ErrParse)
		}
		return entry, nil
	}

	_, name, err := catalog.ParseAny(input)
	if err != nil {
		return catalog.Entry{}, err
	}
	entry, _ := catalog.Lookup(name)
	return entry, nil
}

func init() {
	ConvertCmd.Flags().StringVar(&convertTo, "to", "", "Target unit symbol (required)")
	ConvertCmd.Flags().StringVar(&convertDim, "dim", "", "Dimension name when the unit symbol is ambiguous")
	ConvertCmd.MarkFlagRequired("to")
}
