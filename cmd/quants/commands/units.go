package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/quants/catalog"
	"github.com/teranos/quants/errors"
)

// UnitsCmd lists dimensions and their unit tables.
var UnitsCmd = &cobra.Command{
	Use:   "units [dimension]",
	Short: "List dimensions and their units",
	Long: `Without arguments, list every known dimension. With a dimension name,
show its unit table: symbol, conversion factor to the primary unit, and
SI/primary markers.

Examples:
  quants units
  quants units length
  quants units temperature`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listDimensions()
		}
		return showUnitTable(args[0])
	},
}

func listDimensions() error {
	rows := pterm.TableData{{"Name", "Dimension", "Units"}}
	for _, e := range catalog.Entries() {
		rows = append(rows, []string{e.Name, e.Dimension, strconv.Itoa(len(e.Units))})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func showUnitTable(name string) error {
	entry, ok := catalog.Lookup(name)
	if !ok {
		return errors.Mark(
			errors.Newf("unknown dimension: %q (try 'quants units' for the list)", name),
			errors.ErrParse)
	}

	rows := pterm.TableData{{"Symbol", "Factor", "SI", "Primary"}}
	for _, u := range entry.Units {
		rows = append(rows, []string{
			u.Symbol,
			strconv.FormatFloat(u.Factor, 'g', -1, 64),
			mark(u.SI),
			mark(u.Primary),
		})
	}

	pterm.Info.Println(fmt.Sprintf("%s units (factors relative to the primary unit)", entry.Dimension))
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func mark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}
