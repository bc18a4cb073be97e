package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/mkowalik/wayfind/pkg/errors"
	"github.com/mkowalik/wayfind/pkg/interval"
)

// shatterCommand creates the shatter command for the tile-shattering solver.
func (c *CLI) shatterCommand() *cobra.Command {
	var showTable bool

	cmd := &cobra.Command{
		Use:   "shatter <tiles>",
		Short: "Maximize the score of shattering a row of tiles",
		Long: `Maximize the score of shattering a row of tiles.

Shattering tile k between surviving neighbors l and r scores l*k*r,
with virtual value-1 tiles past both ends of the row. The command
prints the best achievable total and, with --table, the interval table
the solver filled in.

Tiles are given as a comma- or space-separated list:

  wayfind shatter 3,1,5,8
  wayfind shatter 3 1 5 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShatter(strings.Join(args, ","), showTable)
		},
	}

	cmd.Flags().BoolVar(&showTable, "table", false, "print the solved interval table")

	return cmd
}

// runShatter parses the tile list, solves it, and prints the result.
func (c *CLI) runShatter(raw string, showTable bool) error {
	tiles, err := apperrors.ValidateTiles(raw)
	if err != nil {
		return err
	}

	tab, err := interval.SolveTable(tiles)
	if err != nil {
		if errors.Is(err, interval.ErrNonPositiveTile) || errors.Is(err, interval.ErrEmptyInput) {
			return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid tile list")
		}
		return err
	}

	printSuccess("Best score: %d", tab.Best())
	printKeyValue("Tiles", fmt.Sprintf("%v", tiles))
	printKeyValue("Intervals", fmt.Sprintf("%d", len(tab.Events)))

	if showTable {
		printNewline()
		printTileTable(tab)
	}

	return nil
}

// printTileTable prints the interval scores in fill order.
func printTileTable(tab *interval.Table) {
	printInfo("Interval scores (in fill order)")
	for _, ev := range tab.Events {
		// Left and Right are exclusive boundaries into the padded row.
		inner := tab.Arr[ev.Left+1 : ev.Right]
		printDetail("(%d,%d) %v %s %d", ev.Left, ev.Right, inner, iconArrow, ev.Score)
	}
}
