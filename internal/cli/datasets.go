package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mkowalik/wayfind/pkg/dataset"
)

// datasetsCommand creates the datasets command listing built-in graphs.
func (c *CLI) datasetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the built-in example graphs",
		Long: `List the built-in example graphs.

Any command that accepts a graph file also accepts one of these names
via --dataset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasets()
		},
	}
}

// runDatasets prints a table of the registered datasets.
func runDatasets() error {
	rows := [][]string{}
	for _, name := range dataset.Names() {
		f, err := dataset.Load(name)
		if err != nil {
			return err
		}

		heuristic := "no"
		for _, id := range f.Graph.Nodes() {
			if f.Graph.Heuristic(id) != 0 {
				heuristic = "yes"
				break
			}
		}

		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", f.Graph.NodeCount()),
			fmt.Sprintf("%d", f.Graph.EdgeCount()),
			f.Start + " " + iconArrow + " " + f.Goal,
			heuristic,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Dataset", "Nodes", "Edges", "Default route", "Heuristic").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	fmt.Println(t.Render())
	return nil
}
