package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkowalik/wayfind/pkg/mst"
)

// mstCommand creates the mst command for minimum spanning trees.
func (c *CLI) mstCommand() *cobra.Command {
	var datasetName string

	cmd := &cobra.Command{
		Use:   "mst [graph.toml]",
		Short: "Compute a minimum spanning tree",
		Long: `Compute a minimum spanning tree with Kruskal's algorithm.

On a disconnected graph the result is the minimum spanning forest and
the number of trees is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMST(args, datasetName)
		},
	}

	cmd.Flags().StringVarP(&datasetName, "dataset", "d", "", "built-in dataset (default: poland)")

	return cmd
}

// runMST loads the graph and prints the spanning tree.
func (c *CLI) runMST(args []string, datasetName string) error {
	f, err := loadInput(args, datasetName)
	if err != nil {
		return err
	}

	res, err := mst.Kruskal(f.Graph)
	if err != nil {
		return err
	}

	if res.Spanning() {
		printSuccess("Minimum spanning tree, weight %s", trimFloat(res.Weight))
	} else {
		printWarning("Graph is disconnected: %d trees, total weight %s", res.Trees, trimFloat(res.Weight))
	}

	for _, e := range res.Edges {
		printDetail("%s %s %s  (%s)", e.A, iconArrow, e.B, trimFloat(e.Cost))
	}
	printStats(f.Graph.NodeCount(), f.Graph.EdgeCount())
	if f.Name != "" {
		printNewline()
		printNextStep("Render", fmt.Sprintf("wayfind render -d %s -o %s.svg", f.Name, f.Name))
	}

	return nil
}
