package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkowalik/wayfind/pkg/anneal"
	apperrors "github.com/mkowalik/wayfind/pkg/errors"
	"github.com/mkowalik/wayfind/pkg/graph"
)

// tourCommand creates the tour command for annealed round trips.
func (c *CLI) tourCommand() *cobra.Command {
	var (
		datasetName string
		coolingName string
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "tour [graph.toml]",
		Short: "Find a short round trip with simulated annealing",
		Long: `Find a short round trip with simulated annealing.

The tour command treats every node with coordinates as a stop and
anneals a closed tour over them. Edge weights are ignored, distances
are straight-line. Use --seed for a reproducible run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTour(cmd.Context(), args, datasetName, coolingName, seed)
		},
	}

	cmd.Flags().StringVarP(&datasetName, "dataset", "d", "", "built-in dataset to tour (default: poland)")
	cmd.Flags().StringVar(&coolingName, "cooling", "exponential", "cooling schedule: exponential, linear")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = nondeterministic)")

	return cmd
}

// runTour collects the places, anneals a tour, and prints it.
func (c *CLI) runTour(ctx context.Context, args []string, datasetName, coolingName string, seed int64) error {
	f, err := loadInput(args, datasetName)
	if err != nil {
		return err
	}

	cooling, err := anneal.ParseCooling(coolingName)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err,
			"invalid cooling schedule %q (choose exponential or linear)", coolingName)
	}

	places := placesFromGraph(f.Graph)
	if len(places) < 3 {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"graph has %d nodes with coordinates, need at least 3 for a tour", len(places))
	}

	opts := []anneal.Option{anneal.WithCooling(cooling)}
	if seed != 0 {
		opts = append(opts, anneal.WithSeed(seed))
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Annealing tour over %d places...", len(places)))
	spinner.Start()

	res, err := anneal.Solve(places, opts...)
	if err != nil {
		spinner.StopWithError("Annealing failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Tour settled after %d iterations", res.Iterations))

	printKeyValue("Tour", strings.Join(res.Tour, " "+iconArrow+" "))
	printKeyValue("Length", trimFloat(res.Cost))
	printKeyValue("Cooling", res.Cooling.String())

	return nil
}

// placesFromGraph collects every node that carries coordinates.
func placesFromGraph(g *graph.Graph) []anneal.Place {
	var places []anneal.Place
	for _, id := range g.Nodes() {
		if c, ok := g.CoordOf(id); ok {
			places = append(places, anneal.Place{Name: id, X: c.X, Y: c.Y})
		}
	}
	return places
}
