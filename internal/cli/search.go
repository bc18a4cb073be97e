package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/mkowalik/wayfind/pkg/errors"
	"github.com/mkowalik/wayfind/pkg/graph"
	"github.com/mkowalik/wayfind/pkg/search"
)

// searchCommand creates the search command for running graph searches.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		datasetName   string
		start         string
		goal          string
		strategyName  string
		maxExpansions int
		noTrace       bool
		interactive   bool
	)

	cmd := &cobra.Command{
		Use:   "search [graph.toml]",
		Short: "Run BFS, DFS or A* between two nodes",
		Long: `Run a graph search between two nodes.

The search command runs BFS, DFS or A* over a graph loaded from a TOML
file or a built-in dataset (see 'wayfind datasets'). Start and goal
default to the endpoints stored in the graph and can be overridden with
flags.

Every run records a step-by-step trace of the OPEN and CLOSED
bookkeeping. Use --interactive to replay the trace in the terminal, or
--no-trace to skip recording on large graphs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd.Context(), args, searchParams{
				dataset:       datasetName,
				start:         start,
				goal:          goal,
				strategy:      strategyName,
				maxExpansions: maxExpansions,
				noTrace:       noTrace,
				interactive:   interactive,
			})
		},
	}

	cmd.Flags().StringVarP(&datasetName, "dataset", "d", "", "built-in dataset to search (default: poland)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start node (default: from graph)")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "goal node (default: from graph)")
	cmd.Flags().StringVarP(&strategyName, "strategy", "S", "astar", "search strategy: bfs, dfs, astar")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	cmd.Flags().BoolVar(&noTrace, "no-trace", false, "skip trace recording")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "replay the trace step by step")

	return cmd
}

type searchParams struct {
	dataset       string
	start         string
	goal          string
	strategy      string
	maxExpansions int
	noTrace       bool
	interactive   bool
}

// runSearch loads the graph, runs the search, and presents the result.
func (c *CLI) runSearch(ctx context.Context, args []string, p searchParams) error {
	f, err := loadInput(args, p.dataset)
	if err != nil {
		return err
	}

	start, goal, err := resolveEndpoints(f, p.start, p.goal)
	if err != nil {
		return err
	}

	strategy, err := search.ParseStrategy(p.strategy)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidStrategy, err,
			"invalid strategy %q (choose bfs, dfs or astar)", p.strategy)
	}

	opts := []search.Option{search.WithContext(ctx)}
	if p.maxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(p.maxExpansions))
	}
	if p.noTrace && !p.interactive {
		opts = append(opts, search.WithoutTrace())
	}

	prog := newProgress(c.Logger)
	res, err := search.Search(f.Graph, start, goal, strategy, opts...)
	if err != nil {
		if errors.Is(err, search.ErrAborted) {
			return apperrors.Wrap(apperrors.ErrCodeSearchAborted, err,
				"search aborted after %d expansions", res.Expanded)
		}
		return err
	}
	prog.done(fmt.Sprintf("Expanded %d nodes", res.Expanded))

	if p.interactive {
		return runTraceUI(f.Graph, res)
	}

	printSearchResult(f, res)
	return nil
}

// printSearchResult prints the outcome of a completed search.
func printSearchResult(f *graph.File, res *search.Result) {
	if !res.Found() {
		printWarning("No path from %s to %s", res.Start, res.Goal)
		printStats(f.Graph.NodeCount(), f.Graph.EdgeCount())
		return
	}

	printSuccess("%s found a path", res.Strategy)
	printKeyValue("Path", strings.Join(res.Path, " "+iconArrow+" "))
	printKeyValue("Cost", trimFloat(res.Cost))
	printKeyValue("Expanded", fmt.Sprintf("%d", res.Expanded))
	printStats(f.Graph.NodeCount(), f.Graph.EdgeCount())

	if len(res.Trace) > 0 {
		printNewline()
		printDetail("%d trace steps recorded", len(res.Trace))
		replay := "wayfind search"
		if f.Name != "" {
			replay += " -d " + f.Name
		}
		printNextStep("Replay", replay+" -S "+res.Strategy.String()+" -i")
	}
}

// trimFloat formats a cost without a trailing ".0" for whole values.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
