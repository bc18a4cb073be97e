package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkowalik/wayfind/pkg/dot"
	apperrors "github.com/mkowalik/wayfind/pkg/errors"
	"github.com/mkowalik/wayfind/pkg/graph"
	"github.com/mkowalik/wayfind/pkg/search"
)

// Output formats for the render command.
const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// renderCommand creates the render command for Graphviz output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		datasetName  string
		output       string
		format       string
		strategyName string
		start        string
		goal         string
		heuristics   bool
	)

	cmd := &cobra.Command{
		Use:   "render [graph.toml]",
		Short: "Render a graph to SVG or DOT",
		Long: `Render a graph to SVG or DOT.

Without --strategy the bare graph is rendered. With --strategy a search
runs first and its path is highlighted: start in blue, goal in red,
intermediate nodes in violet.

The output format is inferred from the --output extension and can be
forced with --format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args, renderParams{
				dataset:    datasetName,
				output:     output,
				format:     format,
				strategy:   strategyName,
				start:      start,
				goal:       goal,
				heuristics: heuristics,
			})
		},
	}

	cmd.Flags().StringVarP(&datasetName, "dataset", "d", "", "built-in dataset to render (default: poland)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.svg)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default), dot")
	cmd.Flags().StringVarP(&strategyName, "strategy", "S", "", "highlight the path found by this strategy: bfs, dfs, astar")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start node for highlighting (default: from graph)")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "goal node for highlighting (default: from graph)")
	cmd.Flags().BoolVar(&heuristics, "heuristics", false, "annotate nodes with heuristic values")

	return cmd
}

type renderParams struct {
	dataset    string
	output     string
	format     string
	strategy   string
	start      string
	goal       string
	heuristics bool
}

// runRender loads the graph, optionally searches it, and writes the output.
func (c *CLI) runRender(ctx context.Context, args []string, p renderParams) error {
	f, err := loadInput(args, p.dataset)
	if err != nil {
		return err
	}

	outputPath, format, err := resolveOutput(f, p.output, p.format)
	if err != nil {
		return err
	}

	var highlight []string
	if p.strategy != "" {
		highlight, err = c.searchForHighlight(ctx, f, p)
		if err != nil {
			return err
		}
	}

	dotSrc := dot.ToDOT(f.Graph, dot.Options{
		Highlight:  highlight,
		Heuristics: p.heuristics,
	})

	payload := []byte(dotSrc)
	if format == formatSVG {
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		payload, err = dot.RenderSVG(dotSrc)
		if err != nil {
			spinner.StopWithError("Render failed")
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "render svg")
		}
		spinner.Stop()
	}

	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Render complete")
	printFile(outputPath)
	printStats(f.Graph.NodeCount(), f.Graph.EdgeCount())

	return nil
}

// searchForHighlight runs the requested search and returns its path.
func (c *CLI) searchForHighlight(ctx context.Context, f *graph.File, p renderParams) ([]string, error) {
	strategy, err := search.ParseStrategy(p.strategy)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidStrategy, err,
			"invalid strategy %q (choose bfs, dfs or astar)", p.strategy)
	}

	start, goal, err := resolveEndpoints(f, p.start, p.goal)
	if err != nil {
		return nil, err
	}

	res, err := search.Search(f.Graph, start, goal, strategy,
		search.WithContext(ctx), search.WithoutTrace())
	if err != nil {
		return nil, err
	}
	if !res.Found() {
		printWarning("No path from %s to %s, rendering without highlight", start, goal)
		return nil, nil
	}
	return res.Path, nil
}

// resolveOutput picks the output path and format, inferring one from
// the other where possible.
func resolveOutput(f *graph.File, output, format string) (string, string, error) {
	if output != "" {
		if err := apperrors.ValidateOutputPath(output); err != nil {
			return "", "", err
		}
	}

	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".dot", ".gv":
			format = formatDOT
		default:
			format = formatSVG
		}
	}
	switch format {
	case formatSVG, formatDOT:
	default:
		return "", "", apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format %q (choose svg or dot)", format)
	}

	if output == "" {
		name := f.Name
		if name == "" {
			name = "graph"
		}
		output = name + "." + format
	}
	return output, format, nil
}
