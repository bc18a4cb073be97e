// Package cli implements the wayfind command-line interface.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkowalik/wayfind/pkg/buildinfo"
	"github.com/mkowalik/wayfind/pkg/dataset"
	apperrors "github.com/mkowalik/wayfind/pkg/errors"
	"github.com/mkowalik/wayfind/pkg/graph"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "wayfind"

	// defaultDataset is used when neither a graph file nor a dataset
	// name is given.
	defaultDataset = "poland"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Wayfind explores graphs with classic search algorithms",
		Long:         `Wayfind is a CLI tool for running BFS, DFS and A* searches over weighted graphs, with step-by-step trace replay, spanning trees, annealed tours and Graphviz rendering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.shatterCommand())
	root.AddCommand(c.tourCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.datasetsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Graph Input
// =============================================================================

// loadInput resolves the graph a command operates on. A positional
// file path wins over --dataset; with neither, the default dataset is
// used.
func loadInput(args []string, datasetName string) (*graph.File, error) {
	if len(args) > 0 {
		f, err := graph.ReadGraphFile(args[0])
		if err != nil {
			switch {
			case errors.Is(err, os.ErrNotExist):
				return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "graph file %s not found", args[0])
			case errors.Is(err, graph.ErrSelfLoop), errors.Is(err, graph.ErrNegativeWeight), errors.Is(err, graph.ErrInvalidNodeID):
				return nil, apperrors.Wrap(apperrors.ErrCodeInvalidEdge, err, "load graph %s", args[0])
			case errors.Is(err, graph.ErrNegativeHeuristic):
				return nil, apperrors.Wrap(apperrors.ErrCodeInvalidHeuristic, err, "load graph %s", args[0])
			}
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "load graph %s", args[0])
		}
		return f, nil
	}

	name := datasetName
	if name == "" {
		name = defaultDataset
	}
	f, err := dataset.Load(name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnknownDataset, err,
			"unknown dataset %q (available: %v)", name, dataset.Names())
	}
	return f, nil
}

// resolveEndpoints applies flag overrides on top of the defaults stored
// in the graph file and checks both nodes exist.
func resolveEndpoints(f *graph.File, start, goal string) (string, string, error) {
	if start == "" {
		start = f.Start
	}
	if goal == "" {
		goal = f.Goal
	}

	for _, id := range []string{start, goal} {
		if err := apperrors.ValidateNodeID(id); err != nil {
			return "", "", err
		}
		if !f.Graph.HasNode(id) {
			return "", "", apperrors.New(apperrors.ErrCodeUnknownNode, "node %q is not in the graph", id)
		}
	}
	return start, goal, nil
}
