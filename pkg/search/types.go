package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrEmptyEndpoint is returned when start or goal is the empty string.
	ErrEmptyEndpoint = errors.New("search: start and goal must be non-empty")

	// ErrUnknownStrategy is returned for a strategy value outside the
	// declared set, including strings ParseStrategy does not recognize.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrAborted is returned when the expansion cutoff or the context
	// stops a search before the frontier empties. It is deliberately
	// distinct from the no-path outcome, which is not an error at all.
	ErrAborted = errors.New("search: aborted before completion")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Strategy selects the frontier discipline of the engine.
type Strategy int

const (
	// BFS explores in FIFO order, minimizing hop count.
	BFS Strategy = iota
	// DFS explores in LIFO order, finding some path quickly.
	DFS
	// AStar explores in order of f = g + h using the graph's heuristic
	// table; with an admissible heuristic the result is cost-optimal.
	AStar
)

// String returns the lowercase name used on the CLI and in logs.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts a user-supplied name into a Strategy.
// Accepted spellings are case-insensitive: bfs, dfs, astar, a*.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Option configures search behavior via functional arguments.
// An invalid option (e.g. a negative cutoff) is recorded internally and
// surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a search run.
type Options struct {
	// Ctx allows cancellation and deadlines. Cancellation surfaces as
	// the context's error wrapped in ErrAborted.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search after that many nodes
	// have been closed, returning ErrAborted. 0 disables the cutoff.
	MaxExpansions int

	// Trace enables per-step snapshot capture. On by default; disable
	// for large graphs where the snapshots dominate memory.
	Trace bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no expansion
// cutoff, and trace capture enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Trace:         true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions aborts the search after n closed nodes.
//
//	n > 0: abort after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option, surfaces as ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithoutTrace disables step snapshot capture.
func WithoutTrace() Option {
	return func(o *Options) { o.Trace = false }
}

// Step is one trace entry, captured at the moment a node is closed:
// the node itself, the path that reached it, its cost terms, and
// snapshots of the OPEN and CLOSED sets at that instant.
//
// OPEN is listed in frontier order (queue front-to-back, stack
// bottom-to-top, heap by ascending priority); CLOSED is listed in the
// order nodes were closed. Both orders are deterministic.
type Step struct {
	Node   string
	Path   []string
	G      float64 // accumulated cost from start
	H      float64 // heuristic estimate (0 for uninformed strategies)
	F      float64 // G + H
	Open   []string
	Closed []string
}

// Result is the outcome of one search run. It is owned by the caller;
// the engine retains no state between calls.
type Result struct {
	// RunID is a random identifier correlating this run across logs
	// and exported artifacts.
	RunID string

	Strategy Strategy
	Start    string
	Goal     string

	// Path is the start→goal node sequence, inclusive, or nil when the
	// goal is unreachable. Unreachability is a normal outcome, not an
	// error.
	Path []string

	// Cost is the summed edge cost along Path. Zero for the trivial
	// start == goal path; undefined (zero) when Path is nil.
	Cost float64

	// Expanded counts closed nodes.
	Expanded int

	// Trace holds per-step snapshots unless disabled via WithoutTrace.
	Trace []Step
}

// Found reports whether a path was discovered.
func (r *Result) Found() bool { return r.Path != nil }
