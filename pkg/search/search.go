package search

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/mkowalik/wayfind/pkg/graph"
)

// Search runs the selected strategy over g from start to goal.
//
// All strategies share one skeleton; only the OPEN-set discipline and
// the neighbor push rule differ. Duplicates are tolerated in OPEN and
// filtered lazily: a popped record whose node is already CLOSED is
// discarded. A closed node is never reopened, even when a cheaper route
// to it surfaces later - for A* this is the classic closed-set variant,
// which stays optimal as long as the heuristic is consistent.
//
// An unreachable goal is a normal outcome: the Result carries a nil
// Path and a nil error. Errors are reserved for invalid input
// (ErrNilGraph, ErrEmptyEndpoint, ErrUnknownStrategy, ErrOptionViolation)
// and for aborted runs (ErrAborted, possibly wrapping a context error),
// in which case the partial Result is still returned for inspection.
//
// The engine never mutates g. Concurrent searches over the same graph
// are safe as long as no caller mutates it meanwhile.
func Search(g *graph.Graph, start, goal string, strategy Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" || goal == "" {
		return nil, ErrEmptyEndpoint
	}
	if strategy != BFS && strategy != DFS && strategy != AStar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:    g,
		strategy: strategy,
		goal:     goal,
		opts:     o,
		open:     newFrontier(strategy),
		closed:   make(map[string]bool),
		res: &Result{
			RunID:    uuid.NewString(),
			Strategy: strategy,
			Start:    start,
			Goal:     goal,
		},
	}
	if strategy == AStar {
		w.bestG = map[string]float64{start: 0}
	}

	w.open.push(record{
		id:   start,
		path: []string{start},
		g:    0,
		f:    g.Heuristic(start),
	})
	w.seq = 1

	return w.res, w.loop()
}

// walker encapsulates the mutable state of one search run.
type walker struct {
	graph    *graph.Graph
	strategy Strategy
	goal     string
	opts     Options

	open        frontier
	closed      map[string]bool
	closedOrder []string
	bestG       map[string]float64 // A* only: best g seen per node
	seq         int
	res         *Result
}

// loop processes the frontier until the goal closes, the frontier
// empties, or the run is aborted.
func (w *walker) loop() error {
	for !w.open.empty() {
		select {
		case <-w.opts.Ctx.Done():
			return fmt.Errorf("%w: %w", ErrAborted, w.opts.Ctx.Err())
		default:
		}

		cur := w.open.pop()
		if w.closed[cur.id] {
			// Stale duplicate left behind by lazy deletion.
			continue
		}

		w.close(cur)

		if cur.id == w.goal {
			w.res.Path = cur.path
			w.res.Cost = cur.g
			return nil
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return fmt.Errorf("%w: expansion cutoff %d reached", ErrAborted, w.opts.MaxExpansions)
		}

		w.expand(cur)
	}
	// Frontier exhausted: no path. Not an error.
	return nil
}

// close finalizes the node and captures its trace step.
func (w *walker) close(cur record) {
	w.closed[cur.id] = true
	w.closedOrder = append(w.closedOrder, cur.id)
	w.res.Expanded++

	if !w.opts.Trace {
		return
	}
	h := cur.f - cur.g
	w.res.Trace = append(w.res.Trace, Step{
		Node:   cur.id,
		Path:   slices.Clone(cur.path),
		G:      cur.g,
		H:      h,
		F:      cur.f,
		Open:   w.open.snapshot(),
		Closed: slices.Clone(w.closedOrder),
	})
}

// expand pushes the open records for cur's neighbors.
//
// Neighbors arrive sorted from the graph. BFS enqueues them in that
// order; DFS pushes them reverse-sorted so the alphabetically-first
// neighbor sits on top of the stack and is expanded first. A* pushes a
// neighbor only when the new g improves on the best g recorded for it,
// leaving any older, costlier duplicate to be discarded at pop time.
func (w *walker) expand(cur record) {
	nbrs := w.graph.Neighbors(cur.id)
	if w.strategy == DFS {
		slices.Reverse(nbrs)
	}

	for _, nb := range nbrs {
		if w.closed[nb.To] {
			continue
		}
		newG := cur.g + nb.Cost

		switch w.strategy {
		case AStar:
			if prev, seen := w.bestG[nb.To]; seen && newG >= prev {
				continue
			}
			w.bestG[nb.To] = newG
			w.push(nb.To, cur.path, newG, newG+w.graph.Heuristic(nb.To))
		default:
			// BFS/DFS ignore cost for ordering; first discovery wins
			// because later duplicates die at the CLOSED check.
			w.push(nb.To, cur.path, newG, newG)
		}
	}
}

func (w *walker) push(id string, parentPath []string, g, f float64) {
	path := make([]string, len(parentPath)+1)
	copy(path, parentPath)
	path[len(parentPath)] = id

	w.open.push(record{id: id, path: path, g: g, f: f, seq: w.seq})
	w.seq++
}
