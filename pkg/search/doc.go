// Package search implements uninformed (BFS, DFS) and informed (A*) graph
// search over a [graph.Graph], producing a path, its cost, and an optional
// step-by-step trace for visualization and debugging.
//
// All three strategies run the same skeleton and differ only in the OPEN-set
// discipline: a FIFO queue for BFS, a LIFO stack for DFS, and a min-heap
// ordered by f = g + h for A*. Discovered-but-not-finalized nodes live in
// OPEN; finalized nodes move to CLOSED and are never revisited. Duplicate
// OPEN entries are permitted and discarded lazily when popped.
//
// Determinism is guaranteed: neighbors are visited in sorted order (DFS
// pushes them reverse-sorted so the alphabetically-first neighbor pops
// first), and the A* heap breaks f-ties by smaller g and then by insertion
// sequence. Two runs over the same graph produce identical results,
// including traces.
//
//	res, err := search.Search(g, "Glogow", "Plock", search.AStar)
//	if err != nil {
//	    return err
//	}
//	if !res.Found() {
//	    fmt.Println("no path")
//	}
//
// The engine is stateless and reentrant: concurrent searches over one
// immutable graph are safe.
package search
