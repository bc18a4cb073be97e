package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned when a node identifier is empty.
	// All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints name
	// the same node. Self-loops carry no information in an undirected
	// road map and are rejected.
	ErrSelfLoop = errors.New("edge endpoints must differ")

	// ErrNegativeWeight is returned by [Graph.AddEdge] for a negative cost.
	// Non-negative weights are a precondition for A* optimality, so the
	// graph refuses them at construction time rather than letting a search
	// silently misbehave.
	ErrNegativeWeight = errors.New("edge cost must be non-negative")

	// ErrNegativeHeuristic is returned by [Graph.SetHeuristic] for a
	// negative estimate. Heuristics are remaining-cost estimates and can
	// never be below zero.
	ErrNegativeHeuristic = errors.New("heuristic must be non-negative")
)

// Edge is one adjacency entry: the neighbor's ID and the cost of the
// connecting edge. Because the graph is undirected, the same edge appears
// in the adjacency of both endpoints with the same cost.
type Edge struct {
	To   string
	Cost float64
}

// Coord is an optional 2-D position for a node, used by tour planning and
// rendering. It plays no role in graph search itself.
type Coord struct {
	X, Y float64
}

// Graph is a weighted undirected graph of named nodes with an optional
// heuristic table (estimated remaining cost to a fixed goal) and optional
// node coordinates.
//
// The zero value is not usable - use [New]. Graph is not safe for
// concurrent mutation, but once built it may be shared read-only across
// any number of concurrent searches.
type Graph struct {
	adj    map[string]map[string]float64
	heur   map[string]float64
	coords map[string]Coord
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adj:    make(map[string]map[string]float64),
		heur:   make(map[string]float64),
		coords: make(map[string]Coord),
	}
}

// AddNode registers a node without any edges. A node with no edges is
// valid: searching from or toward it simply yields no path.
// Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
	return nil
}

// AddEdge inserts the undirected edge u—v with the given cost, creating
// either endpoint as needed. Both adjacency directions are written so the
// symmetry invariant holds by construction.
//
// Repeating an identical call is idempotent. Re-adding the same pair with
// a different cost overwrites the previous cost in both directions
// (last write wins). Returns ErrInvalidNodeID, ErrSelfLoop or
// ErrNegativeWeight without modifying the graph.
func (g *Graph) AddEdge(u, v string, cost float64) error {
	if u == "" || v == "" {
		return ErrInvalidNodeID
	}
	if u == v {
		return ErrSelfLoop
	}
	if cost < 0 {
		return ErrNegativeWeight
	}
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}
	g.adj[u][v] = cost
	g.adj[v][u] = cost
	return nil
}

// HasNode reports whether the node exists in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Nodes returns all node IDs in sorted order.
func (g *Graph) Nodes() []string {
	return slices.Sorted(maps.Keys(g.adj))
}

// Neighbors returns the adjacency of the node sorted by neighbor ID.
// The sort order is the canonical tie-break that makes traversal traces
// reproducible. An unknown node yields an empty slice, never an error:
// a search over it degrades gracefully to "no path".
func (g *Graph) Neighbors(id string) []Edge {
	row := g.adj[id]
	if len(row) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(row))
	for to, cost := range row {
		out = append(out, Edge{To: to, Cost: cost})
	}
	slices.SortFunc(out, func(a, b Edge) int {
		switch {
		case a.To < b.To:
			return -1
		case a.To > b.To:
			return 1
		}
		return 0
	})
	return out
}

// Cost returns the weight of the edge u—v and whether the edge exists.
func (g *Graph) Cost(u, v string) (float64, bool) {
	c, ok := g.adj[u][v]
	return c, ok
}

// SetHeuristic records the estimated remaining cost from the node to the
// goal the table was built for. The engine treats missing entries as zero,
// so a graph with no heuristic degenerates to uninformed (Dijkstra-like)
// behavior under A*.
//
// The graph does not verify admissibility; an overestimating table makes
// A* silently suboptimal and is a caller error.
func (g *Graph) SetHeuristic(id string, v float64) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if v < 0 {
		return ErrNegativeHeuristic
	}
	g.heur[id] = v
	return nil
}

// Heuristic returns the node's heuristic estimate, or 0 when none is set.
func (g *Graph) Heuristic(id string) float64 {
	return g.heur[id]
}

// SetCoord attaches a 2-D position to the node.
func (g *Graph) SetCoord(id string, c Coord) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	g.coords[id] = c
	return nil
}

// CoordOf returns the node's position and whether one was set.
func (g *Graph) CoordOf(id string) (Coord, bool) {
	c, ok := g.coords[id]
	return c, ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges (each pair counted once).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, row := range g.adj {
		n += len(row)
	}
	return n / 2
}

// Edges returns every undirected edge exactly once as (a, b, cost) with
// a < b, sorted by (a, b). The deterministic order keeps downstream
// consumers (MST, serialization, rendering) reproducible.
func (g *Graph) Edges() []EdgePair {
	var out []EdgePair
	for u, row := range g.adj {
		for v, cost := range row {
			if u < v {
				out = append(out, EdgePair{A: u, B: v, Cost: cost})
			}
		}
	}
	slices.SortFunc(out, func(x, y EdgePair) int {
		if x.A != y.A {
			if x.A < y.A {
				return -1
			}
			return 1
		}
		if x.B != y.B {
			if x.B < y.B {
				return -1
			}
			return 1
		}
		return 0
	})
	return out
}

// EdgePair is a full undirected edge with both endpoints, as returned by
// [Graph.Edges]. A < B always holds.
type EdgePair struct {
	A, B string
	Cost float64
}

// Clone returns a deep copy of the graph, including heuristic and
// coordinate tables. Useful when a caller wants to mutate a dataset graph
// without touching the shared original.
func (g *Graph) Clone() *Graph {
	c := New()
	for u, row := range g.adj {
		c.adj[u] = maps.Clone(row)
	}
	c.heur = maps.Clone(g.heur)
	c.coords = maps.Clone(g.coords)
	return c
}
