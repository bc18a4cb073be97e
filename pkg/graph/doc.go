// Package graph provides the weighted undirected graph model shared by all
// search strategies, plus its TOML serialization.
//
// A [Graph] owns three tables: the symmetric adjacency relation, an optional
// heuristic table (estimated remaining cost to a fixed goal, consumed by A*),
// and optional 2-D node coordinates (consumed by tour planning and
// rendering). Adjacency is always symmetric: adding an edge writes both
// directions with the same cost.
//
// Determinism is a design goal: [Graph.Neighbors] returns entries sorted by
// neighbor ID and [Graph.Edges] returns each undirected edge once in sorted
// order, so every traversal and serialization of the same graph is
// byte-for-byte reproducible.
//
// # Construction
//
//	g := graph.New()
//	_ = g.AddEdge("Glogow", "Leszno", 45)
//	_ = g.AddEdge("Glogow", "Wroclaw", 140)
//	_ = g.SetHeuristic("Glogow", 200)
//
// Costs must be non-negative; AddEdge rejects negative weights with
// [ErrNegativeWeight] before any state is modified.
//
// # Files
//
// Graphs round-trip through a small TOML format (see [ReadGraphFile] and
// [WriteGraphFile]) carrying edges, the heuristic table, coordinates, and
// default start/goal endpoints.
package graph
