package graph

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// File couples a graph with the metadata stored alongside it on disk:
// a display name and the default start/goal endpoints for searches.
type File struct {
	Name  string
	Start string
	Goal  string
	Graph *Graph
}

// MarshalGraph converts a graph file to TOML bytes.
// Edges are sorted for deterministic output.
func MarshalGraph(f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a graph file as TOML.
// The file is created with 0644 permissions.
func WriteGraphFile(f *File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return writeGraphTo(f, out)
}

// WriteGraph writes a graph file as TOML to an io.Writer.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph(f *File, w io.Writer) error {
	return writeGraphTo(f, w)
}

// ReadGraphFile reads a TOML graph file from disk.
// Returns validation errors (negative weights, empty node IDs) from the
// underlying graph construction.
func ReadGraphFile(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()
	return readGraphFrom(in)
}

// ReadGraph decodes a TOML graph from an io.Reader.
// Use ReadGraphFile for files or pass bytes.NewReader for in-memory data.
func ReadGraph(r io.Reader) (*File, error) {
	return readGraphFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

// tomlDoc is the on-disk shape:
//
//	[graph]
//	name = "poland"
//	start = "Glogow"
//	goal = "Plock"
//
//	[[edge]]
//	a = "Glogow"
//	b = "Leszno"
//	cost = 45.0
//
//	[heuristic]
//	Glogow = 200.0
//
//	[coord]
//	Glogow = [0.5, 5.0]
type tomlDoc struct {
	Graph     tomlHeader            `toml:"graph"`
	Edges     []tomlEdge            `toml:"edge"`
	Heuristic map[string]float64    `toml:"heuristic,omitempty"`
	Coord     map[string][2]float64 `toml:"coord,omitempty"`
}

type tomlHeader struct {
	Name  string `toml:"name,omitempty"`
	Start string `toml:"start,omitempty"`
	Goal  string `toml:"goal,omitempty"`
}

type tomlEdge struct {
	A    string  `toml:"a"`
	B    string  `toml:"b"`
	Cost float64 `toml:"cost"`
}

func writeGraphTo(f *File, w io.Writer) error {
	doc := tomlDoc{
		Graph: tomlHeader{Name: f.Name, Start: f.Start, Goal: f.Goal},
	}
	for _, e := range f.Graph.Edges() {
		doc.Edges = append(doc.Edges, tomlEdge{A: e.A, B: e.B, Cost: e.Cost})
	}
	for _, id := range f.Graph.Nodes() {
		if h := f.Graph.Heuristic(id); h != 0 {
			if doc.Heuristic == nil {
				doc.Heuristic = make(map[string]float64)
			}
			doc.Heuristic[id] = h
		}
		if c, ok := f.Graph.CoordOf(id); ok {
			if doc.Coord == nil {
				doc.Coord = make(map[string][2]float64)
			}
			doc.Coord[id] = [2]float64{c.X, c.Y}
		}
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*File, error) {
	var doc tomlDoc
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := New()
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.A, e.B, e.Cost); err != nil {
			return nil, fmt.Errorf("edge %s—%s: %w", e.A, e.B, err)
		}
	}
	for id, h := range doc.Heuristic {
		if err := g.SetHeuristic(id, h); err != nil {
			return nil, fmt.Errorf("heuristic %s: %w", id, err)
		}
	}
	for id, xy := range doc.Coord {
		if err := g.SetCoord(id, Coord{X: xy[0], Y: xy[1]}); err != nil {
			return nil, fmt.Errorf("coord %s: %w", id, err)
		}
	}

	return &File{
		Name:  doc.Graph.Name,
		Start: doc.Graph.Start,
		Goal:  doc.Graph.Goal,
		Graph: g,
	}, nil
}
