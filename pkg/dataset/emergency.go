package dataset

import (
	"fmt"
	"strconv"

	"github.com/mkowalik/wayfind/pkg/graph"
)

// emergency builds a small emergency-response road network with numeric
// station IDs. It carries no heuristic table, which makes it a good
// fixture for uninformed searches and spanning-tree runs.
func emergency() *graph.File {
	g := graph.New()

	edges := []struct {
		a, b int
		cost float64
	}{
		{0, 1, 4},
		{0, 2, 2},
		{1, 2, 1},
		{1, 3, 5},
		{2, 3, 8},
		{2, 4, 10},
		{3, 4, 2},
		{3, 5, 6},
		{4, 5, 3},
		{5, 6, 1},
		{6, 7, 4},
		{4, 7, 7},
	}
	for _, e := range edges {
		mustEdge(g, strconv.Itoa(e.a), strconv.Itoa(e.b), e.cost)
	}

	return &graph.File{
		Name:  "emergency",
		Start: "0",
		Goal:  "7",
		Graph: g,
	}
}

// The must helpers back the hardcoded builders, where construction
// errors can only come from a typo in the data itself.

func mustEdge(g *graph.Graph, a, b string, cost float64) {
	if err := g.AddEdge(a, b, cost); err != nil {
		panic(fmt.Sprintf("dataset: bad edge %s—%s: %v", a, b, err))
	}
}

func mustHeuristic(g *graph.Graph, id string, h float64) {
	if err := g.SetHeuristic(id, h); err != nil {
		panic(fmt.Sprintf("dataset: bad heuristic %s: %v", id, err))
	}
}

func mustCoord(g *graph.Graph, id string, c graph.Coord) {
	if err := g.SetCoord(id, c); err != nil {
		panic(fmt.Sprintf("dataset: bad coord %s: %v", id, err))
	}
}
