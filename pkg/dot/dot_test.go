package dot_test

import (
	"strings"
	"testing"

	"github.com/mkowalik/wayfind/pkg/dot"
	"github.com/mkowalik/wayfind/pkg/graph"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range []struct {
		a, b string
		cost float64
	}{
		{"A", "B", 1},
		{"B", "C", 2.5},
		{"A", "C", 10},
	} {
		if err := g.AddEdge(e.a, e.b, e.cost); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e.a, e.b, err)
		}
	}
	return g
}

func TestToDOTBasic(t *testing.T) {
	out := dot.ToDOT(triangle(t), dot.Options{})

	if !strings.HasPrefix(out, "graph G {") {
		t.Errorf("expected undirected graph header, got %q", firstLine(out))
	}
	if strings.Contains(out, "->") {
		t.Error("undirected output must not contain directed edges")
	}
	for _, want := range []string{
		`"A" -- "B" [label="1"]`,
		`"B" -- "C" [label="2.5"]`,
		`"A" -- "C" [label="10"]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "layout=neato") {
		t.Error("no coordinates, so no neato layout")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	first := dot.ToDOT(triangle(t), dot.Options{})
	second := dot.ToDOT(triangle(t), dot.Options{})
	if first != second {
		t.Error("output differs between runs")
	}
}

func TestToDOTHighlight(t *testing.T) {
	out := dot.ToDOT(triangle(t), dot.Options{Highlight: []string{"A", "B", "C"}})

	for _, want := range []string{
		`"A" [label="A", fillcolor=lightblue]`,
		`"B" [label="B", fillcolor=violet]`,
		`"C" [label="C", fillcolor=salmon]`,
		`"A" -- "B" [label="1", color=purple, penwidth=3]`,
		`"B" -- "C" [label="2.5", color=purple, penwidth=3]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"A" -- "C" [label="10", color=purple`) {
		t.Error("off-path edge must not be highlighted")
	}
}

func TestToDOTHeuristics(t *testing.T) {
	g := triangle(t)
	if err := g.SetHeuristic("A", 3); err != nil {
		t.Fatalf("SetHeuristic: %v", err)
	}

	out := dot.ToDOT(g, dot.Options{Heuristics: true})
	if !strings.Contains(out, `label="A\nh=3"`) {
		t.Errorf("missing heuristic annotation:\n%s", out)
	}
	if !strings.Contains(out, `label="B\nh=0"`) {
		t.Errorf("nodes without a heuristic entry default to 0:\n%s", out)
	}
}

func TestToDOTCoordinates(t *testing.T) {
	g := triangle(t)
	if err := g.SetCoord("A", graph.Coord{X: 0.5, Y: 5}); err != nil {
		t.Fatalf("SetCoord: %v", err)
	}

	out := dot.ToDOT(g, dot.Options{})
	if !strings.Contains(out, "layout=neato") {
		t.Error("coordinates should select the neato layout")
	}
	if !strings.Contains(out, `pos="0.5,5!"`) {
		t.Errorf("missing pinned position:\n%s", out)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
