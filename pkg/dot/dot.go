// Package dot renders graphs to Graphviz DOT and SVG. A search path
// can be highlighted on top of the base graph, mirroring the styling
// of the CLI output: start in blue, goal in red, intermediate path
// nodes in violet.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mkowalik/wayfind/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Highlight is a node path to emphasize. Its first and last
	// elements are styled as start and goal.
	Highlight []string
	// Heuristics appends h= annotations to node labels.
	Heuristics bool
}

// ToDOT converts a graph to Graphviz DOT. Nodes and edges are emitted
// in sorted order so the output is deterministic. When the graph
// carries coordinates they are pinned and the neato layout engine is
// selected.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	if hasCoords(g) {
		buf.WriteString("  layout=neato;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10, fontcolor=grey40];\n")
	buf.WriteString("\n")

	hl := highlightIndex(opts.Highlight)
	for _, id := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(nodeAttrs(g, id, hl, opts), ", "))
	}

	buf.WriteString("\n")
	onPath := pathEdges(opts.Highlight)
	for _, e := range g.Edges() {
		attrs := []string{fmt.Sprintf("label=%q", trimFloat(e.Cost))}
		if onPath[edgeKey(e.A, e.B)] {
			attrs = append(attrs, "color=purple", "penwidth=3")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.A, e.B, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(g *graph.Graph, id string, hl map[string]int, opts Options) []string {
	label := id
	if opts.Heuristics {
		label = fmt.Sprintf("%s\nh=%s", id, trimFloat(g.Heuristic(id)))
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}

	if pos, ok := hl[id]; ok {
		switch {
		case pos == 0:
			attrs = append(attrs, "fillcolor=lightblue")
		case pos == len(hl)-1:
			attrs = append(attrs, "fillcolor=salmon")
		default:
			attrs = append(attrs, "fillcolor=violet")
		}
	}
	if c, ok := g.CoordOf(id); ok {
		attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", trimFloat(c.X), trimFloat(c.Y)))
	}
	return attrs
}

func hasCoords(g *graph.Graph) bool {
	for _, id := range g.Nodes() {
		if _, ok := g.CoordOf(id); ok {
			return true
		}
	}
	return false
}

// highlightIndex maps each path node to its position; the last
// occurrence wins, which is what start/goal styling needs when the
// path is a single node.
func highlightIndex(path []string) map[string]int {
	idx := make(map[string]int, len(path))
	for i, id := range path {
		idx[id] = i
	}
	return idx
}

func pathEdges(path []string) map[string]bool {
	on := make(map[string]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		on[edgeKey(path[i], path[i+1])] = true
	}
	return on
}

func edgeKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

// trimFloat formats a weight without a trailing ".0" for whole values.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the outer <svg> tag so the viewBox starts
// at the origin and the width/height match it, which makes the output
// scale cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
