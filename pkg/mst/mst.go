// Package mst computes minimum spanning trees with Kruskal's
// algorithm. On a disconnected graph the result is the minimum
// spanning forest, one tree per component.
package mst

import (
	"errors"
	"sort"

	"github.com/mkowalik/wayfind/pkg/graph"
)

// ErrNilGraph indicates a nil graph argument.
var ErrNilGraph = errors.New("mst: nil graph")

// Result holds the chosen edges in selection order along with their
// total weight. Trees counts the components of the forest.
type Result struct {
	Edges  []graph.EdgePair
	Weight float64
	Trees  int
}

// Spanning reports whether the result is a single tree covering the
// whole graph.
func (r *Result) Spanning() bool {
	return r.Trees <= 1
}

// Kruskal builds a minimum spanning forest. Edges are considered in
// ascending cost order with ties broken by endpoint IDs, so the result
// is deterministic.
func Kruskal(g *graph.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Cost < edges[j].Cost
	})

	uf := newUnionFind(g.Nodes())
	res := &Result{}
	for _, e := range edges {
		if uf.union(e.A, e.B) {
			res.Edges = append(res.Edges, e)
			res.Weight += e.Cost
		}
	}
	res.Trees = uf.sets
	return res, nil
}

// unionFind is a disjoint-set forest with union by rank and path
// halving.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
	sets   int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
		sets:   len(ids),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(id string) string {
	for uf.parent[id] != id {
		uf.parent[id] = uf.parent[uf.parent[id]]
		id = uf.parent[id]
	}
	return id
}

// union merges the sets of a and b, reporting whether they were
// previously disjoint.
func (uf *unionFind) union(a, b string) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	uf.sets--
	return true
}
