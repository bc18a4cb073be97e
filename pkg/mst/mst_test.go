package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalik/wayfind/pkg/dataset"
	"github.com/mkowalik/wayfind/pkg/graph"
	"github.com/mkowalik/wayfind/pkg/mst"
)

func TestKruskalNilGraph(t *testing.T) {
	_, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
}

func TestKruskalEmptyGraph(t *testing.T) {
	res, err := mst.Kruskal(graph.New())
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Equal(t, 0.0, res.Weight)
	assert.True(t, res.Spanning())
}

func TestKruskalEmergencyNetwork(t *testing.T) {
	f, err := dataset.Load("emergency")
	require.NoError(t, err)

	res, err := mst.Kruskal(f.Graph)
	require.NoError(t, err)

	assert.Len(t, res.Edges, f.Graph.NodeCount()-1)
	assert.Equal(t, 18.0, res.Weight)
	assert.Equal(t, 1, res.Trees)
	assert.True(t, res.Spanning())

	// Ascending cost with endpoint tie-break makes the selection order
	// deterministic.
	want := []graph.EdgePair{
		{A: "1", B: "2", Cost: 1},
		{A: "5", B: "6", Cost: 1},
		{A: "0", B: "2", Cost: 2},
		{A: "3", B: "4", Cost: 2},
		{A: "4", B: "5", Cost: 3},
		{A: "6", B: "7", Cost: 4},
		{A: "1", B: "3", Cost: 5},
	}
	assert.Equal(t, want, res.Edges)
}

func TestKruskalDisconnectedForest(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))
	require.NoError(t, g.AddEdge("x", "y", 3))
	require.NoError(t, g.AddNode("lonely"))

	res, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.Len(t, res.Edges, 3)
	assert.Equal(t, 6.0, res.Weight)
	assert.Equal(t, 3, res.Trees)
	assert.False(t, res.Spanning())
}

func TestKruskalSkipsHeavyCycleEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 1))
	require.NoError(t, g.AddEdge("a", "c", 100))

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Weight)
	assert.Len(t, res.Edges, 2)
}
