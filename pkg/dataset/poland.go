package dataset

import "github.com/mkowalik/wayfind/pkg/graph"

// poland builds the Polish intercity road network. Edge costs are road
// distances, heuristics are straight-line distances to Plock, and
// coordinates roughly follow the cities' map positions.
func poland() *graph.File {
	g := graph.New()

	edges := []struct {
		a, b string
		cost float64
	}{
		{"Glogow", "Leszno", 45},
		{"Glogow", "Wroclaw", 140},
		{"Leszno", "Poznan", 90},
		{"Leszno", "Wroclaw", 100},
		{"Leszno", "Kalisz", 140},
		{"Poznan", "Bydgoszcz", 140},
		{"Poznan", "Konin", 130},
		{"Bydgoszcz", "Wloclawek", 110},
		{"Bydgoszcz", "Konin", 120},
		{"Wloclawek", "Plock", 55},
		{"Konin", "Lodz", 120},
		{"Kalisz", "Lodz", 120},
		{"Kalisz", "Czestochowa", 160},
		{"Wroclaw", "Opole", 100},
		{"Opole", "Czestochowa", 118},
		{"Czestochowa", "Katowice", 80},
		{"Czestochowa", "Lodz", 128},
		{"Katowice", "Krakow", 85},
		{"Lodz", "Warsaw", 150},
		{"Lodz", "Radom", 165},
		{"Lodz", "Katowice", 280},
		{"Plock", "Warsaw", 130},
		{"Warsaw", "Radom", 105},
		{"Radom", "Kielce", 82},
		{"Kielce", "Krakow", 120},
	}
	for _, e := range edges {
		mustEdge(g, e.a, e.b, e.cost)
	}

	heuristic := map[string]float64{
		"Glogow":      200,
		"Leszno":      160,
		"Poznan":      108,
		"Bydgoszcz":   90,
		"Wroclaw":     180,
		"Opole":       170,
		"Kalisz":      128,
		"Konin":       96,
		"Wloclawek":   44,
		"Plock":       0,
		"Lodz":        118,
		"Czestochowa": 150,
		"Katowice":    180,
		"Krakow":      190,
		"Kielce":      160,
		"Radom":       130,
		"Warsaw":      95,
	}
	for id, h := range heuristic {
		mustHeuristic(g, id, h)
	}

	coords := map[string]graph.Coord{
		"Glogow":      {X: 0.5, Y: 5},
		"Leszno":      {X: 2, Y: 5},
		"Poznan":      {X: 2.5, Y: 7},
		"Bydgoszcz":   {X: 4, Y: 9},
		"Wroclaw":     {X: 2.5, Y: 3.5},
		"Opole":       {X: 3.5, Y: 1.5},
		"Kalisz":      {X: 4.5, Y: 5},
		"Konin":       {X: 5.5, Y: 7.5},
		"Wloclawek":   {X: 5.5, Y: 8.5},
		"Plock":       {X: 7, Y: 8.5},
		"Lodz":        {X: 6.5, Y: 5.5},
		"Czestochowa": {X: 5, Y: 3},
		"Katowice":    {X: 6, Y: 1},
		"Krakow":      {X: 8, Y: 1.5},
		"Kielce":      {X: 8.5, Y: 3},
		"Radom":       {X: 9, Y: 5},
		"Warsaw":      {X: 8.5, Y: 7},
	}
	for id, c := range coords {
		mustCoord(g, id, c)
	}

	return &graph.File{
		Name:  "poland",
		Start: "Glogow",
		Goal:  "Plock",
		Graph: g,
	}
}
