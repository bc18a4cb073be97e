package anneal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalik/wayfind/pkg/anneal"
)

func unitSquare() []anneal.Place {
	return []anneal.Place{
		{Name: "a", X: 0, Y: 0},
		{Name: "b", X: 1, Y: 0},
		{Name: "c", X: 1, Y: 1},
		{Name: "d", X: 0, Y: 1},
	}
}

func TestSolveTourShape(t *testing.T) {
	places := unitSquare()
	res, err := anneal.Solve(places, anneal.WithSeed(1))
	require.NoError(t, err)

	require.Len(t, res.Tour, len(places)+1)
	assert.Equal(t, res.Tour[0], res.Tour[len(res.Tour)-1], "tour must be closed")

	seen := map[string]int{}
	for _, name := range res.Tour[:len(res.Tour)-1] {
		seen[name]++
	}
	for _, p := range places {
		assert.Equal(t, 1, seen[p.Name], "each place visited exactly once")
	}
}

func TestSolveFindsSquarePerimeter(t *testing.T) {
	// Four corners of the unit square have only three distinct tours;
	// the run has thousands of iterations to land on the perimeter.
	res, err := anneal.Solve(unitSquare(), anneal.WithSeed(7))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
}

func TestSolveDeterministicWithSeed(t *testing.T) {
	places := unitSquare()
	first, err := anneal.Solve(places, anneal.WithSeed(42))
	require.NoError(t, err)
	second, err := anneal.Solve(places, anneal.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, first.Tour, second.Tour)
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Iterations, second.Iterations)
}

func TestSolveLinearCooling(t *testing.T) {
	res, err := anneal.Solve(unitSquare(),
		anneal.WithSeed(3),
		anneal.WithCooling(anneal.Linear),
	)
	require.NoError(t, err)
	assert.Equal(t, anneal.Linear, res.Cooling)
	// 1000 cooled by 0.5 per step crosses 1e-3 after 2000 iterations.
	assert.Equal(t, 2000, res.Iterations)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
}

func TestSolveTooFewPlaces(t *testing.T) {
	_, err := anneal.Solve(nil)
	assert.ErrorIs(t, err, anneal.ErrTooFewPlaces)

	_, err = anneal.Solve(unitSquare()[:2])
	assert.ErrorIs(t, err, anneal.ErrTooFewPlaces)
}

func TestSolveOptionViolations(t *testing.T) {
	tests := []struct {
		name string
		opt  anneal.Option
	}{
		{"alpha too big", anneal.WithAlpha(1)},
		{"alpha negative", anneal.WithAlpha(-0.5)},
		{"beta zero", anneal.WithBeta(0)},
		{"inverted schedule", anneal.WithSchedule(1, 10)},
		{"bogus cooling", anneal.WithCooling(anneal.Cooling(9))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := anneal.Solve(unitSquare(), tt.opt)
			assert.ErrorIs(t, err, anneal.ErrOptionViolation)
		})
	}
}

func TestParseCooling(t *testing.T) {
	tests := []struct {
		in   string
		want anneal.Cooling
		ok   bool
	}{
		{"exponential", anneal.Exponential, true},
		{"EXP", anneal.Exponential, true},
		{" linear ", anneal.Linear, true},
		{"lin", anneal.Linear, true},
		{"quadratic", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := anneal.ParseCooling(tt.in)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got)
		} else {
			assert.ErrorIs(t, err, anneal.ErrUnknownCooling, "input %q", tt.in)
		}
	}
}

func TestTourCost(t *testing.T) {
	assert.InDelta(t, 4.0, anneal.TourCost(unitSquare()), 1e-9)

	// Diagonal ordering is longer than the perimeter.
	p := unitSquare()
	p[1], p[2] = p[2], p[1]
	assert.InDelta(t, 2+2*math.Sqrt2, anneal.TourCost(p), 1e-9)
}
