package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalik/wayfind/pkg/interval"
)

func TestSolveKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		tiles []int
		want  int64
	}{
		{"single tile", []int{5}, 5},
		{"two tiles", []int{1, 5}, 10},
		{"three tiles", []int{2, 4, 3}, 33},
		{"reference sequence", []int{3, 1, 5, 8}, 167},
		{"all ones", []int{1, 1, 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interval.Solve(tt.tiles)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolveInvalidInput(t *testing.T) {
	_, err := interval.Solve(nil)
	assert.ErrorIs(t, err, interval.ErrEmptyInput)

	_, err = interval.Solve([]int{})
	assert.ErrorIs(t, err, interval.ErrEmptyInput)

	_, err = interval.Solve([]int{3, 0, 5})
	assert.ErrorIs(t, err, interval.ErrNonPositiveTile)

	_, err = interval.Solve([]int{-2})
	assert.ErrorIs(t, err, interval.ErrNonPositiveTile)
}

func TestSolveTablePadding(t *testing.T) {
	tab, err := interval.SolveTable([]int{3, 1, 5, 8})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3, 1, 5, 8, 1}, tab.Arr)
	assert.Equal(t, int64(167), tab.Best())
	assert.Equal(t, tab.Best(), tab.Scores[0][len(tab.Arr)-1])
}

func TestFillOrderByIncreasingLength(t *testing.T) {
	tab, err := interval.SolveTable([]int{3, 1, 5, 8})
	require.NoError(t, err)

	// n = 6 padded cells: lengths 2..5 give 4+3+2+1 = 10 events.
	require.Len(t, tab.Events, 10)

	prevLen := 0
	for _, ev := range tab.Events {
		length := ev.Right - ev.Left
		assert.GreaterOrEqual(t, length, 2, "only intervals with interiors are filled")
		assert.GreaterOrEqual(t, length, prevLen, "fill order must be by increasing length")
		prevLen = length
		assert.Equal(t, tab.Scores[ev.Left][ev.Right], ev.Score)
	}

	// The final event is the full board.
	last := tab.Events[len(tab.Events)-1]
	assert.Equal(t, 0, last.Left)
	assert.Equal(t, len(tab.Arr)-1, last.Right)
	assert.Equal(t, int64(167), last.Score)
}

func TestSingleTileUsesBoundaries(t *testing.T) {
	// One tile: the only interval is (0, 2) and its score is the
	// product with both virtual boundary tiles.
	tab, err := interval.SolveTable([]int{7})
	require.NoError(t, err)
	require.Len(t, tab.Events, 1)
	assert.Equal(t, int64(7), tab.Best())
}
