// Package interval implements the tile-shattering maximization solver, an
// interval dynamic program over a sequence of positive tile multipliers.
//
// The board is padded with a virtual multiplier of 1 at both ends. For the
// padded array arr of length n, the score of the open interval (l, r) is
//
//	score(l, r) = max over k in (l, r) of
//	              score(l, k) + score(k, r) + arr[l]*arr[k]*arr[r]
//
// with score(l, r) = 0 whenever r-l < 2 (no interior tile exists). The
// answer is score(0, n-1).
//
// Intervals are evaluated strictly by increasing length so that every
// sub-interval a larger interval depends on is already final. [SolveTable]
// exposes the fill order as a sequence of events for diagnostic display.
package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no tiles are supplied.
	ErrEmptyInput = errors.New("interval: tile sequence must be non-empty")

	// ErrNonPositiveTile is returned when a multiplier is zero or negative.
	ErrNonPositiveTile = errors.New("interval: tile multipliers must be positive")
)

// Event records one DP cell being finalized: the interval endpoints in the
// padded array and the best score found for it. Events are emitted in
// evaluation order (increasing interval length, then increasing left
// endpoint), replacing the hard-coded table printing of the original
// exercise.
type Event struct {
	Left  int
	Right int
	Score int64
}

// Table is the full outcome of a solve: the padded multiplier array, the
// finalized score matrix, and the ordered fill events.
type Table struct {
	// Arr is the padded array: 1, tiles..., 1.
	Arr []int64

	// Scores[l][r] is the best score for the open interval (l, r).
	Scores [][]int64

	// Events lists every interior cell in the order it was finalized.
	Events []Event
}

// Best returns the score of the full board, Scores[0][n-1].
func (t *Table) Best() int64 {
	n := len(t.Arr)
	return t.Scores[0][n-1]
}

// Solve returns the maximum achievable score for the tile sequence.
// The sequence must be non-empty and strictly positive.
func Solve(tiles []int) (int64, error) {
	tab, err := SolveTable(tiles)
	if err != nil {
		return 0, err
	}
	return tab.Best(), nil
}

// SolveTable runs the interval DP and returns the full table for callers
// that want to display or verify the fill order.
//
// Complexity: O(m³) time and O(m²) space for m tiles.
func SolveTable(tiles []int) (*Table, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyInput
	}
	for i, v := range tiles {
		if v <= 0 {
			return nil, fmt.Errorf("%w: tiles[%d] = %d", ErrNonPositiveTile, i, v)
		}
	}

	// Pad with boundary tiles of value 1.
	n := len(tiles) + 2
	arr := make([]int64, n)
	arr[0], arr[n-1] = 1, 1
	for i, v := range tiles {
		arr[i+1] = int64(v)
	}

	dp := make([][]int64, n)
	for i := range dp {
		dp[i] = make([]int64, n)
	}

	tab := &Table{Arr: arr, Scores: dp}

	// By increasing interval length: every (l, k) and (k, r) needed
	// below is shorter than (l, r) and therefore already final.
	for length := 2; length < n; length++ {
		for left := 0; left+length < n; left++ {
			right := left + length
			var best int64
			for k := left + 1; k < right; k++ {
				points := dp[left][k] + dp[k][right] + arr[left]*arr[k]*arr[right]
				if points > best {
					best = points
				}
			}
			dp[left][right] = best
			tab.Events = append(tab.Events, Event{Left: left, Right: right, Score: best})
		}
	}

	return tab, nil
}
