// Package anneal approximates travelling-salesman tours with simulated
// annealing. A run perturbs a random starting tour with swap and
// segment-reversal moves, accepts uphill moves with the Metropolis
// criterion, and cools the temperature until it drops below a floor.
package anneal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

var (
	// ErrTooFewPlaces indicates an input with fewer than three places,
	// for which no non-degenerate tour exists.
	ErrTooFewPlaces = errors.New("anneal: need at least three places")

	// ErrUnknownCooling indicates an unrecognized cooling schedule name.
	ErrUnknownCooling = errors.New("anneal: unknown cooling schedule")

	// ErrOptionViolation indicates an option constructed with an
	// invalid value.
	ErrOptionViolation = errors.New("anneal: option violation")
)

// Place is a named point on the plane.
type Place struct {
	Name string
	X, Y float64
}

// Cooling selects how the temperature decays between iterations.
type Cooling int

const (
	// Exponential multiplies the temperature by Alpha each iteration.
	Exponential Cooling = iota
	// Linear subtracts Beta from the temperature each iteration.
	Linear
)

func (c Cooling) String() string {
	switch c {
	case Exponential:
		return "exponential"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("cooling(%d)", int(c))
	}
}

// ParseCooling maps a schedule name to its Cooling value. Names are
// case-insensitive and surrounding whitespace is ignored.
func ParseCooling(s string) (Cooling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exponential", "exp":
		return Exponential, nil
	case "linear", "lin":
		return Linear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCooling, s)
	}
}

// Options bundles the tunable parameters of a run.
type Options struct {
	Cooling     Cooling
	InitialTemp float64
	MinTemp     float64
	Alpha       float64 // exponential decay factor
	Beta        float64 // linear decay step
	Seed        int64
	seeded      bool
	err         error
}

// DefaultOptions returns the parameters every run starts from:
// exponential cooling from 1000 down to 1e-3 with alpha 0.995, and a
// linear step of 0.5 when Linear is selected.
func DefaultOptions() Options {
	return Options{
		Cooling:     Exponential,
		InitialTemp: 1000,
		MinTemp:     1e-3,
		Alpha:       0.995,
		Beta:        0.5,
	}
}

// Option mutates Options. Invalid values are recorded and surface as an
// ErrOptionViolation from Solve.
type Option func(*Options)

// WithCooling selects the cooling schedule.
func WithCooling(c Cooling) Option {
	return func(o *Options) {
		if c != Exponential && c != Linear {
			o.err = fmt.Errorf("%w: cooling %d", ErrOptionViolation, int(c))
			return
		}
		o.Cooling = c
	}
}

// WithSeed fixes the random source, making the run reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seeded = true
	}
}

// WithSchedule overrides the temperature range. Both bounds must be
// positive and the initial temperature must exceed the floor.
func WithSchedule(initial, min float64) Option {
	return func(o *Options) {
		if min <= 0 || initial <= min {
			o.err = fmt.Errorf("%w: schedule %g..%g", ErrOptionViolation, initial, min)
			return
		}
		o.InitialTemp = initial
		o.MinTemp = min
	}
}

// WithAlpha overrides the exponential decay factor, which must lie
// strictly between 0 and 1.
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if alpha <= 0 || alpha >= 1 {
			o.err = fmt.Errorf("%w: alpha %g", ErrOptionViolation, alpha)
			return
		}
		o.Alpha = alpha
	}
}

// WithBeta overrides the linear decay step, which must be positive.
func WithBeta(beta float64) Option {
	return func(o *Options) {
		if beta <= 0 {
			o.err = fmt.Errorf("%w: beta %g", ErrOptionViolation, beta)
			return
		}
		o.Beta = beta
	}
}

// Result is the outcome of a run. Tour is closed: it starts and ends
// at the same place.
type Result struct {
	Tour       []string
	Cost       float64
	Iterations int
	Cooling    Cooling
}

// Solve anneals a tour over the given places and returns the best one
// seen across the whole run.
func Solve(places []Place, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(places) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlaces, len(places))
	}

	var rng *rand.Rand
	if o.seeded {
		rng = rand.New(rand.NewSource(o.Seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	n := len(places)
	current := rng.Perm(n)
	currentCost := tourCost(current, places)

	best := append([]int(nil), current...)
	bestCost := currentCost

	temp := o.InitialTemp
	iterations := 0
	next := make([]int, n)

	for temp > o.MinTemp {
		copy(next, current)
		if rng.Float64() < 0.5 {
			swapMove(next, rng)
		} else {
			reverseMove(next, rng)
		}

		nextCost := tourCost(next, places)
		delta := nextCost - currentCost

		if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
			current, next = next, current
			currentCost = nextCost
			if currentCost < bestCost {
				copy(best, current)
				bestCost = currentCost
			}
		}

		iterations++
		switch o.Cooling {
		case Linear:
			temp -= o.Beta
		default:
			temp *= o.Alpha
		}
	}

	tour := make([]string, 0, n+1)
	for _, i := range best {
		tour = append(tour, places[i].Name)
	}
	tour = append(tour, places[best[0]].Name)

	return &Result{
		Tour:       tour,
		Cost:       bestCost,
		Iterations: iterations,
		Cooling:    o.Cooling,
	}, nil
}

// TourCost returns the length of the closed tour visiting the places
// in the given order.
func TourCost(places []Place) float64 {
	order := make([]int, len(places))
	for i := range order {
		order[i] = i
	}
	return tourCost(order, places)
}

func tourCost(order []int, places []Place) float64 {
	var total float64
	for i := range order {
		a := places[order[i]]
		b := places[order[(i+1)%len(order)]]
		total += math.Hypot(a.X-b.X, a.Y-b.Y)
	}
	return total
}

// swapMove exchanges two distinct positions in the tour.
func swapMove(order []int, rng *rand.Rand) {
	a := rng.Intn(len(order))
	b := rng.Intn(len(order) - 1)
	if b >= a {
		b++
	}
	order[a], order[b] = order[b], order[a]
}

// reverseMove reverses a random segment of the tour (a 2-opt step).
func reverseMove(order []int, rng *rand.Rand) {
	a := rng.Intn(len(order))
	b := rng.Intn(len(order) - 1)
	if b >= a {
		b++
	}
	if a > b {
		a, b = b, a
	}
	for a < b {
		order[a], order[b] = order[b], order[a]
		a++
		b--
	}
}
