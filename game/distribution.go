package game

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance bounds how far a distribution's probabilities may drift from
// summing to exactly 1.
const Tolerance = 1e-9

var (
	ErrEmptyDistribution = errors.New("empty outcome distribution")
	ErrBadDistribution   = errors.New("malformed outcome distribution")
)

// Outcome is one possible next state and its probability.
type Outcome[P comparable, A any] struct {
	State State[P, A]
	Prob  float64
}

// Distribution is the ordered set of possible next states resulting from
// one action. Probabilities are non-negative and sum to 1.
type Distribution[P comparable, A any] []Outcome[P, A]

// Uniform builds a distribution assigning each given state an equal 1/n
// probability, preserving input order. With a single state this is the
// deterministic transition.
func Uniform[P comparable, A any](states ...State[P, A]) Distribution[P, A] {
	if len(states) == 0 {
		return nil
	}

	prob := 1 / float64(len(states))
	dist := make(Distribution[P, A], len(states))
	for i, state := range states {
		dist[i] = Outcome[P, A]{State: state, Prob: prob}
	}
	return dist
}

// Validate reports whether the distribution is non-empty with non-negative
// probabilities summing to 1 within Tolerance.
func (d Distribution[P, A]) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDistribution
	}

	total := 0.0
	for _, outcome := range d {
		if outcome.Prob < 0 {
			return fmt.Errorf("%w: negative probability %g", ErrBadDistribution, outcome.Prob)
		}
		total += outcome.Prob
	}
	if math.Abs(total-1) > Tolerance {
		return fmt.Errorf("%w: probabilities sum to %g", ErrBadDistribution, total)
	}
	return nil
}
