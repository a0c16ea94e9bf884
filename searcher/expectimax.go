package searcher

import (
	"errors"
	"fmt"

	"expectimax/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// DefaultDepth is the lookahead used when no depth option is given.
const DefaultDepth = 3

// MaxDepth caps the recursion against pathological depth requests.
const MaxDepth = 64

var (
	ErrGameOver  = errors.New("game is already over")
	ErrNoActions = errors.New("no actions available")
)

type Option[P comparable, A any] func(e *Expectimax[P, A])

func WithDepth[P comparable, A any](depth int) Option[P, A] {
	return func(e *Expectimax[P, A]) {
		if depth > 0 {
			e.depth = min(depth, MaxDepth)
		}
	}
}

func WithRand[P comparable, A any](rng *rand.Rand) Option[P, A] {
	return func(e *Expectimax[P, A]) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithMetrics[P comparable, A any]() Option[P, A] {
	return func(e *Expectimax[P, A]) {
		e.metrics = NewMetricsCollector()
	}
}

// Expectimax is a bounded-depth expectiminimax searcher: full-width
// recursive evaluation with expected-value averaging over stochastic
// branches. No pruning, no memoization; cost is branching^depth.
type Expectimax[P comparable, A any] struct {
	depth   int
	rng     *rand.Rand
	metrics MetricsCollector
}

func New[P comparable, A any](options ...Option[P, A]) *Expectimax[P, A] {
	e := &Expectimax[P, A]{
		depth:   DefaultDepth,
		rng:     rand.New(rand.NewSource(rand.Uint64())),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// FindAction returns the action maximizing the mover's expected evaluation
// under the configured lookahead. Fails with ErrGameOver on a terminal
// state and ErrNoActions when the state offers nothing to choose from.
func (e *Expectimax[P, A]) FindAction(state game.State[P, A]) (A, error) {
	var none A
	if state.Winner() != nil {
		return none, ErrGameOver
	}

	e.metrics.Start()
	evaluation, action, ok := evaluate(state, e.depth, e.metrics)
	metric := e.metrics.Complete()
	if !ok {
		return none, ErrNoActions
	}

	log.Debug().
		Interface("action", action).
		Float64("value", evaluation[state.Turn()]).
		Int64("expanded", metric.Expanded).
		Int64("leaves", metric.Leaves).
		Dur("duration", metric.Duration).
		Msg("found best action")
	return action, nil
}

// Move executes one stochastic step: it draws a single next state from the
// action's outcome distribution, weighted by probability. This is the
// searcher's only source of randomness; malformed distributions fail fast.
func (e *Expectimax[P, A]) Move(state game.State[P, A], action A) (game.State[P, A], error) {
	dist := state.Transition(action)
	if err := dist.Validate(); err != nil {
		return nil, fmt.Errorf("transition for action %v: %w", action, err)
	}

	draw := e.rng.Float64()
	for _, outcome := range dist {
		draw -= outcome.Prob
		if draw < 0 {
			return outcome.State, nil
		}
	}
	// Rounding may leave a sliver beyond the last cumulative bound
	return dist[len(dist)-1].State, nil
}

// Evaluate runs the expectiminimax recursion: the expected evaluation
// vector of the best line of play and the action starting it. Depth counts
// plies; at depth 0 or on a concluded game it returns the state's own
// static evaluation and no action (ok is false).
func Evaluate[P comparable, A any](state game.State[P, A], depth int) (game.Evaluation[P], A, bool) {
	return evaluate(state, min(depth, MaxDepth), NewDummyCollector())
}

func evaluate[P comparable, A any](state game.State[P, A], depth int, metrics MetricsCollector) (game.Evaluation[P], A, bool) {
	var none A
	if depth <= 0 || state.Winner() != nil {
		metrics.AddLeaf()
		return state.Evaluate(), none, false
	}
	metrics.AddExpansion()

	mover := state.Turn()
	var best game.Evaluation[P]
	var bestAction A
	found := false

	for _, action := range state.Actions() {
		expected := game.Evaluation[P]{}
		for _, outcome := range state.Transition(action) {
			evaluation, _, _ := evaluate(outcome.State, depth-1, metrics)
			for player, value := range evaluation {
				expected[player] += outcome.Prob * value
			}
		}

		// First-seen-max: later actions with an equal value do not displace
		// an earlier pick, keeping the selection deterministic.
		if !found || expected[mover] > best[mover] {
			best = expected
			bestAction = action
			found = true
		}
	}

	if !found {
		return state.Evaluate(), none, false
	}
	return best, bestAction, true
}
