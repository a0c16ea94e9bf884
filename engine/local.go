package engine

import (
	"fmt"

	"expectimax/game"

	"github.com/rs/zerolog/log"
)

type Option[P comparable, A any] func(l *Local[P, A])

func WithMaxMoves[P comparable, A any](moves int) Option[P, A] {
	return func(l *Local[P, A]) {
		if moves > 0 {
			l.maxMoves = moves
		}
	}
}

// WithObserver registers a callback invoked after every executed action
// with the resulting state.
func WithObserver[P comparable, A any](observer func(state game.State[P, A], action A)) Option[P, A] {
	return func(l *Local[P, A]) {
		l.observer = observer
	}
}

// Local drives a game in-process: it repeatedly checks the winner, asks the
// acting player's agent for an action, and executes it stochastically.
type Local[P comparable, A any] struct {
	state    game.State[P, A]
	agents   map[P]Agent[P, A]
	maxMoves int
	observer func(game.State[P, A], A)
}

func NewLocal[P comparable, A any](state game.State[P, A], agents map[P]Agent[P, A], options ...Option[P, A]) (*Local[P, A], error) {
	players := state.Players()
	if len(players) < 2 {
		return nil, fmt.Errorf("need at least two players, got %d", len(players))
	}
	for _, player := range players {
		if _, ok := agents[player]; !ok {
			return nil, fmt.Errorf("no agent for player %v", player)
		}
	}

	l := &Local[P, A]{
		state:    state,
		agents:   agents,
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(l)
	}
	return l, nil
}

// Run executes the game loop until the game concludes and returns the
// winner marker. It errors if an agent fails or the move cap is hit first.
func (l *Local[P, A]) Run() (any, int, error) {
	plies := 0
	for l.state.Winner() == nil {
		if plies >= l.maxMoves {
			return nil, plies, fmt.Errorf("no winner after %d plies", plies)
		}

		player := l.state.Turn()
		agent := l.agents[player]

		action, err := agent.FindAction(l.state)
		if err != nil {
			return nil, plies, fmt.Errorf("player %v find action: %w", player, err)
		}
		next, err := agent.Move(l.state, action)
		if err != nil {
			return nil, plies, fmt.Errorf("player %v move: %w", player, err)
		}

		plies++
		log.Info().
			Interface("player", player).
			Interface("action", action).
			Int("ply", plies).
			Msg("played")

		l.state = next
		if l.observer != nil {
			l.observer(next, action)
		}
	}

	winner := l.state.Winner()
	log.Info().Interface("winner", winner).Int("plies", plies).Msg("game over")
	return winner, plies, nil
}

// State returns the current position.
func (l *Local[P, A]) State() game.State[P, A] {
	return l.state
}
