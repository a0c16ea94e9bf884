package game

// State is the capability set a playable game state must implement to be
// searchable. P identifies a player and must support equality; A is the
// game-defined action type. States should be immutable - transitions always
// return new values - and every method must be deterministic given the
// receiver.
type State[P comparable, A any] interface {
	// Players returns all players of the game, in a fixed order. The result
	// must not change across any sequence of transitions from a given
	// initial state. Eliminated players stay in the list; represent their
	// loss through a dominated evaluation instead.
	Players() []P

	// Turn returns the player taking the next action. Must be one of
	// Players(). Unused on terminal states.
	Turn() P

	// Actions returns the legal actions for the player to move. Every
	// returned action must have at least one next state under Transition.
	Actions() []A

	// Transition maps an action returned by Actions to the probability
	// distribution of next states. Passing any other action is a contract
	// violation.
	Transition(action A) Distribution[P, A]

	// Winner returns nil while the game is ongoing and any non-nil marker
	// once it has concluded: a winning player, a tie marker, or any other
	// sentinel. The search only nil-checks the result; ties must still
	// return a marker or the search will continue past the end of the game.
	Winner() any

	// Evaluate returns a heuristic evaluation for every player at the
	// current state, without searching future states. It is called once per
	// search leaf, so it should be cheap.
	Evaluate() Evaluation[P]
}

// Evaluation maps each player to a score. Higher is better for that player.
type Evaluation[P comparable] map[P]float64
