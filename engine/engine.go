package engine

import "expectimax/game"

// MaxMoves caps a run so a broken game implementation cannot loop forever.
const MaxMoves = 10000

// Agent picks and executes actions for one player.
type Agent[P comparable, A any] interface {
	FindAction(state game.State[P, A]) (A, error)
	Move(state game.State[P, A], action A) (game.State[P, A], error)
}

// Engine runs a game until a winner is found or a move cap is reached.
type Engine interface {
	Run() (winner any, plies int, err error)
}
