package main

import (
	"fmt"
	"os"

	"expectimax/engine"
	"expectimax/game"
	"expectimax/searcher"
	"expectimax/tictactoe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	runSelfPlay()
}

// runSelfPlay pits two full-depth searchers against each other from the
// empty board and prints the game as it unfolds.
func runSelfPlay() {
	fmt.Println("Tic-tac-toe self-play, depth 9 lookahead for both players:")

	agent := searcher.New(searcher.WithDepth[string, int](9))
	agents := map[string]engine.Agent[string, int]{
		tictactoe.X: agent,
		tictactoe.O: agent,
	}

	observer := func(state game.State[string, int], action int) {
		fmt.Printf("\n%v plays cell %d:\n%v\n", opponentOf(state.Turn()), action, state)
	}

	e, err := engine.NewLocal(tictactoe.New(), agents, engine.WithObserver(observer))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	winner, plies, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	fmt.Printf("\nResult after %d plies: %v\n", plies, winner)
}

func opponentOf(player string) string {
	if player == tictactoe.X {
		return tictactoe.O
	}
	return tictactoe.X
}
