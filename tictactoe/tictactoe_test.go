package tictactoe

import (
	"testing"

	"expectimax/game"
	"expectimax/searcher"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, board string) Game {
	t.Helper()
	g, err := FromBoard(board)
	require.NoError(t, err)
	return g
}

func TestFromBoard(t *testing.T) {
	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := FromBoard("xo")
		require.Error(t, err)
	})

	t.Run("rejects invalid marks", func(t *testing.T) {
		_, err := FromBoard("xo  z    ")
		require.Error(t, err)
	})

	t.Run("rejects unreachable mark counts", func(t *testing.T) {
		_, err := FromBoard("xxx      ")
		require.Error(t, err)
	})
}

func TestTurn(t *testing.T) {
	require.Equal(t, X, New().Turn(), "x moves first")
	require.Equal(t, O, mustBoard(t, "x        ").Turn())
	require.Equal(t, X, mustBoard(t, "x   o    ").Turn())
}

func TestActions(t *testing.T) {
	t.Run("empty board offers every cell", func(t *testing.T) {
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, New().Actions())
	})

	t.Run("occupied cells are excluded", func(t *testing.T) {
		g := mustBoard(t, "x   o   x")
		require.Equal(t, []int{1, 2, 3, 5, 6, 7}, g.Actions())
	})
}

func TestTransition(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		g := New()

		dist := g.Transition(4)

		require.Len(t, dist, 1)
		require.Equal(t, 1.0, dist[0].Prob)
		require.NoError(t, dist.Validate())
		require.Equal(t, "    x    ", dist[0].State.(Game).board)
	})

	t.Run("leaves the original state untouched", func(t *testing.T) {
		g := New()
		g.Transition(0)
		require.Equal(t, New(), g)
	})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		winner any
	}{
		{"ongoing game", "x   o    ", nil},
		{"x wins a row", "xxx oo   ", X},
		{"o wins a column", "xox o xo ", O},
		{"x wins a diagonal", "xo  xo  x", X},
		{"full board ties", "xoxxoxoxo", Tie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.winner, mustBoard(t, tt.board).Winner())
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("covers every player with opposite scores", func(t *testing.T) {
		g := mustBoard(t, "xo x  o  ")

		evaluation := g.Evaluate()

		for _, player := range g.Players() {
			require.Contains(t, evaluation, player)
		}
		require.Equal(t, evaluation[X], -evaluation[O])
	})

	t.Run("empty board is even", func(t *testing.T) {
		evaluation := New().Evaluate()
		require.Equal(t, 0.0, evaluation[X])
		require.Equal(t, 0.0, evaluation[O])
	})

	t.Run("scores open lines quadratically", func(t *testing.T) {
		// x in a corner touches 3 open lines, 1 mark each
		evaluation := mustBoard(t, "x        ").Evaluate()
		require.Equal(t, 3.0, evaluation[X])

		// two x in a row count 4 for that line
		evaluation = mustBoard(t, "xx      o").Evaluate()
		// +4 for the row, +1 each for two columns, -1 each for o's two lines
		require.Equal(t, 4.0, evaluation[X])
	})
}

func TestOpeningMove(t *testing.T) {
	action, err := searcher.New(searcher.WithDepth[string, int](1)).FindAction(New())

	require.NoError(t, err)
	require.Contains(t, New().Actions(), action)
	require.Equal(t, 4, action, "the center touches the most lines")
}

func TestForcedWin(t *testing.T) {
	// x has two in the top row with the winning cell 2 open
	g := mustBoard(t, "xx  o  o ")

	action, err := searcher.New(searcher.WithDepth[string, int](1)).FindAction(g)

	require.NoError(t, err)
	require.Equal(t, 2, action)

	dist := g.Transition(action)
	require.Equal(t, X, dist[0].State.Winner())
}

func TestSelfPlayTies(t *testing.T) {
	// Full-depth search plays perfectly, so neither side should ever win.
	e := searcher.New(searcher.WithDepth[string, int](9))

	var state game.State[string, int] = New()
	plies := 0
	for state.Winner() == nil {
		require.Less(t, plies, 9, "game must end within 9 plies")

		action, err := e.FindAction(state)
		require.NoError(t, err)
		require.Contains(t, state.Actions(), action)

		state, err = e.Move(state, action)
		require.NoError(t, err)
		plies++
	}

	require.Equal(t, Tie, state.Winner())
}
