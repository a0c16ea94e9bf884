package tictactoe

import (
	"fmt"
	"strings"

	"expectimax/game"
)

const (
	X = "x"
	O = "o"
	// Tie is the winner marker for a full board with no three-in-a-row.
	Tie = "tie"

	emptyBoard = "         "
)

// Game is one tic-tac-toe position. The board is a 9-char string, one char
// per cell ('x', 'o' or ' '), row-major from the top left. x always moves
// first; the player to move is derived from the mark counts.
type Game struct {
	board string
}

func New() Game {
	return Game{board: emptyBoard}
}

// FromBoard builds a position from a 9-char board string.
func FromBoard(board string) (Game, error) {
	if len(board) != 9 {
		return Game{}, fmt.Errorf("board must have 9 cells, got %d", len(board))
	}
	for i, c := range board {
		if c != 'x' && c != 'o' && c != ' ' {
			return Game{}, fmt.Errorf("invalid mark %q in cell %d", c, i)
		}
	}
	xs := strings.Count(board, X)
	os := strings.Count(board, O)
	if xs != os && xs != os+1 {
		return Game{}, fmt.Errorf("unreachable position: %d x marks vs %d o marks", xs, os)
	}
	return Game{board: board}, nil
}

func (g Game) Players() []string {
	return []string{X, O}
}

// ply counts the marks placed so far.
func (g Game) ply() int {
	return len(g.board) - strings.Count(g.board, " ")
}

func (g Game) Turn() string {
	if g.ply()%2 == 0 {
		return X
	}
	return O
}

// Actions returns the empty cells, in board order.
func (g Game) Actions() []int {
	var cells []int
	for i, c := range g.board {
		if c == ' ' {
			cells = append(cells, i)
		}
	}
	return cells
}

// Transition places the mover's mark in the given cell. Tic-tac-toe is
// deterministic, so the distribution is always a single certain outcome.
func (g Game) Transition(cell int) game.Distribution[string, int] {
	board := g.board[:cell] + g.Turn() + g.board[cell+1:]
	return game.Uniform[string, int](Game{board: board})
}

// chains lists the 8 three-in-a-row lines: rows, columns and diagonals.
func (g Game) chains() []string {
	b := g.board
	return []string{
		b[0:3], b[3:6], b[6:9],
		string([]byte{b[0], b[3], b[6]}),
		string([]byte{b[1], b[4], b[7]}),
		string([]byte{b[2], b[5], b[8]}),
		string([]byte{b[0], b[4], b[8]}),
		string([]byte{b[2], b[4], b[6]}),
	}
}

func (g Game) Winner() any {
	for _, chain := range g.chains() {
		switch chain {
		case "xxx":
			return X
		case "ooo":
			return O
		}
	}
	if !strings.Contains(g.board, " ") {
		return Tie
	}
	return nil
}

// Evaluate scores line potential quadratically: a line holding marks of
// only one player is worth the square of its mark count to that player,
// contested lines are worth nothing. x gets the total, o its negation.
func (g Game) Evaluate() game.Evaluation[string] {
	score := 0.0
	for _, chain := range g.chains() {
		xs := strings.Count(chain, X)
		os := strings.Count(chain, O)
		if xs > 0 && os > 0 {
			continue
		}
		score += float64(xs*xs - os*os)
	}
	return game.Evaluation[string]{X: score, O: -score}
}

func (g Game) String() string {
	rows := make([]string, 0, 3)
	for i := 0; i < 9; i += 3 {
		rows = append(rows, strings.Join(strings.Split(g.board[i:i+3], ""), "|"))
	}
	return strings.Join(rows, "\n-----\n")
}
