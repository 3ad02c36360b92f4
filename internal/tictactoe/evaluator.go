package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// WinCombos - rows, then columns, then diagonals. Order decides which line is reported first.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome - result of scanning the board for a completed line.
type Outcome struct {
	Found  bool
	Winner entity.Player
	Line   [3]int
}

// Evaluate - returns the first uniformly marked combo.
func Evaluate(board entity.Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return Outcome{Found: true, Winner: entity.PlayerOf(a), Line: combo}
		}
	}

	return Outcome{}
}

func IsDraw(board entity.Board) bool {
	return board.IsFull() && !Evaluate(board).Found
}

// Result - status the board is in, regardless of whose turn it is.
func Result(board entity.Board) entity.Status {
	if outcome := Evaluate(board); outcome.Found {
		return entity.Won(outcome.Winner, outcome.Line)
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.Running()
}
