package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.EmptyCell
)

func TestEvaluate(t *testing.T) {
	t.Run("Finds every row, column and diagonal", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a board where only the combo is marked by O
			board := entity.Board{}
			for _, cell := range combo {
				board[cell] = o
			}

			// When: evaluating the board
			outcome := Evaluate(board)

			// Then: O wins on exactly that combo
			require.True(t, outcome.Found, "combo %v", combo)
			assert.Equal(t, entity.PlayerO, outcome.Winner)
			assert.Equal(t, combo, outcome.Line)
		}
	})

	t.Run("Mixed marks do not win", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			e, o, e,
			x, e, e,
		}

		outcome := Evaluate(board)

		assert.False(t, outcome.Found)
		assert.Equal(t, entity.NoPlayer, outcome.Winner)
	})

	t.Run("Empty board does not win", func(t *testing.T) {
		assert.False(t, Evaluate(entity.Board{}).Found)
	})

	t.Run("Reports rows before columns when two lines are complete", func(t *testing.T) {
		// Given: an unreachable board with both the top row and the left column full of X
		board := entity.Board{
			x, x, x,
			x, o, o,
			x, o, o,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the row is reported because rows are scanned first
		require.True(t, outcome.Found)
		assert.Equal(t, [3]int{0, 1, 2}, outcome.Line)
	})

	t.Run("Reports columns before diagonals", func(t *testing.T) {
		board := entity.Board{
			o, x, e,
			o, o, x,
			o, x, o,
		}

		outcome := Evaluate(board)

		require.True(t, outcome.Found)
		assert.Equal(t, [3]int{0, 3, 6}, outcome.Line)
	})
}

func TestIsDraw(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		assert.True(t, IsDraw(board))
		assert.Equal(t, entity.Draw(), Result(board))
	})

	t.Run("Full board with a line is not a draw", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, x,
			x, o, o,
		}

		assert.False(t, IsDraw(board))
		assert.Equal(t, entity.Won(entity.PlayerX, [3]int{0, 1, 2}), Result(board))
	})

	t.Run("Board with empty cells is not a draw", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, e,
		}

		assert.False(t, IsDraw(board))
		assert.Equal(t, entity.Running(), Result(board))
	})
}
