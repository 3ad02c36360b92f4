package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type snapshot struct {
	board entity.Board
	turn  entity.Player
}

// History - LIFO of positions captured right before each accepted move.
type History struct {
	entries []snapshot
}

func NewHistory() *History {
	return &History{
		entries: make([]snapshot, 0, entity.BoardSize),
	}
}

func (that *History) Push(board entity.Board, turn entity.Player) {
	that.entries = append(that.entries, snapshot{board: board.Clone(), turn: turn})
}

// Pop - removes the latest snapshot and returns its board and turn.
func (that *History) Pop() (entity.Board, entity.Player, error) {
	if len(that.entries) == 0 {
		return entity.Board{}, entity.NoPlayer, apperror.ErrNoHistory
	}

	last := that.entries[len(that.entries)-1]
	that.entries = that.entries[:len(that.entries)-1]

	return last.board.Clone(), last.turn, nil
}

func (that *History) Len() int {
	return len(that.entries)
}

func (that *History) Clear() {
	that.entries = that.entries[:0]
}
