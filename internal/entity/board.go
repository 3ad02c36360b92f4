package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// BoardSize - number of cells on the 3x3 board.
const BoardSize = 9

// Cell - state of a single board position.
type Cell uint8

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

// Board - fixed 3x3 grid stored row-major, row = i/3 and col = i%3.
type Board [BoardSize]Cell

func (that Board) Get(i int) (Cell, error) {
	if !InRange(i) {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, i)
	}

	return that[i], nil
}

// Set - places mark on an empty cell.
func (that *Board) Set(i int, mark Cell) error {
	cell, err := that.Get(i)
	if err != nil {
		return err
	}

	if cell != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, i)
	}

	that[i] = mark

	return nil
}

func (that Board) IsEmpty(i int) bool {
	cell, err := that.Get(i)
	return err == nil && cell == EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Clone - returns an independent copy of the board.
func (that Board) Clone() Board {
	return that
}

func (that Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(that[row*3+col].String())
		}
		if row < 2 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func InRange(i int) bool {
	return i >= 0 && i < BoardSize
}
