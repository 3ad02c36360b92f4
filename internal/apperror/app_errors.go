package apperror

import "errors"

var (
	ErrIndexOutOfRange = errors.New("cell index is out of range")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameOver        = errors.New("game is already finished")
	ErrNoHistory       = errors.New("no moves to undo")
)
