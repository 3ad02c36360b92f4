package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type scoreLedger interface {
	Increment(ctx context.Context, player entity.Player)
	Reset(ctx context.Context)
	Scores() entity.Scores
}

// GameController - owns one round of play: the board, whose turn it is, the status and the undo history.
// It is not safe for concurrent use; callers serialize operations.
type GameController struct {
	logger *slog.Logger
	ledger scoreLedger

	roundID string
	board   entity.Board
	turn    entity.Player
	status  entity.Status
	history *History
}

func NewGameController(logger *slog.Logger, ledger scoreLedger) *GameController {
	controller := &GameController{
		logger:  logger.With("component", "game_controller"),
		ledger:  ledger,
		history: NewHistory(),
	}

	controller.NewGame()

	return controller
}

// ApplyMove - places the current player's mark on cell and advances the round.
func (that *GameController) ApplyMove(ctx context.Context, cell int) (entity.Status, error) {
	if that.status.IsTerminal() {
		return that.status, apperror.ErrGameOver
	}

	if err := that.validateMove(cell); err != nil {
		return that.status, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	player := that.turn

	that.history.Push(that.board, that.turn)
	if err := that.board.Set(cell, player.Mark()); err != nil {
		_, _, _ = that.history.Pop()
		return that.status, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	that.updateStatus(ctx, player)

	that.logger.Debug("move applied",
		"round", that.roundID, "player", player, "cell", cell, "state", that.status.State)

	return that.status, nil
}

// Undo - restores the position from before the last move and resumes play.
// A win already counted in the ledger stays counted.
func (that *GameController) Undo() error {
	board, turn, err := that.history.Pop()
	if err != nil {
		return fmt.Errorf("failed to undo: %w", err)
	}

	that.board = board
	that.turn = turn
	that.status = entity.Running()

	that.logger.Debug("move undone", "round", that.roundID, "turn", turn, "history", that.history.Len())

	return nil
}

// NewGame - starts a fresh round. Scores are kept.
func (that *GameController) NewGame() {
	that.roundID = uuid.NewString()
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.status = entity.Running()
	that.history.Clear()

	that.logger.Debug("new round", "round", that.roundID)
}

// ResetScores - zeroes the ledger and starts a fresh round.
func (that *GameController) ResetScores(ctx context.Context) {
	that.ledger.Reset(ctx)
	that.NewGame()
}

func (that *GameController) Board() entity.Board {
	return that.board.Clone()
}

func (that *GameController) Turn() entity.Player {
	return that.turn
}

func (that *GameController) Status() entity.Status {
	return that.status
}

func (that *GameController) Scores() entity.Scores {
	return that.ledger.Scores()
}

func (that *GameController) HistoryLen() int {
	return that.history.Len()
}

func (that *GameController) CanUndo() bool {
	return that.history.Len() > 0
}

func (that *GameController) RoundID() string {
	return that.roundID
}

// validateMove - checks that cell is on the board and free.
func (that *GameController) validateMove(cell int) error {
	current, err := that.board.Get(cell)
	if err != nil {
		return err
	}

	if current != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateStatus - evaluates the board after player's move.
func (that *GameController) updateStatus(ctx context.Context, player entity.Player) {
	that.status = Result(that.board)

	switch that.status.State {
	case entity.StateWon:
		that.ledger.Increment(ctx, that.status.Winner)
		that.logger.Info("round won", "round", that.roundID, "winner", that.status.Winner, "line", that.status.Line)
	case entity.StateDraw:
		that.logger.Info("round drawn", "round", that.roundID)
	default:
		that.turn = player.Opponent()
	}
}

// IsLegalMove - reports whether ApplyMove would accept cell right now.
func (that *GameController) IsLegalMove(cell int) bool {
	return that.status.IsRunning() && that.validateMove(cell) == nil
}
