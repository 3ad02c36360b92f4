package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

type scoreRepo interface {
	Load(ctx context.Context) (entity.Scores, error)
	Save(ctx context.Context, scores entity.Scores) error
}

// ScoreLedger - wins per player for the lifetime of the process, mirrored to storage on every change.
// Storage failures are logged and never undo the in-memory change.
type ScoreLedger struct {
	logger    *slog.Logger
	scoreRepo scoreRepo
	timeout   time.Duration

	scores entity.Scores
}

func NewScoreLedger(logger *slog.Logger, scoreRepo scoreRepo, timeout time.Duration) *ScoreLedger {
	return &ScoreLedger{
		logger:    logger.With("component", "score_ledger"),
		scoreRepo: scoreRepo,
		timeout:   timeout,
	}
}

// Load - reads persisted scores. Missing or malformed data leaves both counts at zero.
func (that *ScoreLedger) Load(ctx context.Context) {
	log := that.logger.With("method", "Load")

	ctx, cancel := that.withTimeout(ctx)
	defer cancel()

	scores, err := that.scoreRepo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrScoresNotFound):
		log.Info("no stored scores, starting from zero")
		return
	case err != nil:
		log.Warn("could not load scores, starting from zero", "error", err)
		return
	}

	that.scores = scores

	log.Info("scores loaded", "A", scores.A, "B", scores.B)
}

func (that *ScoreLedger) Increment(ctx context.Context, player entity.Player) {
	that.scores = that.scores.Add(player)
	that.persist(ctx)
}

func (that *ScoreLedger) Reset(ctx context.Context) {
	that.scores = entity.Scores{}
	that.persist(ctx)
}

func (that *ScoreLedger) Scores() entity.Scores {
	return that.scores
}

// persist - best effort write of the whole ledger.
func (that *ScoreLedger) persist(ctx context.Context) {
	log := that.logger.With("method", "persist")

	ctx, cancel := that.withTimeout(ctx)
	defer cancel()

	if err := that.scoreRepo.Save(ctx, that.scores); err != nil {
		log.Error("failed to save scores", "error", err)
		return
	}

	log.Debug("scores saved", "A", that.scores.A, "B", that.scores.B)
}

func (that *ScoreLedger) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if that.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, that.timeout)
}
