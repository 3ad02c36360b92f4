package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
)

var (
	ErrScoresNotFound  = errors.New("scores not found")
	ErrMalformedScores = errors.New("malformed scores")
)

type ScoreRepository interface {
	Load(ctx context.Context) (entity.Scores, error)
	Save(ctx context.Context, scores entity.Scores) error
}

type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type dbScore struct {
	store KeyValueStore
	key   string
}

func NewScoreRepository(store KeyValueStore, key string) ScoreRepository {
	return &dbScore{
		store: store,
		key:   key,
	}
}

func (that *dbScore) Load(ctx context.Context) (entity.Scores, error) {
	response, err := that.store.Get(ctx, that.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return entity.Scores{}, ErrScoresNotFound
	}

	if err != nil {
		return entity.Scores{}, fmt.Errorf("failed to get scores: %w", err)
	}

	var scores entity.Scores
	if err = json.Unmarshal([]byte(response), &scores); err != nil {
		return entity.Scores{}, fmt.Errorf("%w: %w", ErrMalformedScores, err)
	}

	return scores, nil
}

func (that *dbScore) Save(ctx context.Context, scores entity.Scores) error {
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("could not marshal scores: %w", err)
	}

	if err = that.store.Set(ctx, that.key, string(scoresJSON)); err != nil {
		return fmt.Errorf("failed to set scores: %w", err)
	}

	return nil
}
