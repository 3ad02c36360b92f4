package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreKey = "ttt-scores"

var errStorageDown = errors.New("storage down")

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) {
	return "", errStorageDown
}

func (brokenStore) Set(context.Context, string, string) error {
	return errStorageDown
}

func TestScoreRepository_Save(t *testing.T) {
	ctx := context.Background()

	// Given: an empty store
	store := storage.NewMemoryStorage()
	scoreRepo := NewScoreRepository(store, scoreKey)

	// When: scores are saved
	err := scoreRepo.Save(ctx, entity.Scores{A: 2, B: 1})

	// Then: they are stored as a JSON record under the key
	require.NoError(t, err)
	raw, err := store.Get(ctx, scoreKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"A":2,"B":1}`, raw)
}

func TestScoreRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Load_Success", func(t *testing.T) {
		store := storage.NewMemoryStorage()
		require.NoError(t, store.Set(ctx, scoreKey, `{"A":5,"B":3}`))
		scoreRepo := NewScoreRepository(store, scoreKey)

		scores, err := scoreRepo.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.Scores{A: 5, B: 3}, scores)
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		scoreRepo := NewScoreRepository(storage.NewMemoryStorage(), scoreKey)

		scores, err := scoreRepo.Load(ctx)

		require.ErrorIs(t, err, ErrScoresNotFound)
		assert.Equal(t, entity.Scores{}, scores)
	})

	t.Run("Load_Malformed", func(t *testing.T) {
		for _, raw := range []string{`not json`, `{"A":-1,"B":0}`, `{"A":"two"}`, `[1,2]`} {
			// Given: garbage stored under the key
			store := storage.NewMemoryStorage()
			require.NoError(t, store.Set(ctx, scoreKey, raw))
			scoreRepo := NewScoreRepository(store, scoreKey)

			// When: loading scores
			scores, err := scoreRepo.Load(ctx)

			// Then: ErrMalformedScores is returned with zero scores
			require.ErrorIs(t, err, ErrMalformedScores, raw)
			assert.Equal(t, entity.Scores{}, scores, raw)
		}
	})

	t.Run("Load_StorageError", func(t *testing.T) {
		scoreRepo := NewScoreRepository(brokenStore{}, scoreKey)

		_, err := scoreRepo.Load(ctx)

		require.ErrorIs(t, err, errStorageDown)
	})
}

func TestScoreRepository_Redis(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewScoreRepository(&storage.RedisStorage{Connection: st.Redis}, scoreKey)

	// Given: nothing stored yet
	_, err := scoreRepo.Load(ctx)
	require.ErrorIs(t, err, ErrScoresNotFound)

	// When: scores are saved
	require.NoError(t, scoreRepo.Save(ctx, entity.Scores{A: 1}))

	// Then: they load back from redis
	scores, err := scoreRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Scores{A: 1}, scores)
}
