package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type scoreStorage interface {
	repository.KeyValueStore
	Close() error
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	store, err := openStorage(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	defer func() {
		if err = store.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	scoreRepo := repository.NewScoreRepository(store, conf.Storage.ScoreKey)
	ledger := usecase.NewScoreLedger(logger, scoreRepo, conf.Storage.Timeout)
	ledger.Load(ctx)

	gameController := tictactoe.NewGameController(logger, ledger)

	log.Info("Starting console session", "storage", conf.Storage.Driver)
	if err = console.New(logger, gameController).Run(ctx, in, out); err != nil {
		return fmt.Errorf("console session error: %w", err)
	}

	log.Info("Console session finished")

	return nil
}

func openStorage(ctx context.Context, conf *config.Config) (scoreStorage, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		return storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	case config.DriverSQLite:
		return storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
	default:
		return storage.NewMemoryStorage(), nil
	}
}
