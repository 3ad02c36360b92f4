package application

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, sqlitePath string) *config.Config {
	return &config.Config{
		LogLevel: "info",
		Storage: config.Storage{
			Driver:   driver,
			ScoreKey: "ttt-scores",
			Timeout:  time.Second,
		},
		SQLiteStoragePath: sqlitePath,
	}
}

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Plays a session on memory storage", func(t *testing.T) {
		var out bytes.Buffer

		err := RunApp(logger, testConfig(config.DriverMemory, ""), strings.NewReader("0\n3\n1\n4\n2\nq\n"), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Player X wins!")
	})

	t.Run("Scores survive a restart on sqlite storage", func(t *testing.T) {
		conf := testConfig(config.DriverSQLite, filepath.Join(t.TempDir(), "scores.db"))

		// Given: a session where O wins
		var first bytes.Buffer
		require.NoError(t, RunApp(logger, conf, strings.NewReader("0\n1\n2\n4\n3\n7\nq\n"), &first))
		require.Contains(t, first.String(), "Player O wins!")

		// When: the application starts again on the same database
		var second bytes.Buffer
		require.NoError(t, RunApp(logger, conf, strings.NewReader("q\n"), &second))

		// Then: the earlier win is loaded
		assert.Contains(t, second.String(), "score X 0 : 1 O")
	})
}
