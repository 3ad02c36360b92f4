package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const helpText = "commands: 0-8 place a mark, u undo, n new game, r reset scores (asks first), h help, q quit"

type game interface {
	ApplyMove(ctx context.Context, cell int) (entity.Status, error)
	Undo() error
	NewGame()
	ResetScores(ctx context.Context)

	Board() entity.Board
	Turn() entity.Player
	Status() entity.Status
	Scores() entity.Scores
	CanUndo() bool
}

// Session - pass-the-device presentation: one command per input line, state redrawn after each one.
type Session struct {
	logger *slog.Logger
	game   game

	handlers     map[string]func(ctx context.Context) error
	pendingReset bool
}

func New(logger *slog.Logger, game game) *Session {
	session := &Session{
		logger: logger.With("component", "console"),
		game:   game,
	}

	session.handlers = map[string]func(context.Context) error{
		"u": session.handleUndo,
		"n": session.handleNewGame,
	}

	return session
}

// Run - reads commands from in until "q", EOF or ctx is done.
func (that *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	// stops the reader when the session ends on "q"
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines, readErr := readLines(readCtx, in)

	that.render(out)
	fmt.Fprintln(out, helpText)

	for {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			log.Info("session cancelled")
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		command := strings.ToLower(strings.TrimSpace(line))

		if that.pendingReset {
			that.confirmReset(ctx, command, out)
			continue
		}

		switch command {
		case "":
			continue
		case "q":
			return nil
		case "h", "?":
			fmt.Fprintln(out, helpText)
			continue
		case "r":
			that.pendingReset = true
			fmt.Fprint(out, "Reset scores? [y/N] ")
			continue
		}

		if err := that.handle(ctx, command); err != nil {
			log.Debug("command rejected", "command", command, "error", err)
			fmt.Fprintln(out, describeError(err))
			continue
		}

		that.render(out)
	}
}

// readLines - scans in on its own goroutine so a blocked read never holds up cancellation.
// readErr yields the scanner error once lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// confirmReset - answer to the reset prompt; anything but yes keeps the scores.
func (that *Session) confirmReset(ctx context.Context, answer string, out io.Writer) {
	that.pendingReset = false

	if answer != "y" && answer != "yes" {
		fmt.Fprintln(out, "scores kept")
		return
	}

	that.game.ResetScores(ctx)
	that.render(out)
}

func (that *Session) handle(ctx context.Context, command string) error {
	if handler, ok := that.handlers[command]; ok {
		return handler(ctx)
	}

	cell, err := strconv.Atoi(command)
	if err != nil {
		return fmt.Errorf("unknown command %q", command)
	}

	if _, err = that.game.ApplyMove(ctx, cell); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	return nil
}

func (that *Session) handleUndo(_ context.Context) error {
	return that.game.Undo()
}

func (that *Session) handleNewGame(_ context.Context) error {
	that.game.NewGame()
	return nil
}

// render - draws the board; cells of a winning line are bracketed.
func (that *Session) render(out io.Writer) {
	board := that.game.Board()
	status := that.game.Status()
	scores := that.game.Scores()

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			i := row*3 + col

			mark := board[i].String()
			if board[i] == entity.EmptyCell {
				mark = strconv.Itoa(i)
			}

			if status.InLine(i) {
				sb.WriteString("[" + mark + "]")
			} else {
				sb.WriteString(" " + mark + " ")
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(out, sb.String())
	fmt.Fprintln(out, status.Text(that.game.Turn()))
	fmt.Fprintf(out, "score X %d : %d O", scores.A, scores.B)
	if that.game.CanUndo() {
		fmt.Fprint(out, " (u to undo)")
	}
	fmt.Fprintln(out)
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameOver):
		return "the round is over: press n for a new game or u to undo"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "that cell is taken"
	case errors.Is(err, apperror.ErrIndexOutOfRange):
		return "pick a cell between 0 and 8"
	case errors.Is(err, apperror.ErrNoHistory):
		return "nothing to undo"
	default:
		return err.Error()
	}
}
