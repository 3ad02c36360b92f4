package entity

import "fmt"

type State string

const (
	StateRunning State = "running"
	StateWon     State = "won"
	StateDraw    State = "draw"
)

// Status - outcome of the round so far. Winner and Line are set only for StateWon.
type Status struct {
	State  State  `json:"state"`
	Winner Player `json:"winner,omitempty"`
	Line   [3]int `json:"line"`
}

func Running() Status {
	return Status{State: StateRunning}
}

func Won(winner Player, line [3]int) Status {
	return Status{State: StateWon, Winner: winner, Line: line}
}

func Draw() Status {
	return Status{State: StateDraw}
}

func (that Status) IsRunning() bool {
	return that.State == StateRunning
}

func (that Status) IsWon() bool {
	return that.State == StateWon
}

func (that Status) IsDraw() bool {
	return that.State == StateDraw
}

func (that Status) IsTerminal() bool {
	return that.IsWon() || that.IsDraw()
}

// InLine - reports whether cell i belongs to the winning line.
func (that Status) InLine(i int) bool {
	if !that.IsWon() {
		return false
	}

	for _, cell := range that.Line {
		if cell == i {
			return true
		}
	}

	return false
}

// Text - human readable status for the player whose turn it is.
func (that Status) Text(turn Player) string {
	switch that.State {
	case StateWon:
		return fmt.Sprintf("Player %s wins!", that.Winner)
	case StateDraw:
		return "Draw!"
	default:
		return fmt.Sprintf("Player %s's turn", turn)
	}
}
