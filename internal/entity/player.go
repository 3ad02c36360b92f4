package entity

// Player - one of the two seats. PlayerX always moves first.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"

	NoPlayer Player = ""
)

func (that Player) Mark() Cell {
	switch that {
	case PlayerX:
		return MarkX
	case PlayerO:
		return MarkO
	default:
		return EmptyCell
	}
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// PlayerOf - owner of a marked cell, NoPlayer for an empty one.
func PlayerOf(cell Cell) Player {
	switch cell {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return NoPlayer
	}
}
