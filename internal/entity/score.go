package entity

// Scores - win tally per player, stored as {"A": n, "B": n}.
type Scores struct {
	A uint `json:"A"`
	B uint `json:"B"`
}

func (that Scores) Of(player Player) uint {
	switch player {
	case PlayerX:
		return that.A
	case PlayerO:
		return that.B
	default:
		return 0
	}
}

// Add - returns scores with one more win for player.
func (that Scores) Add(player Player) Scores {
	switch player {
	case PlayerX:
		that.A++
	case PlayerO:
		that.B++
	}

	return that
}
