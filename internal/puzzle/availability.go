package puzzle

// TileState is the clickability of a tile for the current selection.
type TileState int

const (
	Blocked TileState = iota
	Active
	Selected
)

func (s TileState) String() string {
	switch s {
	case Active:
		return "active"
	case Selected:
		return "selected"
	default:
		return "blocked"
	}
}

// Availability applies the bottom-up rule to the tile at pos in col.
// isSelected reports whether a tile id is part of the current selection.
func Availability(col Column, pos int, isSelected func(id string) bool) TileState {
	if isSelected(col[pos].ID) {
		return Selected
	}
	if pos == 0 {
		return Active
	}
	if isSelected(col[pos-1].ID) {
		return Active
	}
	return Blocked
}
