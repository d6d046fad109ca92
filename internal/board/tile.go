package board

// Tile is one of the 9 symbols occupying a puzzle cell: Empty or 1-8.
// The set is closed; validation at Board construction guarantees no other
// value ever appears on a Board.
type Tile uint8

// Special tile values
const (
	Empty   Tile = 0
	Invalid Tile = 255
)

// IsValid reports whether t is one of the 9 legal symbols.
func (t Tile) IsValid() bool {
	return t <= 8
}

// String returns the tile's digit, or "_" for the empty cell.
func (t Tile) String() string {
	if t == Empty {
		return "_"
	}
	if !t.IsValid() {
		return "?"
	}
	return string('0' + byte(t))
}
