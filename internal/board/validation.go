package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("board must have exactly 9 cells")
	ErrInvalidTile   = errors.New("tile must be empty or between 1-8")
	ErrDuplicateTile = errors.New("every tile must occur exactly once")
)

// validate checks the board invariant: each of the 9 symbols, the empty
// cell included, occurs exactly once. Boards that fail here never escape
// the constructors, so the rest of the package can assume the invariant.
func (b Board) validate() error {
	var seen [CellCount]bool

	for pos := 0; pos < CellCount; pos++ {
		t := b.tiles[pos]
		if !t.IsValid() {
			return fmt.Errorf("%w: got %d at position %d", ErrInvalidTile, t, pos)
		}
		if seen[t] {
			return fmt.Errorf("%w: %s appears twice", ErrDuplicateTile, t)
		}
		seen[t] = true
	}

	return nil
}

// IsValid reports whether the board satisfies the tile invariant. Boards
// built through New or FromString always do; this guards zero values and
// hand-rolled literals handed in from outside the package.
func (b Board) IsValid() bool {
	return b.validate() == nil
}

// isValidPosition reports whether a given position is in bounds of the grid.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}
