package search

import (
	"errors"

	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/internal/board"
)

var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Heuristic selects how a board's distance from the goal is estimated.
type Heuristic int

const (
	// Manhattan sums, over the 8 numbered tiles, the |Δrow| + |Δcol| grid
	// distance between each tile's current cell and its goal cell.
	Manhattan Heuristic = iota

	// Misplaced counts the numbered tiles not sitting on their goal cell.
	Misplaced
)

// String returns the heuristic's display name.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Misplaced:
		return "misplaced"
	default:
		return "unknown"
	}
}

// ParseHeuristic converts a name as accepted on the command line.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "manhattan":
		return Manhattan, nil
	case "misplaced":
		return Misplaced, nil
	default:
		return 0, ErrUnknownHeuristic
	}
}

// Cost returns the heuristic estimate for a board. The estimate is 0 for
// the goal board and non-negative everywhere; for Manhattan, any single
// legal move changes it by exactly 1, since a move relocates exactly one
// tile by one grid step.
func Cost(b board.Board, kind Heuristic) (int, error) {
	switch kind {
	case Manhattan:
		return manhattan(b), nil
	case Misplaced:
		return misplaced(b), nil
	default:
		return 0, ErrUnknownHeuristic
	}
}

// manhattan computes the Manhattan distance sum using the precomputed
// goal-position tables.
func manhattan(b board.Board) int {
	sum := 0
	for pos := 0; pos < board.CellCount; pos++ {
		t := b.Tile(pos)
		if t == board.Empty {
			continue
		}
		sum += abs(board.Row(pos)-goalRow[t]) + abs(board.Col(pos)-goalCol[t])
	}
	return sum
}

// misplaced counts tiles away from their goal cell. The empty cell is
// ignored so the count stays consistent with manhattan.
func misplaced(b board.Board) int {
	count := 0
	for pos := 0; pos < board.CellCount; pos++ {
		t := b.Tile(pos)
		if t == board.Empty {
			continue
		}
		if goalRow[t] != board.Row(pos) || goalCol[t] != board.Col(pos) {
			count++
		}
	}
	return count
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Precomputed goal row/column for each tile value. Tile k belongs at
// position k-1 of the goal board; the empty cell belongs at the last cell.
var (
	goalRow [9]int
	goalCol [9]int
)

// init fills the goal-position lookup tables.
func init() {
	for t := 1; t <= 8; t++ {
		goalRow[t] = board.Row(t - 1)
		goalCol[t] = board.Col(t - 1)
	}
	goalRow[board.Empty] = board.Row(board.CellCount - 1)
	goalCol[board.Empty] = board.Col(board.CellCount - 1)
}
