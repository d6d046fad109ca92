package board

import (
	"fmt"
	"strings"
)

// Grid dimensions
const (
	GridSize  = 3
	CellCount = GridSize * GridSize
)

// Board represents a 3x3 sliding-tile arrangement, read row-major.
// Board is a comparable value type: all operations return new Boards rather
// than mutating in place, and Boards can key a map directly. The zero value
// is not a valid board; construct through New, FromString, or Goal.
type Board struct {
	tiles [CellCount]Tile
}

// New creates a Board from the given tiles.
// Returns an error unless every symbol in {Empty, 1..8} occurs exactly once.
func New(tiles [CellCount]Tile) (Board, error) {
	b := Board{tiles: tiles}
	if err := b.validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// FromString creates a Board from a 9-character string, read row-major.
// Use '1'-'8' for tiles and '0', '.', or '_' for the empty cell.
func FromString(s string) (Board, error) {
	if len(s) != CellCount {
		return Board{}, fmt.Errorf("%w: string must be exactly %d characters, got %d", ErrInvalidLength, CellCount, len(s))
	}

	var tiles [CellCount]Tile
	for pos := 0; pos < CellCount; pos++ {
		switch ch := s[pos]; ch {
		case '0', '.', '_':
			tiles[pos] = Empty
		case '1', '2', '3', '4', '5', '6', '7', '8':
			tiles[pos] = Tile(ch - '0')
		default:
			return Board{}, fmt.Errorf("%w: character '%c' at position %d", ErrInvalidTile, ch, pos)
		}
	}
	return New(tiles)
}

// Goal returns the solved arrangement: tiles 1-8 in order, empty cell last.
func Goal() Board {
	return Board{tiles: [CellCount]Tile{1, 2, 3, 4, 5, 6, 7, 8, Empty}}
}

// Tile returns the tile at the given position.
// Returns Invalid for out-of-bounds positions.
func (b Board) Tile(pos int) Tile {
	if !isValidPosition(pos) {
		return Invalid
	}
	return b.tiles[pos]
}

// Tiles returns a copy of the underlying 9-tile array.
func (b Board) Tiles() [CellCount]Tile {
	return b.tiles
}

// EmptyIndex returns the position of the empty cell.
func (b Board) EmptyIndex() int {
	for pos := 0; pos < CellCount; pos++ {
		if b.tiles[pos] == Empty {
			return pos
		}
	}
	// Unreachable for boards built through New/FromString.
	return -1
}

// IsGoal reports whether the board is solved: reading the cells in order
// and skipping the empty one must yield exactly 1 through 8 ascending.
func (b Board) IsGoal() bool {
	want := Tile(1)
	for pos := 0; pos < CellCount; pos++ {
		if b.tiles[pos] == Empty {
			continue
		}
		if b.tiles[pos] != want {
			return false
		}
		want++
	}
	return true
}

// Neighbors returns the boards reachable by one legal move: swapping the
// empty cell with an edge-adjacent tile. Results appear in the fixed order
// up, down, left, right, skipping moves that would leave the grid.
// Every board has between 2 and 4 neighbors.
func (b Board) Neighbors() []Board {
	empty := b.EmptyIndex()
	row, col := posToRow[empty], posToCol[empty]

	out := make([]Board, 0, 4)
	if row > 0 {
		out = append(out, b.swap(empty, empty-GridSize)) // up
	}
	if row < GridSize-1 {
		out = append(out, b.swap(empty, empty+GridSize)) // down
	}
	if col > 0 {
		out = append(out, b.swap(empty, empty-1)) // left
	}
	if col < GridSize-1 {
		out = append(out, b.swap(empty, empty+1)) // right
	}
	return out
}

// swap returns a copy of the board with the tiles at i and j exchanged.
// The receiver is a value, so the caller's board is untouched.
func (b Board) swap(i, j int) Board {
	b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	return b
}

// String returns the board as a 9-character string.
// The empty cell is represented as '_', tiles as '1'-'8'.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, t := range b.tiles {
		if t == Empty {
			sb.WriteByte('_')
		} else {
			sb.WriteByte('0' + byte(t))
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b Board) Format() string {
	var sb strings.Builder
	line := "+-------+\n"
	sb.WriteString(line)

	for row := 0; row < GridSize; row++ {
		sb.WriteString("| ")
		for col := 0; col < GridSize; col++ {
			t := b.Tile(MakePos(row, col))
			if t == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(t))
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}

	sb.WriteString(line)
	return sb.String()
}

// Precomputed lookup tables for row and column mapping.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns -1 if row and/or col are out of bounds.
func MakePos(row, col int) int {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return -1
	}
	return GridSize*row + col
}

// Row returns the grid row of a linear position.
func Row(pos int) int { return posToRow[pos] }

// Col returns the grid column of a linear position.
func Col(pos int) int { return posToCol[pos] }

// init initializes lookup tables for position-to-row and position-to-column.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / GridSize
		posToCol[pos] = pos % GridSize
	}
}
