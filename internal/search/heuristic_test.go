package search

import (
	"testing"

	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/internal/board"
	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/internal/generator"
	"github.com/stretchr/testify/require"
)

func TestHeuristicGoalIsZero(t *testing.T) {
	for _, kind := range []Heuristic{Manhattan, Misplaced} {
		got, err := Cost(board.Goal(), kind)
		require.NoError(t, err)
		require.Equal(t, 0, got, "heuristic %s", kind)
	}
}

func TestManhattanKnownValues(t *testing.T) {
	tests := []struct {
		board string
		want  int
	}{
		{"12345678_", 0},
		{"1234567_8", 1}, // tile 8 one step from home
		{"31264578_", 8},
		{"812_43765", 11},
	}

	for _, tt := range tests {
		b, err := board.FromString(tt.board)
		require.NoError(t, err)
		got, err := Cost(b, Manhattan)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "board %s", tt.board)
	}
}

func TestMisplacedKnownValues(t *testing.T) {
	tests := []struct {
		board string
		want  int
	}{
		{"12345678_", 0},
		{"1234567_8", 1},
		{"31264578_", 6},
	}

	for _, tt := range tests {
		b, err := board.FromString(tt.board)
		require.NoError(t, err)
		got, err := Cost(b, Misplaced)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "board %s", tt.board)
	}
}

// Every legal move relocates exactly one tile by one grid step, so the
// Manhattan estimate of any neighbor differs from its parent's by exactly 1.
func TestManhattanNeighborDelta(t *testing.T) {
	gen := generator.New(&generator.Options{Seed: 7})

	for i := 0; i < 200; i++ {
		b := gen.Random()
		h, err := Cost(b, Manhattan)
		require.NoError(t, err)
		require.GreaterOrEqual(t, h, 0)

		for _, n := range b.Neighbors() {
			nh, err := Cost(n, Manhattan)
			require.NoError(t, err)
			delta := nh - h
			if delta < 0 {
				delta = -delta
			}
			require.Equal(t, 1, delta, "board %s neighbor %s", b, n)
		}
	}
}

func TestCostUnknownHeuristic(t *testing.T) {
	_, err := Cost(board.Goal(), Heuristic(99))
	require.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestParseHeuristic(t *testing.T) {
	h, err := ParseHeuristic("manhattan")
	require.NoError(t, err)
	require.Equal(t, Manhattan, h)

	h, err = ParseHeuristic("misplaced")
	require.NoError(t, err)
	require.Equal(t, Misplaced, h)

	_, err = ParseHeuristic("euclidean")
	require.ErrorIs(t, err, ErrUnknownHeuristic)
}
