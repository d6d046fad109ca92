package generator

import (
	"math/rand"
	"time"

	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/internal/board"
)

const DefaultWalkSteps = 30

// Generator produces scrambled sliding-tile boards from a private,
// seedable random source. Search code never touches randomness itself,
// so fixing the seed here makes every downstream result reproducible.
type Generator struct {
	options *Options
	rng     *rand.Rand
	seed    int64
}

// New creates a board generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
	}
}

// Seed returns the seed in effect, after any clock-derived substitution.
// Logging it lets a run be replayed exactly.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Random returns a uniformly random permutation of the 9 symbols.
// Half of all permutations are unsolvable; callers that need a solvable
// board should use Walk instead.
func (g *Generator) Random() board.Board {
	var tiles [board.CellCount]board.Tile
	for i, v := range g.rng.Perm(board.CellCount) {
		tiles[i] = board.Tile(v)
	}

	b, err := board.New(tiles)
	if err != nil {
		// A permutation of 0..8 always satisfies the board invariant.
		panic(err)
	}
	return b
}

// Walk scrambles the goal board with the given number of random legal
// moves, so the result is always solvable in at most that many moves.
// steps <= 0 falls back to the configured WalkSteps.
func (g *Generator) Walk(steps int) board.Board {
	if steps <= 0 {
		steps = g.options.WalkSteps
	}

	b := board.Goal()
	for i := 0; i < steps; i++ {
		neighbors := b.Neighbors()
		b = neighbors[g.rng.Intn(len(neighbors))]
	}
	return b
}
