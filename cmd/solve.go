package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/internal/board"
	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/internal/generator"
	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/internal/search"
	"github.com/spf13/cobra"
)

var (
	solveBoard     string
	solveShuffle   int
	solveRandom    bool
	solveSeed      int64
	solveStrategy  string
	solveHeuristic string
	solveShowPath  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a solution to a scrambled board",
		Long: `Search the 8-puzzle state space from a scrambled board to the solved
arrangement. The board comes from --board, or is scrambled on the spot
with --shuffle or --random.

Unsolvable boards are detected only by exhausting their entire reachable
state space (181440 states), which takes a while with either strategy.

Examples:
  puzzle solve --board 312645780
  puzzle solve --shuffle 40 --strategy greedy
  puzzle solve --random --seed 42 --strategy dfs`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveBoard, "board", "b", "", "Board as 9 characters, '1'-'8' and '0'/'.'/'_' for the blank")
	solveCmd.Flags().IntVar(&solveShuffle, "shuffle", 0, "Scramble the goal with this many random legal moves")
	solveCmd.Flags().BoolVar(&solveRandom, "random", false, "Start from a uniformly random permutation")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for --shuffle/--random (0 = derive from clock)")
	solveCmd.Flags().StringVarP(&solveStrategy, "strategy", "s", "greedy", "Search strategy: dfs or greedy")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "manhattan", "Heuristic for greedy: manhattan or misplaced")
	solveCmd.Flags().BoolVar(&solveShowPath, "path", false, "Print every board on the solution path")

	rootCmd.AddCommand(solveCmd)
}

// pickRoot resolves the start board from the solve flags.
func pickRoot() (board.Board, error) {
	sources := 0
	for _, set := range []bool{solveBoard != "", solveShuffle > 0, solveRandom} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return board.Board{}, fmt.Errorf("no start board: use --board, --shuffle, or --random")
	}
	if sources > 1 {
		return board.Board{}, fmt.Errorf("--board, --shuffle, and --random are mutually exclusive")
	}

	if solveBoard != "" {
		b, err := board.FromString(solveBoard)
		if err != nil {
			return board.Board{}, fmt.Errorf("invalid board %q: %w", solveBoard, err)
		}
		return b, nil
	}

	gen := generator.New(&generator.Options{Seed: solveSeed})
	slog.Debug("generator ready", "seed", gen.Seed())
	if solveRandom {
		return gen.Random(), nil
	}
	return gen.Walk(solveShuffle), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	strategy, err := search.ParseStrategy(solveStrategy)
	if err != nil {
		return fmt.Errorf("%w: %s", err, solveStrategy)
	}
	heuristic, err := search.ParseHeuristic(solveHeuristic)
	if err != nil {
		return fmt.Errorf("%w: %s", err, solveHeuristic)
	}

	root, err := pickRoot()
	if err != nil {
		return err
	}

	fmt.Println("Start board:")
	fmt.Println(root.Format())

	opts := search.DefaultOptions()
	opts.Heuristic = heuristic
	opts.Progress = func(expanded int) {
		slog.Info("searching", "expanded", expanded)
	}

	engine := search.New(strategy, opts)
	slog.Debug("search starting", "strategy", strategy, "heuristic", heuristic)

	start := time.Now()
	result, err := engine.Search(root)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	elapsed := time.Since(start)

	switch result.Outcome {
	case search.Solved:
		fmt.Printf("Solved in %d moves after expanding %d states (%v)\n",
			len(result.Path)-1, result.Expanded(), elapsed.Round(time.Millisecond))
		if solveShowPath {
			for i, b := range result.Path {
				fmt.Printf("Move %d:\n%s", i, b.Format())
			}
		} else {
			fmt.Println("Final board:")
			fmt.Println(result.Solution.Format())
		}
	case search.NoSolution:
		fmt.Printf("No solution: exhausted %d reachable states (%v)\n",
			result.Expanded(), elapsed.Round(time.Millisecond))
	}

	return nil
}
