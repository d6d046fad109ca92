package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "8-puzzle solver using blind and heuristic-guided depth-first search",
	Long: `Explore the 3x3 sliding-tile state space to find a move sequence from a
scrambled board to the solved arrangement [1 2 3 / 4 5 6 / 7 8 _].

Two strategies are available: blind depth-first search, and a greedy
depth-first search that reorders each expansion's successors by Manhattan
distance before exploring them.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(logLevel, os.Stderr))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
