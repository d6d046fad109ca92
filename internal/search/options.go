package search

// Options configures search behavior.
type Options struct {
	// Heuristic guides HeuristicGreedy; Blind ignores it.
	Heuristic Heuristic

	// Progress, when set, is called with the running expansion count
	// every ProgressEvery expansions. It runs on the search goroutine,
	// so it should return quickly.
	Progress func(expanded int)

	// ProgressEvery is the expansion interval between Progress calls.
	ProgressEvery int
}

// DefaultOptions returns standard search options.
func DefaultOptions() *Options {
	return &Options{
		Heuristic:     Manhattan,
		Progress:      nil,
		ProgressEvery: 10000,
	}
}
