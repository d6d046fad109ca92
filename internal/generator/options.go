package generator

// Options configures scramble generation behavior.
type Options struct {
	// Seed makes generation reproducible. 0 means derive from the clock.
	Seed int64

	// WalkSteps is the number of random legal moves Walk applies when
	// called with steps <= 0.
	WalkSteps int
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Seed:      0,
		WalkSteps: DefaultWalkSteps,
	}
}
