package search

import (
	"errors"
	"slices"

	"github.com/christosgkaris/8-puzzle-with-DFS-and-A-star/internal/board"
)

var (
	ErrInvalidBoard    = errors.New("board violates the tile invariant")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Strategy selects the traversal order of the search.
type Strategy int

const (
	// Blind is plain depth-first search: successors are explored in the
	// fixed order the move generator emits them.
	Blind Strategy = iota

	// HeuristicGreedy is depth-first search where each expansion's
	// successor set is reordered ascending by heuristic estimate before
	// being explored. Only the current successor set is reordered; boards
	// queued by earlier expansions keep their place, so this is a greedy
	// local tie-break, not A* over a global priority frontier.
	HeuristicGreedy
)

// String returns the strategy's display name.
func (s Strategy) String() string {
	switch s {
	case Blind:
		return "dfs"
	case HeuristicGreedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a name as accepted on the command line.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "dfs", "blind":
		return Blind, nil
	case "greedy", "astar":
		return HeuristicGreedy, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

// Outcome is the terminal state of a finished search.
type Outcome int

const (
	// Solved means a goal board was found.
	Solved Outcome = iota

	// NoSolution means the entire reachable state space was exhausted
	// without finding a goal. This is a defined outcome, not an error:
	// the puzzle graph splits into two parity classes and only the class
	// containing the goal is solvable.
	NoSolution
)

// String returns the outcome's display name.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case NoSolution:
		return "no solution"
	default:
		return "unknown"
	}
}

// Result reports the terminal state of one search call.
type Result struct {
	// Outcome is Solved or NoSolution.
	Outcome Outcome

	// Solution is the goal board that was found.
	// Only meaningful when Outcome is Solved.
	Solution board.Board

	// Trace lists every expanded board in expansion order, ending with
	// the solution board when Outcome is Solved. No board repeats.
	Trace []board.Board

	// Path is the move sequence from the root to the solution, both
	// endpoints included; consecutive entries differ by one legal move.
	// Empty when Outcome is NoSolution.
	Path []board.Board
}

// Expanded returns the number of boards the search expanded.
func (r *Result) Expanded() int {
	if r.Outcome == Solved {
		return len(r.Trace) - 1
	}
	return len(r.Trace)
}

// Engine runs sliding-tile searches with a fixed strategy.
// An Engine holds no per-search state and may be reused; each Search call
// owns its frontier and visited set exclusively, so independent Engines
// (or sequential calls on one) never share anything.
type Engine struct {
	strategy Strategy
	options  *Options
}

// New creates a search engine for the given strategy.
func New(strategy Strategy, options *Options) *Engine {
	if options == nil {
		options = DefaultOptions()
	}
	return &Engine{
		strategy: strategy,
		options:  options,
	}
}

// Search explores the state space from root until it finds a goal board or
// exhausts every reachable state. The loop is iterative with an explicit
// frontier; recursion depth would otherwise grow with the number of states
// explored, which reaches 9!/2 on unsolvable inputs.
func (e *Engine) Search(root board.Board) (*Result, error) {
	if !root.IsValid() {
		return nil, ErrInvalidBoard
	}
	if e.strategy != Blind && e.strategy != HeuristicGreedy {
		return nil, ErrUnknownStrategy
	}

	if root.IsGoal() {
		return &Result{
			Outcome:  Solved,
			Solution: root,
			Trace:    []board.Board{root},
			Path:     []board.Board{root},
		}, nil
	}

	// frontier is a stack: the last element is the next candidate. Stale
	// duplicates of visited boards stay queued and are skipped lazily at
	// pop time rather than filtered when pushed.
	frontier := make([]board.Board, 0, 64)

	// visited keeps expansion order for the trace; seen gives membership
	// by full-board equality. parent records, once per board, which
	// expansion first queued it, for path reconstruction.
	visited := []board.Board{root}
	seen := map[board.Board]bool{root: true}
	parent := map[board.Board]board.Board{}

	if err := e.push(&frontier, parent, root, root.Neighbors()); err != nil {
		return nil, err
	}

	every := e.options.ProgressEvery
	if every <= 0 {
		every = 1
	}

	for len(frontier) > 0 {
		head := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if seen[head] {
			continue
		}

		if head.IsGoal() {
			return &Result{
				Outcome:  Solved,
				Solution: head,
				Trace:    append(visited, head),
				Path:     reconstruct(parent, root, head),
			}, nil
		}

		visited = append(visited, head)
		seen[head] = true
		if e.options.Progress != nil && len(visited)%every == 0 {
			e.options.Progress(len(visited))
		}

		if err := e.push(&frontier, parent, head, head.Neighbors()); err != nil {
			return nil, err
		}
	}

	return &Result{Outcome: NoSolution, Trace: visited}, nil
}

// push queues a successor set so that its first element is popped first.
// For HeuristicGreedy the set is stably sorted ascending by heuristic
// estimate beforehand; ties keep the move generator's emission order.
func (e *Engine) push(frontier *[]board.Board, parent map[board.Board]board.Board, from board.Board, succs []board.Board) error {
	if e.strategy == HeuristicGreedy {
		costs := make(map[board.Board]int, len(succs))
		for _, s := range succs {
			c, err := Cost(s, e.options.Heuristic)
			if err != nil {
				return err
			}
			costs[s] = c
		}
		slices.SortStableFunc(succs, func(a, b board.Board) int {
			return costs[a] - costs[b]
		})
	}

	for i := len(succs) - 1; i >= 0; i-- {
		s := succs[i]
		if _, ok := parent[s]; !ok {
			parent[s] = from
		}
		*frontier = append(*frontier, s)
	}
	return nil
}

// reconstruct walks the parent links from the goal back to the root.
// Links are recorded in expansion order, so the chain always terminates.
func reconstruct(parent map[board.Board]board.Board, root, goal board.Board) []board.Board {
	path := []board.Board{goal}
	for cur := goal; cur != root; {
		cur = parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
