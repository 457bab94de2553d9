package gridastar

import (
	"fmt"

	"go.uber.org/zap"
)

// Outcome tells how a search ended.
type Outcome int

const (
	// OutcomeTrivial means start and goal are the same cell; nothing was expanded.
	OutcomeTrivial Outcome = iota
	// OutcomeFound means the goal was reached.
	OutcomeFound
	// OutcomeExhausted means the frontier emptied before the goal was reached.
	OutcomeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTrivial:
		return "trivial"
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result contains the outcome of a search.
type Result struct {
	Outcome Outcome
	// Path runs from goal to start inclusive. It is empty unless Outcome is OutcomeFound.
	Path []Coordinate
	// Cells and Closed are the final bookkeeping for every cell. Both are nil
	// for OutcomeTrivial.
	Cells      *CellStore
	Closed     *ClosedSet
	Expansions int
}

// Empty reports whether no path was produced.
func (r Result) Empty() bool { return len(r.Path) == 0 }

// Cost is the number of unit steps along the path.
func (r Result) Cost() float64 {
	if len(r.Path) == 0 {
		return 0
	}
	return float64(len(r.Path) - 1)
}

// OnPath reports whether c lies on the reconstructed path.
func (r Result) OnPath(c Coordinate) bool {
	for _, p := range r.Path {
		if p == c {
			return true
		}
	}
	return false
}

// StartToGoal returns a copy of the path ordered from start to goal.
func (r Result) StartToGoal() []Coordinate {
	path := make([]Coordinate, len(r.Path))
	for i, c := range r.Path {
		path[len(path)-1-i] = c
	}
	return path
}

// Options defines parameters for the search.
type Options struct {
	Heuristic Heuristic
	BestFirst bool
	Logger    *zap.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean estimate.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithBestFirst services the frontier by lowest score instead of insertion order.
// Paths may differ from the default FIFO search.
func WithBestFirst() Option {
	return func(options *Options) { options.BestFirst = true }
}

// WithLogger sets the logger used for search lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// FindPath runs a search from start to goal over grid to completion.
func FindPath(grid GridModel, start, goal Coordinate, options ...Option) (Result, error) {
	search, err := NewSearch(grid, start, goal, options...)
	if err != nil {
		return Result{}, err
	}
	return search.Run(), nil
}

func checkPreconditions(grid GridModel, start, goal Coordinate) error {
	if !grid.IsValid(start.X, start.Y) {
		return fmt.Errorf("%w: %v", ErrInvalidStart, start)
	}
	if !grid.IsValid(goal.X, goal.Y) {
		return fmt.Errorf("%w: %v", ErrInvalidGoal, goal)
	}
	if grid.IsBlocked(start.X, start.Y) {
		return fmt.Errorf("%w: %v", ErrBlockedStart, start)
	}
	if grid.IsBlocked(goal.X, goal.Y) {
		return fmt.Errorf("%w: %v", ErrBlockedGoal, goal)
	}
	return nil
}
