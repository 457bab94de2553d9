package gridastar

import (
	"fmt"

	"go.uber.org/zap"
)

// State is the lifecycle stage of a Search.
type State int

const (
	StateReady State = iota
	StateRunning
	StateFound
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further steps will change the search.
func (s State) Terminal() bool { return s == StateFound || s == StateExhausted }

// Snapshot exposes the state of the search after one step.
type Snapshot struct {
	// Current is the cell expanded by this step, or Unset if none was.
	Current     Coordinate
	State       State
	FrontierLen int
	ClosedLen   int
	StepIndex   int
	// Path is set once State is StateFound.
	Path []Coordinate
}

// Search is a single-use engine over one grid, start and goal.
// It is not safe for concurrent use; the grid may be shared between searches.
type Search struct {
	grid        GridModel
	start, goal Coordinate
	heuristic   Heuristic
	bestFirst   bool
	logger      *zap.Logger

	cells    *CellStore
	closed   *ClosedSet
	frontier Frontier

	state      State
	trivial    bool
	expansions int
	path       []Coordinate
}

// NewSearch checks start and goal against grid and prepares a search.
// No cell state is allocated when a precondition fails.
func NewSearch(grid GridModel, start, goal Coordinate, options ...Option) (*Search, error) {
	if err := checkPreconditions(grid, start, goal); err != nil {
		return nil, err
	}

	opts := Options{Heuristic: Euclidean}
	for _, o := range options {
		o(&opts)
	}
	if opts.Heuristic == nil {
		opts.Heuristic = Euclidean
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Search{
		grid: grid, start: start, goal: goal,
		heuristic: opts.Heuristic,
		bestFirst: opts.BestFirst,
		logger:    opts.Logger.With(zap.Stringer("start", start), zap.Stringer("goal", goal)),
	}
	if start == goal {
		s.trivial = true
		s.state = StateFound
		s.logger.Debug("start equals goal, nothing to search")
	}
	return s, nil
}

func (s *Search) State() State { return s.state }

// Cells returns a copy of the current cell bookkeeping, or nil before the
// first step and for trivial searches.
func (s *Search) Cells() *CellStore {
	if s.cells == nil {
		return nil
	}
	return s.cells.Clone()
}

// Closed returns a copy of the current closed set, or nil before the first
// step and for trivial searches.
func (s *Search) Closed() *ClosedSet {
	if s.closed == nil {
		return nil
	}
	return s.closed.Clone()
}

func (s *Search) begin() {
	w, h := s.grid.Width(), s.grid.Height()
	s.cells = NewCellStore(w, h)
	s.closed = NewClosedSet(w, h)
	if s.bestFirst {
		s.frontier = NewBestFirstFrontier()
	} else {
		s.frontier = NewFIFOFrontier()
	}

	s.cells.Set(s.start.X, s.start.Y, Cell{Parent: s.start, G: 0, H: 0, F: 0})
	s.frontier.Push(0, s.start)
	s.state = StateRunning
	s.logger.Debug("search started",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Bool("bestFirst", s.bestFirst))
}

// Step advances the search by one frontier pop and its neighbour expansion.
// Stepping a finished search returns its final snapshot.
func (s *Search) Step() Snapshot {
	switch s.state {
	case StateReady:
		s.begin()
	case StateFound, StateExhausted:
		return s.snapshot(Unset)
	}

	entry, ok := s.frontier.PopFront()
	if !ok {
		s.finish(StateExhausted)
		return s.snapshot(Unset)
	}
	current := entry.Coord
	s.closed.Close(current.X, current.Y)
	s.expansions++

	// every neighbour is processed even after the goal is seen
	reached := false
	for _, offset := range neighborOffsets {
		neighbor := Coordinate{X: current.X + offset.X, Y: current.Y + offset.Y}
		if s.expand(current, neighbor) {
			reached = true
		}
	}

	switch {
	case reached:
		path, err := Trace(s.cells, s.goal)
		if err != nil {
			panic(fmt.Sprintf("gridastar: engine produced an invalid parent chain: %v", err))
		}
		s.path = path
		s.finish(StateFound)
	case s.frontier.IsEmpty():
		s.finish(StateExhausted)
	}
	return s.snapshot(current)
}

// Run steps the search until it reaches a terminal state and returns the result.
func (s *Search) Run() Result {
	for !s.state.Terminal() {
		s.Step()
	}
	return s.result()
}

func (s *Search) finish(state State) {
	s.state = state
	s.logger.Debug("search finished",
		zap.Stringer("state", state),
		zap.Int("expansions", s.expansions),
		zap.Int("closed", s.closed.Len()),
		zap.Int("pathLen", len(s.path)))
}

func (s *Search) result() Result {
	r := Result{
		Path:       s.path,
		Cells:      s.cells,
		Closed:     s.closed,
		Expansions: s.expansions,
	}
	switch {
	case s.trivial:
		r.Outcome = OutcomeTrivial
	case s.state == StateFound:
		r.Outcome = OutcomeFound
	default:
		r.Outcome = OutcomeExhausted
	}
	return r
}

func (s *Search) snapshot(current Coordinate) Snapshot {
	snap := Snapshot{
		Current:   current,
		State:     s.state,
		StepIndex: s.expansions,
		Path:      s.path,
	}
	if s.frontier != nil {
		snap.FrontierLen = s.frontier.Len()
	}
	if s.closed != nil {
		snap.ClosedLen = s.closed.Len()
	}
	return snap
}
