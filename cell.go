package gridastar

import "math"

// Cell holds the search bookkeeping for one grid position.
type Cell struct {
	Parent Coordinate
	G      float64
	H      float64
	F      float64
}

// Reached reports whether the search has assigned a parent to the cell.
func (c Cell) Reached() bool { return c.Parent != Unset }

func unreachedCell() Cell {
	inf := math.Inf(1)
	return Cell{Parent: Unset, G: inf, H: inf, F: inf}
}

// CellStore owns one Cell per grid position, row-major.
// Get and Set do not check bounds.
type CellStore struct {
	width, height int
	cells         []Cell
}

// NewCellStore allocates a store with every cell at its sentinel values.
func NewCellStore(width, height int) *CellStore {
	s := &CellStore{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range s.cells {
		s.cells[i] = unreachedCell()
	}
	return s
}

func (s *CellStore) Width() int  { return s.width }
func (s *CellStore) Height() int { return s.height }

func (s *CellStore) Get(x, y int) Cell { return s.cells[y*s.width+x] }

func (s *CellStore) Set(x, y int, c Cell) { s.cells[y*s.width+x] = c }

// At is Get keyed by coordinate.
func (s *CellStore) At(c Coordinate) Cell { return s.Get(c.X, c.Y) }

// Clone returns an independent copy of the store.
func (s *CellStore) Clone() *CellStore {
	c := &CellStore{width: s.width, height: s.height, cells: make([]Cell, len(s.cells))}
	copy(c.cells, s.cells)
	return c
}

// ClosedSet marks cells that have been expanded. Cells are never reopened.
type ClosedSet struct {
	width  int
	closed []bool
	count  int
}

func NewClosedSet(width, height int) *ClosedSet {
	return &ClosedSet{width: width, closed: make([]bool, width*height)}
}

// Close marks (x, y) closed. Closing an already closed cell is a no-op.
func (s *ClosedSet) Close(x, y int) {
	i := y*s.width + x
	if s.closed[i] {
		return
	}
	s.closed[i] = true
	s.count++
}

func (s *ClosedSet) IsClosed(x, y int) bool { return s.closed[y*s.width+x] }

// Len is the number of closed cells.
func (s *ClosedSet) Len() int { return s.count }

func (s *ClosedSet) Clone() *ClosedSet {
	c := &ClosedSet{width: s.width, closed: make([]bool, len(s.closed)), count: s.count}
	copy(c.closed, s.closed)
	return c
}
