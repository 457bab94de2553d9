package gridastar

import "math"

// neighborOffsets is the expansion order: left, right, up, down.
// With a FIFO frontier this order decides between equally long routes.
var neighborOffsets = [4]Coordinate{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// stepCost is the cost of moving to an orthogonal neighbour.
const stepCost = 1.0

// relaxProposal is the candidate update for a neighbour reached from current.
type relaxProposal struct {
	from, to Coordinate
	g, h, f  float64
}

// expand processes one neighbour of current and reports whether it is the goal.
// The goal only receives a parent link; its scores stay at sentinel.
func (s *Search) expand(current, neighbor Coordinate) bool {
	if !s.grid.IsValid(neighbor.X, neighbor.Y) {
		return false
	}
	if neighbor == s.goal {
		cell := s.cells.At(neighbor)
		cell.Parent = current
		s.cells.Set(neighbor.X, neighbor.Y, cell)
		return true
	}
	if s.closed.IsClosed(neighbor.X, neighbor.Y) || s.grid.IsBlocked(neighbor.X, neighbor.Y) {
		return false
	}

	p := s.propose(current, neighbor)
	stored := s.cells.At(neighbor)
	if !math.IsInf(stored.F, 1) && p.f >= stored.F {
		return false
	}
	s.cells.Set(neighbor.X, neighbor.Y, Cell{Parent: p.from, G: p.g, H: p.h, F: p.f})
	s.frontier.Push(p.f, p.to)
	return false
}

func (s *Search) propose(current, neighbor Coordinate) relaxProposal {
	g := s.cells.At(current).G + stepCost
	h := s.heuristic(neighbor, s.goal)
	return relaxProposal{from: current, to: neighbor, g: g, h: h, f: g + h}
}
