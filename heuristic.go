package gridastar

import "math"

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from, to Coordinate) float64

// Euclidean is the straight-line distance between two cells.
func Euclidean(from, to Coordinate) float64 {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan is the four-directional step distance between two cells.
func Manhattan(from, to Coordinate) float64 {
	dx := to.X - from.X
	if dx < 0 {
		dx = -dx
	}
	dy := to.Y - from.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}
