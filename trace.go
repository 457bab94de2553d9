package gridastar

import (
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// Trace follows parent links from goal back to the self-parented start cell.
// The returned path runs goal to start inclusive. A chain that hits an unset
// parent or is longer than the grid has cells yields ErrBrokenParentChain.
func Trace(cells *CellStore, goal Coordinate) ([]Coordinate, error) {
	parentOf := func(c Coordinate) (Coordinate, bool) {
		if c.X < 0 || c.X >= cells.width || c.Y < 0 || c.Y >= cells.height {
			return Unset, false
		}
		p := cells.At(c).Parent
		return p, p != Unset
	}
	path, ok := internal.WalkParents(parentOf, goal, cells.width*cells.height)
	if !ok {
		return nil, fmt.Errorf("%w: from %v", ErrBrokenParentChain, goal)
	}
	return path, nil
}
