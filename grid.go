package gridastar

import (
	"fmt"
)

// Coordinate is a 0-indexed cell position on a grid.
type Coordinate struct {
	X, Y int
}

// Unset is the parent value of a cell that has not been reached yet.
// It lies outside every grid, so it never collides with a real coordinate.
var Unset = Coordinate{X: -1, Y: -1}

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// GridModel is a read-only view of occupancy and bounds.
// IsBlocked is only defined for coordinates accepted by IsValid.
type GridModel interface {
	Width() int
	Height() int
	IsValid(x, y int) bool
	IsBlocked(x, y int) bool
}

// Grid is a rectangular occupancy grid stored row-major.
type Grid struct {
	width, height int
	blocked       []bool
}

// NewGrid returns an obstacle-free grid of the given size.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}, nil
}

// ParseGrid builds a grid from text rows. Row index is y, column index is x.
// '#' or '1' marks a blocked cell, '.' or '0' a free one.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#', '1':
				g.blocked[y*g.width+x] = true
			case '.', '0':
			default:
				return nil, fmt.Errorf("unknown cell %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) IsValid(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) IsBlocked(x, y int) bool {
	return g.blocked[y*g.width+x]
}

// SetBlocked marks c as occupied or free. Out of range coordinates are ignored.
// A grid must not be modified while a search over it is running.
func (g *Grid) SetBlocked(c Coordinate, blocked bool) {
	if !g.IsValid(c.X, c.Y) {
		return
	}
	g.blocked[c.Y*g.width+c.X] = blocked
}

// Rows renders the grid back into the text form accepted by ParseGrid.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	line := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			line[x] = '.'
			if g.IsBlocked(x, y) {
				line[x] = '#'
			}
		}
		rows[y] = string(line)
	}
	return rows
}
