// Package report converts search results into a serialisable form.
//
// Scores still at their +Inf sentinel are omitted, since JSON has no
// representation for infinity.
package report

import (
	"math"

	"github.com/pdrpinto/gridastar"
)

// Report is the outward view of one search.
type Report struct {
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Width      int      `json:"width" yaml:"width"`
	Height     int      `json:"height" yaml:"height"`
	Start      [2]int   `json:"start" yaml:"start"`
	Goal       [2]int   `json:"goal" yaml:"goal"`
	Outcome    string   `json:"outcome" yaml:"outcome"`
	Cost       float64  `json:"cost" yaml:"cost"`
	Expansions int      `json:"expansions" yaml:"expansions"`
	Path       [][2]int `json:"path" yaml:"path"`
	Cells      []Cell   `json:"cells,omitempty" yaml:"cells,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Cell is the bookkeeping for one cell the search touched.
type Cell struct {
	X       int      `json:"x" yaml:"x"`
	Y       int      `json:"y" yaml:"y"`
	Blocked bool     `json:"blocked,omitempty" yaml:"blocked,omitempty"`
	OnPath  bool     `json:"onPath,omitempty" yaml:"onPath,omitempty"`
	Closed  bool     `json:"closed,omitempty" yaml:"closed,omitempty"`
	Parent  *[2]int  `json:"parent,omitempty" yaml:"parent,omitempty"`
	F       *float64 `json:"f,omitempty" yaml:"f,omitempty"`
	G       *float64 `json:"g,omitempty" yaml:"g,omitempty"`
	H       *float64 `json:"h,omitempty" yaml:"h,omitempty"`
}

// Options controls what goes into a report.
type Options struct {
	// IncludeCells adds an entry for every reached or closed cell.
	IncludeCells bool
}

// New builds a report for res, which was computed over grid.
func New(name string, grid gridastar.GridModel, start, goal gridastar.Coordinate, res gridastar.Result, opts Options) Report {
	r := Report{
		Name:       name,
		Width:      grid.Width(),
		Height:     grid.Height(),
		Start:      pair(start),
		Goal:       pair(goal),
		Outcome:    res.Outcome.String(),
		Cost:       res.Cost(),
		Expansions: res.Expansions,
		Path:       make([][2]int, 0, len(res.Path)),
	}
	for _, c := range res.Path {
		r.Path = append(r.Path, pair(c))
	}
	if opts.IncludeCells && res.Cells != nil {
		r.Cells = cells(grid, res)
	}
	return r
}

// Failed builds a report for a search that was rejected before it ran.
func Failed(name string, err error) Report {
	return Report{Name: name, Outcome: "error", Path: [][2]int{}, Error: err.Error()}
}

func cells(grid gridastar.GridModel, res gridastar.Result) []Cell {
	var out []Cell
	for y := 0; y < res.Cells.Height(); y++ {
		for x := 0; x < res.Cells.Width(); x++ {
			c := res.Cells.Get(x, y)
			closed := res.Closed != nil && res.Closed.IsClosed(x, y)
			if !c.Reached() && !closed {
				continue
			}
			coord := gridastar.Coordinate{X: x, Y: y}
			rc := Cell{
				X:       x,
				Y:       y,
				Blocked: grid.IsBlocked(x, y),
				OnPath:  res.OnPath(coord),
				Closed:  closed,
				F:       finite(c.F),
				G:       finite(c.G),
				H:       finite(c.H),
			}
			if c.Reached() {
				p := pair(c.Parent)
				rc.Parent = &p
			}
			out = append(out, rc)
		}
	}
	return out
}

func pair(c gridastar.Coordinate) [2]int { return [2]int{c.X, c.Y} }

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
