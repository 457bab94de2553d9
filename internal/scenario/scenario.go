// Package scenario loads grid search scenarios from YAML or JSON files.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridastar"
)

// Frontier orderings accepted in scenario files.
const (
	FrontierFIFO      = "fifo"
	FrontierBestFirst = "best-first"
)

// Heuristics accepted in scenario files.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicManhattan = "manhattan"
)

// Scenario is a grid plus the cells to search between.
type Scenario struct {
	Name   string       `yaml:"name" json:"name"`
	Rows   []string     `yaml:"rows" json:"rows"`
	Start  Point        `yaml:"start" json:"start"`
	Goal   Point        `yaml:"goal" json:"goal"`
	Search SearchConfig `yaml:"search" json:"search"`
}

// Point is an [x, y] pair.
type Point [2]int

func (p Point) Coordinate() gridastar.Coordinate {
	return gridastar.Coordinate{X: p[0], Y: p[1]}
}

// SearchConfig selects engine options.
type SearchConfig struct {
	Heuristic string `yaml:"heuristic" json:"heuristic"`
	Frontier  string `yaml:"frontier" json:"frontier"`
}

// Default returns a scenario with the default search configuration and no grid.
func Default() *Scenario {
	return &Scenario{
		Search: SearchConfig{
			Heuristic: HeuristicEuclidean,
			Frontier:  FrontierFIFO,
		},
	}
}

// Load reads a scenario from path. JSON files parse as YAML.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Validate checks the parts of a scenario that do not depend on the grid contents.
// Start and goal placement are checked by the search itself.
func (s *Scenario) Validate() error {
	var errs []error
	if len(s.Rows) == 0 {
		errs = append(errs, errors.New("rows: at least one row is required"))
	}
	switch s.Search.Heuristic {
	case HeuristicEuclidean, HeuristicManhattan:
	default:
		errs = append(errs, fmt.Errorf("search.heuristic: unknown value %q", s.Search.Heuristic))
	}
	switch s.Search.Frontier {
	case FrontierFIFO, FrontierBestFirst:
	default:
		errs = append(errs, fmt.Errorf("search.frontier: unknown value %q", s.Search.Frontier))
	}
	return errors.Join(errs...)
}

// Grid parses the scenario rows.
func (s *Scenario) Grid() (*gridastar.Grid, error) {
	return gridastar.ParseGrid(s.Rows)
}

// Options translates the search configuration into engine options.
func (s *Scenario) Options() []gridastar.Option {
	var opts []gridastar.Option
	if s.Search.Heuristic == HeuristicManhattan {
		opts = append(opts, gridastar.WithHeuristic(gridastar.Manhattan))
	}
	if s.Search.Frontier == FrontierBestFirst {
		opts = append(opts, gridastar.WithBestFirst())
	}
	return opts
}

// Run builds the grid and searches it.
func (s *Scenario) Run(extra ...gridastar.Option) (*gridastar.Grid, gridastar.Result, error) {
	grid, err := s.Grid()
	if err != nil {
		return nil, gridastar.Result{}, err
	}
	opts := append(s.Options(), extra...)
	res, err := gridastar.FindPath(grid, s.Start.Coordinate(), s.Goal.Coordinate(), opts...)
	if err != nil {
		return grid, gridastar.Result{}, err
	}
	return grid, res, nil
}
