package report

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridastar"
)

func TestNew(t *testing.T) {
	grid, err := gridastar.ParseGrid([]string{"...", "#..", "#.#"})
	require.NoError(t, err)
	start, goal := gridastar.Coordinate{X: 0, Y: 0}, gridastar.Coordinate{X: 1, Y: 2}
	res, err := gridastar.FindPath(grid, start, goal)
	require.NoError(t, err)

	r := New("small", grid, start, goal, res, Options{IncludeCells: true})
	assert.Equal(t, "found", r.Outcome)
	assert.Equal(t, 3.0, r.Cost)
	if diff := cmp.Diff([][2]int{{1, 2}, {1, 1}, {1, 0}, {0, 0}}, r.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	byPos := map[[2]int]Cell{}
	for _, c := range r.Cells {
		byPos[[2]int{c.X, c.Y}] = c
	}
	startCell := byPos[[2]int{0, 0}]
	require.NotNil(t, startCell.F)
	assert.Zero(t, *startCell.F)
	assert.Equal(t, &[2]int{0, 0}, startCell.Parent)
	assert.True(t, startCell.Closed)

	goalCell, ok := byPos[[2]int{1, 2}]
	require.True(t, ok, "goal has a parent so it is reported")
	assert.Nil(t, goalCell.F, "sentinel scores are omitted")
	assert.True(t, goalCell.OnPath)
	assert.Equal(t, &[2]int{1, 1}, goalCell.Parent)

	_, ok = byPos[[2]int{0, 1}]
	assert.False(t, ok, "blocked cells are untouched")

	_, err = json.Marshal(r)
	require.NoError(t, err)
}

func TestNewWithoutCells(t *testing.T) {
	grid, err := gridastar.NewGrid(2, 2)
	require.NoError(t, err)
	c := gridastar.Coordinate{X: 1, Y: 1}
	res, err := gridastar.FindPath(grid, c, c)
	require.NoError(t, err)

	r := New("", grid, c, c, res, Options{IncludeCells: true})
	assert.Equal(t, "trivial", r.Outcome)
	assert.Empty(t, r.Path)
	assert.NotNil(t, r.Path, "path encodes as an empty list")
	assert.Nil(t, r.Cells)
}

func TestFailed(t *testing.T) {
	r := Failed("x", errors.New("boom"))
	assert.Equal(t, "error", r.Outcome)
	assert.Equal(t, "boom", r.Error)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","width":0,"height":0,"start":[0,0],"goal":[0,0],"outcome":"error","cost":0,"expansions":0,"path":[],"error":"boom"}`, string(data))
}
