package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridastar"
)

func TestParseDefaults(t *testing.T) {
	sc, err := Parse([]byte(`
rows:
  - "..."
  - ".#."
start: [0, 0]
goal: [2, 1]
`))
	require.NoError(t, err)
	assert.Equal(t, HeuristicEuclidean, sc.Search.Heuristic)
	assert.Equal(t, FrontierFIFO, sc.Search.Frontier)
	assert.Equal(t, gridastar.Coordinate{X: 2, Y: 1}, sc.Goal.Coordinate())
	assert.Empty(t, sc.Options())
}

func TestParseJSON(t *testing.T) {
	sc, err := Parse([]byte(`{
  "name": "json",
  "rows": ["..", ".."],
  "start": [0, 0],
  "goal": [1, 1],
  "search": {"frontier": "best-first", "heuristic": "manhattan"}
}`))
	require.NoError(t, err)
	assert.Equal(t, "json", sc.Name)
	assert.Len(t, sc.Options(), 2)
}

func TestParseInvalid(t *testing.T) {
	testCases := map[string]string{
		"no-rows":           "start: [0, 0]\ngoal: [1, 1]\n",
		"bad-heuristic":     "rows: [\"..\"]\nsearch: {heuristic: chebyshev}\n",
		"bad-frontier":      "rows: [\"..\"]\nsearch: {frontier: lifo}\n",
		"short-coordinate":  "rows: [\"..\"]\nstart: [0]\n",
		"not-a-mapping":     "- 1\n- 2\n",
		"wrong-field-types": "rows: 3\n",
	}
	for name, doc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rows:
  - "...."
  - ".##."
  - "...."
start: [0, 1]
goal: [3, 1]
`), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, sc.Name, "name defaults to the file path")

	grid, res, err := sc.Run()
	require.NoError(t, err)
	assert.Equal(t, 4, grid.Width())
	assert.Equal(t, gridastar.OutcomeFound, res.Outcome)
	assert.Len(t, res.Path, 6)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRunRejected(t *testing.T) {
	sc, err := Parse([]byte("rows: [\"#.\"]\nstart: [0, 0]\ngoal: [1, 0]\n"))
	require.NoError(t, err)
	_, _, err = sc.Run()
	assert.ErrorIs(t, err, gridastar.ErrBlockedStart)

	sc, err = Parse([]byte("rows: [\"..\", \".\"]\n"))
	require.NoError(t, err)
	_, _, err = sc.Run()
	assert.ErrorIs(t, err, gridastar.ErrInvalidDimensions)
}
