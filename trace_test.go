package gridastar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridastar"
)

func linkParents(s *gridastar.CellStore, links map[xy]xy) {
	for c, p := range links {
		s.Set(c.X, c.Y, gridastar.Cell{Parent: p})
	}
}

func TestTrace(t *testing.T) {
	s := gridastar.NewCellStore(3, 3)
	linkParents(s, map[xy]xy{
		{0, 0}: {0, 0},
		{0, 1}: {0, 0},
		{1, 1}: {0, 1},
		{1, 2}: {1, 1},
	})

	path, err := gridastar.Trace(s, xy{1, 2})
	require.NoError(t, err)
	if diff := cmp.Diff([]xy{{1, 2}, {1, 1}, {0, 1}, {0, 0}}, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	path, err = gridastar.Trace(s, xy{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []xy{{0, 0}}, path)
}

func TestTraceBrokenChains(t *testing.T) {
	testCases := map[string]struct {
		links map[xy]xy
		goal  xy
	}{
		"cycle": {
			links: map[xy]xy{{0, 0}: {1, 0}, {1, 0}: {1, 1}, {1, 1}: {0, 0}},
			goal:  xy{0, 0},
		},
		"unset-parent": {
			links: map[xy]xy{{1, 1}: {1, 0}},
			goal:  xy{1, 1},
		},
		"parent-outside-grid": {
			links: map[xy]xy{{0, 0}: {5, 5}},
			goal:  xy{0, 0},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			s := gridastar.NewCellStore(2, 2)
			linkParents(s, tc.links)
			_, err := gridastar.Trace(s, tc.goal)
			assert.ErrorIs(t, err, gridastar.ErrBrokenParentChain)
		})
	}
}

func TestTraceLongestChain(t *testing.T) {
	// a snake through every cell is exactly W*H long
	s := gridastar.NewCellStore(3, 2)
	order := []xy{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}}
	links := map[xy]xy{order[0]: order[0]}
	for i := 1; i < len(order); i++ {
		links[order[i]] = order[i-1]
	}
	linkParents(s, links)

	path, err := gridastar.Trace(s, xy{0, 1})
	require.NoError(t, err)
	assert.Len(t, path, 6)
}
