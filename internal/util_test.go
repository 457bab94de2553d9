package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkParents(t *testing.T) {
	parents := map[string]string{
		"goal":  "b",
		"b":     "a",
		"a":     "start",
		"start": "start",
		"loop":  "loop2",
		"loop2": "loop",
	}
	parentOf := func(n string) (string, bool) {
		p, ok := parents[n]
		return p, ok
	}

	path, ok := WalkParents(parentOf, "goal", 10)
	assert.True(t, ok)
	assert.Equal(t, []string{"goal", "b", "a", "start"}, path)

	_, ok = WalkParents(parentOf, "goal", 3)
	assert.False(t, ok, "limit shorter than the chain")

	_, ok = WalkParents(parentOf, "loop", 100)
	assert.False(t, ok, "cycle without a self-parented node")

	path, ok = WalkParents(parentOf, "orphan", 5)
	assert.False(t, ok)
	assert.Equal(t, []string{"orphan"}, path)
}
