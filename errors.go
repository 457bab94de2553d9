package gridastar

import "errors"

// Precondition errors, reported before any search state is built.
var (
	ErrInvalidStart = errors.New("gridastar: invalid start cell")
	ErrInvalidGoal  = errors.New("gridastar: invalid goal cell")
	ErrBlockedStart = errors.New("gridastar: blocked start cell")
	ErrBlockedGoal  = errors.New("gridastar: blocked goal cell")
)

var (
	// ErrInvalidDimensions is returned when a grid cannot be built with the requested shape.
	ErrInvalidDimensions = errors.New("gridastar: invalid grid dimensions")

	// ErrBrokenParentChain is returned by Trace when parent links do not lead back to a self-parented cell.
	ErrBrokenParentChain = errors.New("gridastar: broken parent chain")
)
