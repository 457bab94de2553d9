// Package gridastar provides shortest-path search over rectangular occupancy grids.
//
// It exposes two main entry points:
//
//   - FindPath: run the search to completion and get a Result.
//   - Search: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Movement is four-directional with unit step cost and a Euclidean estimate
// towards the goal. By default the frontier is serviced in insertion order,
// so neighbours are explored breadth-first in the order left, right, up, down;
// WithBestFirst switches to a score-ordered frontier. Every Result carries the
// per-cell scores and parent links used to derive the path, which runs from
// goal back to start.
package gridastar
