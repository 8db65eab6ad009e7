// Package grid models a static 2D occupancy grid as an immutable value.
//
// A Grid is built from raw integer cell codes (CodeFree, CodeObstacle,
// CodeStart, CodeGoal) or directly from typed roles. Start and goal are
// extracted into coordinates during construction; the stored cells carry
// only the Free/Obstacle role. The grid is deep-copied on construction
// and never mutated afterwards, so one Grid may safely back any number
// of concurrent planning runs.
//
// The package also parses the plain-text map format: one row per line,
// whitespace-separated integer cell codes, exactly one start and one
// goal code per map.
//
// Neighborhoods are 8-connected. Offsets8 lists the neighbor offsets in
// the deterministic order every traversal in this module uses: the four
// cardinals first, then the four diagonals, each group sorted by row
// offset then column offset.
package grid
