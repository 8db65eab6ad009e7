// Package grid defines the occupancy-grid types and sentinel errors
// shared by every planning stage in github.com/katalvlaran/gridnav.
package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCellCode indicates a cell code outside {0,1,2,3}.
	ErrBadCellCode = errors.New("grid: unknown cell code")
	// ErrMissingStart indicates the map does not contain exactly one start cell.
	ErrMissingStart = errors.New("grid: map must contain exactly one start cell")
	// ErrMissingGoal indicates the map does not contain exactly one goal cell.
	ErrMissingGoal = errors.New("grid: map must contain exactly one goal cell")
	// ErrStartEqualsGoal indicates start and goal occupy the same cell.
	ErrStartEqualsGoal = errors.New("grid: start and goal must differ")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Raw cell codes accepted by New and Parse.
const (
	// CodeFree marks navigable free space.
	CodeFree = 0
	// CodeObstacle marks an impassable obstacle.
	CodeObstacle = 1
	// CodeStart marks the initial robot position (stored as a coordinate, not a role).
	CodeStart = 2
	// CodeGoal marks the target position (stored as a coordinate, not a role).
	CodeGoal = 3
)

// Role is the resolved occupancy role of one cell.
// Start and goal cells resolve to RoleFree; their positions live in
// Grid.Start and Grid.Goal.
type Role uint8

const (
	// RoleFree is navigable free space.
	RoleFree Role = iota
	// RoleObstacle is impassable.
	RoleObstacle
)

// Cell addresses one grid cell by row and column, both zero-based.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Offsets8 lists the 8-connected neighbor offsets {dRow,dCol} in the
// deterministic order used by all traversals: cardinals before
// diagonals, each group ordered by row offset then column offset.
// Callers must not modify the returned slice.
func Offsets8() [][2]int {
	return offsets8
}

// IsDiagonal reports whether the offset {dRow,dCol} is a diagonal move.
func IsDiagonal(d [2]int) bool {
	return d[0] != 0 && d[1] != 0
}

var offsets8 = [][2]int{
	{-1, 0}, {0, -1}, {0, 1}, {1, 0}, // cardinals
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, // diagonals
}
