// Package grid provides the immutable occupancy-grid model consumed by
// the inflation, field and planning stages.
package grid

import "fmt"

// Grid is a fixed rows×cols occupancy grid plus the start and goal
// coordinates extracted during construction. It is immutable once built.
type Grid struct {
	rows, cols int
	roles      []Role // row-major, rows*cols entries
	start      Cell
	goal       Cell
}

// New constructs a Grid from a non-empty, rectangular 2D slice of raw
// cell codes. The input is deep-copied; CodeStart and CodeGoal resolve
// to RoleFree with their positions recorded.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadCellCode,
// ErrMissingStart, ErrMissingGoal or ErrStartEqualsGoal.
// Complexity: O(rows×cols) time and memory.
func New(codes [][]int) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(codes), len(codes[0])
	g := &Grid{
		rows:  rows,
		cols:  cols,
		roles: make([]Role, rows*cols),
		start: Cell{-1, -1},
		goal:  Cell{-1, -1},
	}
	starts, goals := 0, 0
	for r, row := range codes {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for c, code := range row {
			switch code {
			case CodeFree:
				// zero value RoleFree
			case CodeObstacle:
				g.roles[r*cols+c] = RoleObstacle
			case CodeStart:
				starts++
				g.start = Cell{r, c}
			case CodeGoal:
				goals++
				g.goal = Cell{r, c}
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadCellCode, code, r, c)
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMissingStart, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMissingGoal, goals)
	}
	if g.start == g.goal {
		return nil, ErrStartEqualsGoal
	}

	return g, nil
}

// FromRoles constructs a Grid from typed roles plus explicit start and
// goal coordinates. Used by derived-grid producers such as footprint
// inflation. The roles slice-of-slices is deep-copied.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrOutOfBounds or
// ErrStartEqualsGoal.
func FromRoles(roles [][]Role, start, goal Cell) (*Grid, error) {
	if len(roles) == 0 || len(roles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(roles), len(roles[0])
	g := &Grid{rows: rows, cols: cols, roles: make([]Role, rows*cols), start: start, goal: goal}
	for r, row := range roles {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		copy(g.roles[r*cols:(r+1)*cols], row)
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, ErrOutOfBounds
	}
	if start == goal {
		return nil, ErrStartEqualsGoal
	}

	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start coordinate extracted at construction.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal coordinate extracted at construction.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether q lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(q Cell) bool {
	return q.Row >= 0 && q.Row < g.rows && q.Col >= 0 && q.Col < g.cols
}

// At returns the role of cell q. Out-of-bounds coordinates report
// RoleObstacle, so border handling never needs a separate bounds check.
func (g *Grid) At(q Cell) Role {
	if !g.InBounds(q) {
		return RoleObstacle
	}

	return g.roles[q.Row*g.cols+q.Col]
}

// IsFree reports whether q is in bounds and navigable.
func (g *Grid) IsFree(q Cell) bool {
	return g.InBounds(q) && g.roles[q.Row*g.cols+q.Col] == RoleFree
}

// Roles returns a deep copy of the role matrix. Mutating the copy does
// not affect the Grid.
func (g *Grid) Roles() [][]Role {
	out := make([][]Role, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]Role, g.cols)
		copy(out[r], g.roles[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// Obstacles returns the coordinates of all obstacle cells in row-major
// order. The order is deterministic by construction.
func (g *Grid) Obstacles() []Cell {
	var out []Cell
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.roles[r*g.cols+c] == RoleObstacle {
				out = append(out, Cell{r, c})
			}
		}
	}

	return out
}

// index maps q to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(q Cell) int {
	return q.Row*g.cols + q.Col
}

// Index exposes the row-major index of q for flat per-cell bookkeeping
// (best-cost arrays, visited bitmaps). q must be in bounds.
func (g *Grid) Index(q Cell) int { return g.index(q) }

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}
