// Package field computes attractive/repulsive navigation potentials
// over inflated occupancy grids.
package field

import (
	"math"

	"github.com/katalvlaran/gridnav/grid"
)

// Field is a dense rows×cols scalar potential. Free cells hold finite
// non-negative values; obstacle cells hold +Inf. It is immutable once
// built and safe for concurrent reads.
type Field struct {
	rows, cols int
	goal       grid.Cell
	vals       []float64 // row-major
}

// Build computes the potential field for the inflated grid g toward
// goal, applying any number of functional Options.
//
// For each free cell the value is the superposition of the quadratic
// attractive well and the bounded repulsive term (see package doc).
// d_obs is the exact Euclidean distance to the nearest obstacle cell,
// found by scanning the precollected obstacle list; with no obstacles
// the repulsive term vanishes everywhere.
//
// Returns ErrNilGrid, ErrGoalOutOfBounds, ErrGoalOnObstacle or
// ErrOptionViolation.
// Complexity: O(rows·cols·obstacles) time, O(rows·cols) memory.
func Build(g *grid.Grid, goal grid.Cell, opts ...Option) (*Field, error) {
	// 1) Build and validate Options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate grid and goal.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(goal) {
		return nil, ErrGoalOutOfBounds
	}
	if g.At(goal) == grid.RoleObstacle {
		return nil, ErrGoalOnObstacle
	}

	rows, cols := g.Rows(), g.Cols()
	f := &Field{
		rows: rows,
		cols: cols,
		goal: goal,
		vals: make([]float64, rows*cols),
	}

	// 3) Precollect obstacles once; row-major order keeps the nearest-
	//    obstacle scan deterministic.
	obstacles := g.Obstacles()

	inf := math.Inf(1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			q := grid.Cell{Row: r, Col: c}
			if g.At(q) == grid.RoleObstacle {
				f.vals[r*cols+c] = inf
				continue
			}

			// Attractive component: quadratic well toward the goal.
			dGoal := euclid(q, goal)
			u := 0.5 * o.AttractiveGain * dGoal * dGoal

			// Repulsive component: active only within rho0 of the
			// nearest obstacle.
			if len(obstacles) > 0 {
				dObs := nearestObstacle(q, obstacles)
				if dObs <= o.InfluenceRadius {
					diff := 1.0/dObs - 1.0/o.InfluenceRadius
					u += 0.5 * o.RepulsiveGain * diff * diff
				}
			}

			f.vals[r*cols+c] = u
		}
	}

	return f, nil
}

// nearestObstacle returns the exact Euclidean distance from q to the
// closest obstacle cell. obstacles must be non-empty.
func nearestObstacle(q grid.Cell, obstacles []grid.Cell) float64 {
	// Compare squared distances; a single sqrt at the end keeps the
	// result exact and the scan cheap.
	best := math.MaxFloat64
	for _, obs := range obstacles {
		dr := float64(q.Row - obs.Row)
		dc := float64(q.Col - obs.Col)
		if d2 := dr*dr + dc*dc; d2 < best {
			best = d2
		}
	}

	return math.Sqrt(best)
}

// euclid returns the Euclidean distance between two cells.
func euclid(a, b grid.Cell) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// Rows returns the field height.
func (f *Field) Rows() int { return f.rows }

// Cols returns the field width.
func (f *Field) Cols() int { return f.cols }

// Goal returns the goal cell the field was built toward.
func (f *Field) Goal() grid.Cell { return f.goal }

// At returns the potential at q. Out-of-bounds coordinates report +Inf,
// mirroring grid.At's obstacle convention.
func (f *Field) At(q grid.Cell) float64 {
	if q.Row < 0 || q.Row >= f.rows || q.Col < 0 || q.Col >= f.cols {
		return math.Inf(1)
	}

	return f.vals[q.Row*f.cols+q.Col]
}

// IsObstacle reports whether q carries the +Inf obstacle sentinel
// (or lies out of bounds).
func (f *Field) IsObstacle(q grid.Cell) bool {
	return math.IsInf(f.At(q), 1)
}

// Values returns a deep copy of the potential matrix for callers that
// render or export the field.
func (f *Field) Values() [][]float64 {
	out := make([][]float64, f.rows)
	for r := 0; r < f.rows; r++ {
		out[r] = make([]float64, f.cols)
		copy(out[r], f.vals[r*f.cols:(r+1)*f.cols])
	}

	return out
}
