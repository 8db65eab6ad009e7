// Package footprint inflates occupancy grids for rectangular robot
// geometry and checks footprint collisions.
package footprint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// ErrInvalidGeometry indicates a non-positive robot dimension.
var ErrInvalidGeometry = errors.New("footprint: robot dimensions must be positive")

// Inflate returns a derived grid in which every cell within the robot's
// half-extent rectangle of an original obstacle is itself an obstacle.
// Margins are mv=(h−1)/2 and mh=(w−1)/2; expansion is clamped at the
// grid borders. w=h=1 yields an exact copy. The input grid is never
// mutated.
//
// Returns ErrInvalidGeometry if w<1 or h<1.
// Complexity: O(rows×cols + obstacles×w×h).
func Inflate(g *grid.Grid, w, h int) (*grid.Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: w=%d h=%d", ErrInvalidGeometry, w, h)
	}

	mv := (h - 1) / 2
	mh := (w - 1) / 2

	roles := g.Roles()
	rows, cols := g.Rows(), g.Cols()

	// Mark the margin rectangle of every original obstacle. Iterating the
	// original obstacle list keeps the pass independent of marking order.
	for _, obs := range g.Obstacles() {
		for dr := -mv; dr <= mv; dr++ {
			for dc := -mh; dc <= mh; dc++ {
				r, c := obs.Row+dr, obs.Col+dc
				if r < 0 || r >= rows || c < 0 || c >= cols {
					continue
				}
				roles[r][c] = grid.RoleObstacle
			}
		}
	}

	return grid.FromRoles(roles, g.Start(), g.Goal())
}

// Collides reports whether a w×h footprint centred at center overlaps
// an obstacle cell or extends beyond the grid. Half-extents follow the
// original grid convention: h/2 above and below, w/2 left and right.
//
// Returns ErrInvalidGeometry if w<1 or h<1.
func Collides(g *grid.Grid, center grid.Cell, w, h int) (bool, error) {
	if w < 1 || h < 1 {
		return false, fmt.Errorf("%w: w=%d h=%d", ErrInvalidGeometry, w, h)
	}

	hh := h / 2
	hw := w / 2
	for dr := -hh; dr <= hh; dr++ {
		for dc := -hw; dc <= hw; dc++ {
			q := grid.Cell{Row: center.Row + dr, Col: center.Col + dc}
			if !g.InBounds(q) {
				return true, nil
			}
			if g.At(q) == grid.RoleObstacle {
				return true, nil
			}
		}
	}

	return false, nil
}
