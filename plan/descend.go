package plan

import (
	"github.com/katalvlaran/gridnav/field"
	"github.com/katalvlaran/gridnav/grid"
)

// Descend walks the potential field from start by steepest descent,
// used as the fallback when Search fails.
//
// At each step the finite, in-bounds neighbor with the lowest field
// value is selected; ties prefer cardinal over diagonal moves, then
// lowest row, then lowest column (encoded by the fixed grid.Offsets8
// order with a strict-less comparison). The move is taken only when
// that neighbor's potential is strictly lower than the current cell's;
// otherwise the walk is at a local minimum.
//
// Two guards bound the walk: a CycleWindow-sized ring of recently
// visited cells (re-entering it fails with ErrLocalMinimum) and a hard
// cap of rows·cols·DescentStepFactor steps (ErrIterationLimit).
//
// On failure the partial path walked so far is returned alongside the
// error; the step count is always the number of moves taken.
func Descend(g *grid.Grid, f *field.Field, start, goal grid.Cell) ([]grid.Cell, int, error) {
	if err := checkEndpoints(g, f, start, goal); err != nil {
		return nil, 0, err
	}

	stepLimit := g.Rows() * g.Cols() * DescentStepFactor
	recent := newRecentRing(CycleWindow)
	recent.push(start)

	path := []grid.Cell{start}
	cur := start

	for steps := 0; steps < stepLimit; steps++ {
		if cur == goal {
			return path, steps, nil
		}

		next, ok := lowestNeighbor(g, f, cur)
		// No finite neighbor, or none strictly below the current cell:
		// the field offers no further descent direction.
		if !ok || f.At(next) >= f.At(cur) {
			return path, steps, ErrLocalMinimum
		}
		// Recent-history re-entry means the walk is circling a basin.
		if recent.contains(next) {
			return path, steps, ErrLocalMinimum
		}

		path = append(path, next)
		recent.push(next)
		cur = next
	}

	if cur == goal {
		return path, stepLimit, nil
	}

	return path, stepLimit, ErrIterationLimit
}

// lowestNeighbor returns the in-bounds, finite-potential neighbor of
// cur with the lowest field value. The Offsets8 iteration order plus
// strict-less comparison implements the deterministic tie-break:
// cardinals before diagonals, then lowest row, then lowest column.
func lowestNeighbor(g *grid.Grid, f *field.Field, cur grid.Cell) (grid.Cell, bool) {
	var best grid.Cell
	found := false
	for _, d := range grid.Offsets8() {
		q := grid.Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
		if !g.InBounds(q) || f.IsObstacle(q) {
			continue
		}
		if !found || f.At(q) < f.At(best) {
			best = q
			found = true
		}
	}

	return best, found
}
