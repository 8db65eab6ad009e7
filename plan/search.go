// Package plan implements the heuristic graph search strategy over an
// inflated grid and its potential field.
package plan

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridnav/field"
	"github.com/katalvlaran/gridnav/grid"
)

// sqrt2 is the diagonal step cost on the 8-connected grid.
var sqrt2 = math.Sqrt(2)

// Search finds a start→goal path on the 8-connected free cells of g,
// ordering expansion by f(n) = g(n) + field(n). The potential value is
// used directly as the heuristic: it is not admissible, so the result
// follows the field's guidance rather than a global-shortest guarantee.
//
// Determinism: the frontier is a min-heap keyed by f with ties broken
// by insertion sequence (first-seen-first-expanded); relaxation walks
// neighbors in the fixed grid.Offsets8 order.
//
// Returns the path and the count of distinct cells expanded. Fails with
// ErrInvalidEndpoints for unusable endpoints, ErrExhausted when the
// frontier empties, or ErrIterationLimit after rows·cols·SearchPopFactor
// frontier pops (the guard against pathological heuristic behavior
// reopening cells without bound).
//
// Complexity: O(N·d log N) time with N=rows·cols and d=8, O(N) memory.
func Search(g *grid.Grid, f *field.Field, start, goal grid.Cell) ([]grid.Cell, int, error) {
	// 1) Validate endpoints against the inflated grid and the field.
	if err := checkEndpoints(g, f, start, goal); err != nil {
		return nil, 0, err
	}

	// 2) Prepare per-cell state in flat row-major arrays keyed by
	//    grid.Index.
	n := g.Rows() * g.Cols()
	bestG := make([]float64, n) // best-known accumulated cost per cell
	prev := make([]int32, n)    // predecessor index, -1 when unset
	closed := make([]bool, n)   // expansion finalized
	for i := range bestG {
		bestG[i] = math.Inf(1)
		prev[i] = -1
	}

	startIdx := g.Index(start)
	goalIdx := g.Index(goal)
	bestG[startIdx] = 0

	// 3) Seed the frontier with the start cell. seq implements the
	//    deterministic insertion-order tie-break.
	pq := make(frontier, 0, n)
	heap.Init(&pq)
	var seq uint64
	heap.Push(&pq, &frontierItem{idx: startIdx, f: f.At(start), g: 0, seq: seq})

	popLimit := n * SearchPopFactor
	pops := 0
	expanded := 0

	// 4) Main loop: always expand the lowest-f unexpanded node.
	for pq.Len() > 0 {
		if pops >= popLimit {
			return nil, expanded, ErrIterationLimit
		}
		item := heap.Pop(&pq).(*frontierItem)
		pops++

		// Lazy decrease-key: skip stale entries for already-closed cells.
		if closed[item.idx] {
			continue
		}
		closed[item.idx] = true
		expanded++

		// 5) Success when the goal is popped from the frontier.
		if item.idx == goalIdx {
			return reconstruct(g, prev, goalIdx), expanded, nil
		}

		// 6) Relax the 8 neighbors in fixed offset order.
		cur := g.Coordinate(item.idx)
		for _, d := range grid.Offsets8() {
			next := grid.Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !g.InBounds(next) {
				continue
			}
			// Never touch cells carrying the infinity sentinel.
			if f.IsObstacle(next) {
				continue
			}

			stepCost := 1.0
			if grid.IsDiagonal(d) {
				stepCost = sqrt2
			}
			nextIdx := g.Index(next)
			newG := bestG[item.idx] + stepCost
			if newG >= bestG[nextIdx] {
				continue
			}

			bestG[nextIdx] = newG
			prev[nextIdx] = int32(item.idx)
			seq++
			heap.Push(&pq, &frontierItem{
				idx: nextIdx,
				f:   newG + f.At(next),
				g:   newG,
				seq: seq,
			})
		}
	}

	// 7) Frontier emptied without reaching the goal.
	return nil, expanded, ErrExhausted
}

// checkEndpoints validates that start and goal are distinct, in bounds,
// free on the inflated grid, and finite in the field.
func checkEndpoints(g *grid.Grid, f *field.Field, start, goal grid.Cell) error {
	if start == goal {
		return ErrInvalidEndpoints
	}
	if !g.IsFree(start) || !g.IsFree(goal) {
		return ErrInvalidEndpoints
	}
	if f.IsObstacle(start) || f.IsObstacle(goal) {
		return ErrInvalidEndpoints
	}

	return nil
}

// reconstruct walks the predecessor chain from goalIdx back to the
// start and returns the path in start→goal order.
func reconstruct(g *grid.Grid, prev []int32, goalIdx int) []grid.Cell {
	var rev []grid.Cell
	for at := goalIdx; at >= 0; at = int(prev[at]) {
		rev = append(rev, g.Coordinate(at))
	}
	path := make([]grid.Cell, len(rev))
	for i, q := range rev {
		path[len(rev)-1-i] = q
	}

	return path
}

// frontierItem is one frontier entry: a cell index with its f/g values
// and the insertion sequence used for deterministic tie-breaks.
type frontierItem struct {
	idx  int
	f, g float64
	seq  uint64
}

// frontier is a min-heap of *frontierItem ordered by f ascending, then
// by insertion sequence. It uses the lazy-decrease-key pattern: shorter
// rediscoveries push duplicates, and stale entries are skipped when
// popped (checked via closed[idx]).
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, breaking ties by insertion sequence so the
// first-seen entry is expanded first.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
