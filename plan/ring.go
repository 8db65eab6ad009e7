package plan

import "github.com/katalvlaran/gridnav/grid"

// recentRing is a fixed-capacity ring of recently visited cells. Once
// full, each push overwrites the oldest entry. It backs the descent
// cycle detector with CycleWindow capacity.
type recentRing struct {
	buf  []grid.Cell
	n    int // valid entries, ≤ cap
	next int // insertion cursor
}

// newRecentRing allocates a ring holding up to capacity cells.
func newRecentRing(capacity int) *recentRing {
	return &recentRing{buf: make([]grid.Cell, capacity)}
}

// push records q, evicting the oldest entry when full.
func (r *recentRing) push(q grid.Cell) {
	r.buf[r.next] = q
	r.next = (r.next + 1) % len(r.buf)
	if r.n < len(r.buf) {
		r.n++
	}
}

// contains reports whether q is among the recorded recent cells.
func (r *recentRing) contains(q grid.Cell) bool {
	for i := 0; i < r.n; i++ {
		if r.buf[i] == q {
			return true
		}
	}

	return false
}
