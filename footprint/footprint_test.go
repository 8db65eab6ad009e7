package footprint_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridnav/footprint"
	"github.com/katalvlaran/gridnav/grid"
)

// mustGrid builds a grid from raw codes or fails the test.
func mustGrid(t *testing.T, codes [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(codes)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

//----------------------------------------------------------------------------//
// Inflate Tests
//----------------------------------------------------------------------------//

func TestInflate_InvalidGeometry(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0},
		{0, 3},
	})
	for _, wh := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		if _, err := footprint.Inflate(g, wh[0], wh[1]); !errors.Is(err, footprint.ErrInvalidGeometry) {
			t.Errorf("Inflate(w=%d,h=%d) error = %v; want ErrInvalidGeometry", wh[0], wh[1], err)
		}
	}
}

// TestInflate_UnitRobotIsCopy checks that a 1×1 robot leaves the grid
// unchanged while still producing an independent value.
func TestInflate_UnitRobotIsCopy(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 0},
		{0, 1, 0},
		{0, 0, 3},
	})
	inf, err := footprint.Inflate(g, 1, 1)
	if err != nil {
		t.Fatalf("Inflate error: %v", err)
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			q := grid.Cell{Row: r, Col: c}
			if g.At(q) != inf.At(q) {
				t.Errorf("cell %v changed under 1×1 inflation", q)
			}
		}
	}
	if inf.Start() != g.Start() || inf.Goal() != g.Goal() {
		t.Error("endpoints must survive inflation")
	}
}

// TestInflate_MarginInvariant asserts both directions of the inflation
// invariant: every cell within the margin rectangle of an original
// obstacle is an obstacle, and no cell outside every margin rectangle
// became one.
func TestInflate_MarginInvariant(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 3},
	})
	const w, h = 3, 3 // margins mv=mh=1
	inf, err := footprint.Inflate(g, w, h)
	if err != nil {
		t.Fatalf("Inflate error: %v", err)
	}

	mv, mh := (h-1)/2, (w-1)/2
	obstacles := g.Obstacles()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			q := grid.Cell{Row: r, Col: c}
			covered := false
			for _, obs := range obstacles {
				dr, dc := r-obs.Row, c-obs.Col
				if dr >= -mv && dr <= mv && dc >= -mh && dc <= mh {
					covered = true
					break
				}
			}
			switch {
			case covered && inf.At(q) != grid.RoleObstacle:
				t.Errorf("cell %v inside margin must be obstacle", q)
			case !covered && inf.At(q) != g.At(q):
				t.Errorf("cell %v outside all margins must keep its role", q)
			}
		}
	}
}

// TestInflate_ClampsAtBorders places an obstacle in a corner; inflation
// must clip at the boundary without error or wraparound.
func TestInflate_ClampsAtBorders(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 0},
		{0, 0, 2},
		{0, 3, 0},
	})
	inf, err := footprint.Inflate(g, 3, 3)
	if err != nil {
		t.Fatalf("Inflate error: %v", err)
	}
	wantObstacle := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	for _, q := range wantObstacle {
		if inf.At(q) != grid.RoleObstacle {
			t.Errorf("cell %v should be inflated obstacle", q)
		}
	}
	// Far corner must stay free — no wraparound.
	if inf.At(grid.Cell{Row: 2, Col: 2}) != grid.RoleFree {
		t.Error("cell (2,2) must remain free")
	}
}

//----------------------------------------------------------------------------//
// Collides Tests
//----------------------------------------------------------------------------//

func TestCollides(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 3},
	})

	cases := []struct {
		name   string
		center grid.Cell
		w, h   int
		want   bool
	}{
		{"UnitFree", grid.Cell{Row: 0, Col: 0}, 1, 1, false},
		{"UnitOnObstacle", grid.Cell{Row: 1, Col: 2}, 1, 1, true},
		{"FootprintTouchesObstacle", grid.Cell{Row: 2, Col: 2}, 3, 3, true},
		{"FootprintClear", grid.Cell{Row: 2, Col: 0}, 1, 3, false},
		{"FootprintLeavesGrid", grid.Cell{Row: 0, Col: 0}, 3, 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := footprint.Collides(g, tc.center, tc.w, tc.h)
			if err != nil {
				t.Fatalf("Collides error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Collides(%v,%dx%d) = %v; want %v", tc.center, tc.w, tc.h, got, tc.want)
			}
		})
	}

	if _, err := footprint.Collides(g, grid.Cell{}, 0, 1); !errors.Is(err, footprint.ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}
