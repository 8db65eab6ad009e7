package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/gridnav/grid"
)

//----------------------------------------------------------------------------//
// New and FromRoles Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and malformed inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		codes [][]int
		err   error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{2, 3}, {0}}, grid.ErrNonRectangular},
		{"BadCode", [][]int{{2, 7}, {0, 3}}, grid.ErrBadCellCode},
		{"NoStart", [][]int{{0, 0}, {0, 3}}, grid.ErrMissingStart},
		{"TwoStarts", [][]int{{2, 2}, {0, 3}}, grid.ErrMissingStart},
		{"NoGoal", [][]int{{2, 0}, {0, 0}}, grid.ErrMissingGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.codes)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.codes, err, tc.err)
			}
		})
	}
}

// TestNew_ExtractsEndpoints checks that start/goal codes become coordinates
// and their cells resolve to free space.
func TestNew_ExtractsEndpoints(t *testing.T) {
	g, err := grid.New([][]int{
		{2, 0, 1},
		{0, 1, 0},
		{1, 0, 3},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, want := g.Start(), (grid.Cell{Row: 0, Col: 0}); got != want {
		t.Errorf("Start() = %v; want %v", got, want)
	}
	if got, want := g.Goal(), (grid.Cell{Row: 2, Col: 2}); got != want {
		t.Errorf("Goal() = %v; want %v", got, want)
	}
	if !g.IsFree(g.Start()) || !g.IsFree(g.Goal()) {
		t.Error("start and goal cells must resolve to RoleFree")
	}
	if g.At(grid.Cell{Row: 0, Col: 2}) != grid.RoleObstacle {
		t.Error("obstacle cell lost its role")
	}
}

// TestFromRoles_DeepCopies ensures mutating the input after construction
// does not leak into the Grid.
func TestFromRoles_DeepCopies(t *testing.T) {
	roles := [][]grid.Role{
		{grid.RoleFree, grid.RoleFree},
		{grid.RoleFree, grid.RoleFree},
	}
	g, err := grid.FromRoles(roles, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1})
	if err != nil {
		t.Fatalf("FromRoles error: %v", err)
	}
	roles[0][1] = grid.RoleObstacle
	if g.At(grid.Cell{Row: 0, Col: 1}) != grid.RoleFree {
		t.Error("Grid shares storage with caller input")
	}
}

func TestFromRoles_Errors(t *testing.T) {
	free := [][]grid.Role{{grid.RoleFree, grid.RoleFree}}
	if _, err := grid.FromRoles(free, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 0}); !errors.Is(err, grid.ErrStartEqualsGoal) {
		t.Errorf("expected ErrStartEqualsGoal, got %v", err)
	}
	if _, err := grid.FromRoles(free, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 5, Col: 5}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{
		{2, 1, 0},
		{1, 0, 3},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, q := range valid {
		if !g.InBounds(q) {
			t.Errorf("InBounds(%v)=false; want true", q)
		}
	}
	invalid := []grid.Cell{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: -1}}
	for _, q := range invalid {
		if g.InBounds(q) {
			t.Errorf("InBounds(%v)=true; want false", q)
		}
	}
	// Out-of-bounds reads report RoleObstacle.
	if g.At(grid.Cell{Row: -1, Col: 0}) != grid.RoleObstacle {
		t.Error("out-of-bounds At should report RoleObstacle")
	}
}

// TestIndexRoundTrip verifies Index/Coordinate are inverses.
func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 3},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			q := grid.Cell{Row: r, Col: c}
			if got := g.Coordinate(g.Index(q)); got != q {
				t.Errorf("Coordinate(Index(%v)) = %v", q, got)
			}
		}
	}
}

// TestOffsets8_Order pins the deterministic neighbor ordering: cardinals
// before diagonals, each group by row offset then column offset.
func TestOffsets8_Order(t *testing.T) {
	want := [][2]int{
		{-1, 0}, {0, -1}, {0, 1}, {1, 0},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
	got := grid.Offsets8()
	if len(got) != len(want) {
		t.Fatalf("Offsets8 length = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Offsets8[%d] = %v; want %v", i, got[i], want[i])
		}
		if i < 4 && grid.IsDiagonal(got[i]) {
			t.Errorf("Offsets8[%d] = %v should be cardinal", i, got[i])
		}
		if i >= 4 && !grid.IsDiagonal(got[i]) {
			t.Errorf("Offsets8[%d] = %v should be diagonal", i, got[i])
		}
	}
}

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

func TestParse_Valid(t *testing.T) {
	text := `
2 0 0
0 1 0
0 0 3
`
	g, err := grid.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d; want 3x3", g.Rows(), g.Cols())
	}
	if g.At(grid.Cell{Row: 1, Col: 1}) != grid.RoleObstacle {
		t.Error("obstacle missing after Parse")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"NonInteger", "2 x 3", grid.ErrParse},
		{"Ragged", "2 0 0\n0 3", grid.ErrNonRectangular},
		{"Empty", "\n\n", grid.ErrEmptyGrid},
		{"NoGoal", "2 0\n0 0", grid.ErrMissingGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(strings.NewReader(tc.text))
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
		})
	}
}
