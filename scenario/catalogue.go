package scenario

import "github.com/katalvlaran/gridnav/plan"

// Catalogue returns the built-in scenario set in execution order. The
// returned slice is freshly allocated; callers may reorder or filter.
func Catalogue() []Scenario {
	return []Scenario{
		{
			Name:        "open",
			Description: "empty 5×5 grid, diagonal run",
			RobotWidth:  1, RobotHeight: 1,
			Expect: plan.StatusSuccess,
			MapText: `
2 0 0 0 0
0 0 0 0 0
0 0 0 0 0
0 0 0 0 0
0 0 0 0 3
`,
		},
		{
			Name:        "wall-gap",
			Description: "horizontal wall with a single gap",
			RobotWidth:  1, RobotHeight: 1,
			Expect: plan.StatusSuccess,
			MapText: `
2 0 0 0 0
0 0 0 0 0
1 1 1 0 1
0 0 0 0 0
0 0 0 0 3
`,
		},
		{
			Name:        "corridor",
			Description: "3×3 robot through a corridor exactly wide enough",
			RobotWidth:  3, RobotHeight: 3,
			Expect: plan.StatusSuccess,
			MapText: `
1 1 1 1 1 1 1 1 1
1 1 1 1 1 1 1 1 1
0 0 0 0 0 0 0 0 0
2 0 0 0 0 0 0 0 3
0 0 0 0 0 0 0 0 0
1 1 1 1 1 1 1 1 1
1 1 1 1 1 1 1 1 1
`,
		},
		{
			Name:        "maze",
			Description: "two offset walls forcing an S-shaped route",
			RobotWidth:  1, RobotHeight: 1,
			Expect: plan.StatusSuccess,
			MapText: `
2 0 1 0 0 0 0
0 0 1 0 1 0 0
0 0 1 0 1 0 0
0 0 1 0 1 0 0
0 0 1 0 1 0 0
0 0 0 0 1 0 0
0 0 1 0 1 0 3
`,
		},
		{
			Name:        "cluttered",
			Description: "scattered single-cell obstacles",
			RobotWidth:  1, RobotHeight: 1,
			Expect: plan.StatusSuccess,
			MapText: `
2 0 0 0 0 0 0 0
0 0 1 0 0 0 1 0
0 0 0 0 1 0 0 0
0 1 0 0 0 0 0 0
0 0 0 1 0 0 1 0
0 0 0 0 0 0 0 0
0 1 0 0 1 0 0 0
0 0 0 0 0 0 0 3
`,
		},
		{
			Name:        "serpentine",
			Description: "large map with two staggered walls",
			RobotWidth:  1, RobotHeight: 1,
			Expect: plan.StatusSuccess,
			MapText: `
2 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0
1 1 1 1 1 1 1 1 1 1 0 0
0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0
0 0 1 1 1 1 1 1 1 1 1 1
0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 3
`,
		},
		{
			Name:        "trap",
			Description: "goal walled in on all sides, descent ends in a minimum",
			RobotWidth:  1, RobotHeight: 1,
			Expect: plan.StatusLocalMinimum,
			MapText: `
2 0 0 0 0
0 1 1 1 0
0 1 3 1 0
0 1 1 1 0
0 0 0 0 0
`,
		},
	}
}

// Lookup returns the catalogue scenario with the given name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range Catalogue() {
		if s.Name == name {
			return s, true
		}
	}

	return Scenario{}, false
}
