// Package gridnav is an artificial potential-field path planner for
// rectangular robots on static 2D occupancy grids.
//
// 🚀 What is gridnav?
//
//	A deterministic, single-threaded planning kernel plus the tooling
//	around it:
//		• Grid model: immutable occupancy grids with typed cell roles
//		• Footprint inflation: configuration-space grids for w×h robots
//		• Potential fields: quadratic attraction + bounded repulsion
//		• Path extraction: heuristic graph search with a steepest-descent
//		  fallback and cycle detection
//		• Planning statistics: one immutable snapshot per attempt
//
// ✨ Why choose gridnav?
//
//   - Deterministic – identical inputs always yield identical fields and paths
//   - Bounded – every strategy carries an explicit iteration/step cap
//   - Self-contained core – each run owns its grid, field and statistics
//   - Batteries included – scenario catalogue, CSV/JSON export, charts and
//     a SQLite result store for benchmarking
//
// Everything is organized under focused subpackages:
//
//	grid/      — occupancy grid model, cell roles, text-map parsing
//	footprint/ — obstacle inflation and collision checks for w×h robots
//	field/     — attractive/repulsive potential-field construction
//	plan/      — two-stage path extraction and planning statistics
//	scenario/  — named scenario catalogue and batch runner
//	export/    — CSV waypoint and JSON outcome export
//	render/    — ECharts HTML charts and PNG path plots
//	resultdb/  — SQLite-backed run history
//
// Quick ASCII example, a 5×5 grid with a wall and one gap:
//
//	S 0 0 0 0
//	0 0 0 0 0
//	1 1 1 0 1
//	0 0 0 0 0
//	0 0 0 0 G
//
// The planner inflates the wall for the robot footprint, builds the
// potential field toward G and routes through the gap.
//
//	go get github.com/katalvlaran/gridnav
package gridnav
