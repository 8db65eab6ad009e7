package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridnav/field"
	"github.com/katalvlaran/gridnav/footprint"
	"github.com/katalvlaran/gridnav/grid"
)

// Plan runs the full two-stage pipeline for one planning attempt:
//
//  1. inflate obstacles for the robot footprint,
//  2. validate start/goal on the inflated grid,
//  3. build the potential field toward goal,
//  4. extract a path with Search, falling back to Descend on failure.
//
// Descend failures propagate unchanged; there is no further recovery.
// The returned Result always carries a finalized Statistics snapshot —
// partial on failure — and the error (nil on success) identifies the
// terminal condition. The input grid is never mutated; the attempt owns
// its inflated grid, field and statistics.
func Plan(g *grid.Grid, start, goal grid.Cell, opts ...Option) (Result, error) {
	began := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var stats Statistics

	// 1) Configuration space: inflate obstacles by the robot half-extents.
	inflated, err := footprint.Inflate(g, o.RobotWidth, o.RobotHeight)
	if err != nil {
		finalize(&stats, StatusInvalidGeometry, nil, began)
		return Result{Stats: stats}, err
	}

	// 2) Endpoints must be usable before any field work is spent.
	if start == goal || !inflated.IsFree(start) || !inflated.IsFree(goal) {
		finalize(&stats, StatusInvalidEndpoints, nil, began)
		return Result{Stats: stats}, fmt.Errorf("%w: start=%v goal=%v", ErrInvalidEndpoints, start, goal)
	}

	// 3) Potential field over the inflated grid. Gain misconfiguration
	//    is a geometry-class failure: the attempt never ran.
	fld, err := field.Build(inflated, goal, o.FieldOptions...)
	if err != nil {
		finalize(&stats, StatusInvalidGeometry, nil, began)
		return Result{Stats: stats}, err
	}

	// 4) Primary strategy: heuristic graph search.
	path, expanded, err := Search(inflated, fld, start, goal)
	stats.NodesExpanded = expanded
	if err == nil {
		stats.Strategy = StrategySearch
		finalize(&stats, StatusSuccess, path, began)
		return Result{Path: path, Stats: stats}, nil
	}

	// 5) Fallback: steepest descent. Any Search failure triggers it.
	stats.Strategy = StrategyDescent
	path, steps, err := Descend(inflated, fld, start, goal)
	stats.Steps = steps
	if err != nil {
		finalize(&stats, statusOf(err), path, began)
		return Result{Path: path, Stats: stats}, err
	}

	finalize(&stats, StatusSuccess, path, began)
	return Result{Path: path, Stats: stats}, nil
}

// statusOf maps a strategy error onto its terminal status.
func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrExhausted):
		return StatusExhausted
	case errors.Is(err, ErrLocalMinimum):
		return StatusLocalMinimum
	case errors.Is(err, ErrIterationLimit):
		return StatusIterationLimit
	case errors.Is(err, ErrInvalidEndpoints):
		return StatusInvalidEndpoints
	case errors.Is(err, footprint.ErrInvalidGeometry):
		return StatusInvalidGeometry
	default:
		return StatusInvalidGeometry
	}
}

// finalize seals the statistics snapshot exactly once at termination.
func finalize(st *Statistics, status Status, path []grid.Cell, began time.Time) {
	st.Status = status
	st.PathLength = len(path)
	st.PathCost = PathCost(path)
	st.Elapsed = time.Since(began)
}
