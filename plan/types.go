// Package plan defines statuses, statistics, options and sentinel
// errors for the two-stage path extractor.
package plan

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/gridnav/field"
	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors mirroring the terminal statuses.
var (
	// ErrExhausted indicates the search frontier emptied before the goal
	// was reached.
	ErrExhausted = errors.New("plan: search frontier exhausted before reaching goal")
	// ErrLocalMinimum indicates gradient descent reached a cell with no
	// strictly lower neighbor, or revisited its recent history.
	ErrLocalMinimum = errors.New("plan: gradient descent stuck in local minimum")
	// ErrIterationLimit indicates a strategy exceeded its safety bound.
	ErrIterationLimit = errors.New("plan: iteration limit exceeded")
	// ErrInvalidEndpoints indicates start or goal is out of bounds, lies
	// on an inflated-obstacle cell, or start equals goal.
	ErrInvalidEndpoints = errors.New("plan: invalid start or goal on inflated grid")
)

// Safety-bound factors. Search pops at most rows·cols·SearchPopFactor
// frontier entries; Descend takes at most rows·cols·DescentStepFactor
// steps.
const (
	SearchPopFactor   = 4
	DescentStepFactor = 2
)

// CycleWindow is the capacity of the descent cycle-detection ring: the
// number of recently visited cells checked before each move.
const CycleWindow = 20

// Status is the terminal state of one planning attempt.
type Status int

const (
	// StatusPending marks an attempt still in flight; a finalized
	// Statistics value never carries it.
	StatusPending Status = iota
	// StatusSuccess: a start→goal path was produced.
	StatusSuccess
	// StatusExhausted: the search frontier emptied without reaching goal.
	StatusExhausted
	// StatusLocalMinimum: the descent fallback got stuck.
	StatusLocalMinimum
	// StatusIterationLimit: a strategy exceeded its safety bound.
	StatusIterationLimit
	// StatusInvalidGeometry: non-positive robot dimensions or invalid
	// field gains.
	StatusInvalidGeometry
	// StatusInvalidEndpoints: start/goal unusable on the inflated grid.
	StatusInvalidEndpoints
)

// String returns the canonical status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusSuccess:
		return "Success"
	case StatusExhausted:
		return "Exhausted"
	case StatusLocalMinimum:
		return "LocalMinimum"
	case StatusIterationLimit:
		return "IterationLimit"
	case StatusInvalidGeometry:
		return "InvalidGeometry"
	case StatusInvalidEndpoints:
		return "InvalidEndpoints"
	default:
		return "Unknown"
	}
}

// Strategy identifies which extraction strategy produced the terminal
// state.
type Strategy int

const (
	// StrategyNone: the attempt failed before any extraction ran.
	StrategyNone Strategy = iota
	// StrategySearch: the heuristic graph search.
	StrategySearch
	// StrategyDescent: the steepest-descent fallback.
	StrategyDescent
)

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategySearch:
		return "Search"
	case StrategyDescent:
		return "Descent"
	default:
		return "None"
	}
}

// Statistics is the one-shot record of a planning attempt. It is
// created when the attempt starts, finalized exactly once at
// termination, and never mutated afterwards.
type Statistics struct {
	// Status is the terminal state of the attempt.
	Status Status
	// Strategy is the stage that produced the terminal state.
	Strategy Strategy
	// Elapsed is the wall-clock duration of the attempt.
	Elapsed time.Duration
	// NodesExpanded counts distinct cells expanded by Search.
	NodesExpanded int
	// Steps counts moves taken by Descend (zero when Search succeeded).
	Steps int
	// PathLength is the waypoint count of the resulting path
	// (possibly partial on failure).
	PathLength int
	// PathCost is the sum of Euclidean step lengths along the path.
	PathCost float64
}

// Result bundles the extracted path with the finalized statistics.
// Path is empty or partial when the attempt failed.
type Result struct {
	Path  []grid.Cell
	Stats Statistics
}

// PathCost returns the sum of Euclidean distances between consecutive
// waypoints. An empty or single-waypoint path costs zero.
func PathCost(path []grid.Cell) float64 {
	var cost float64
	for i := 1; i < len(path); i++ {
		cost += math.Hypot(
			float64(path[i].Row-path[i-1].Row),
			float64(path[i].Col-path[i-1].Col),
		)
	}

	return cost
}

// Options configures one Plan invocation.
type Options struct {
	// RobotWidth and RobotHeight are the footprint dimensions in cells.
	// Both default to 1; Inflate rejects non-positive values.
	RobotWidth, RobotHeight int
	// FieldOptions are forwarded to field.Build.
	FieldOptions []field.Option
}

// Option configures Plan via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options for a 1×1 robot with default gains.
func DefaultOptions() Options {
	return Options{RobotWidth: 1, RobotHeight: 1, FieldOptions: nil}
}

// WithRobot sets the robot footprint dimensions in cells. Values are
// validated by inflation: w<1 or h<1 terminates the attempt with
// StatusInvalidGeometry.
func WithRobot(w, h int) Option {
	return func(o *Options) {
		o.RobotWidth = w
		o.RobotHeight = h
	}
}

// WithFieldOptions forwards gain options to the potential-field builder.
func WithFieldOptions(opts ...field.Option) Option {
	return func(o *Options) {
		o.FieldOptions = append(o.FieldOptions, opts...)
	}
}
