package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridnav/field"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/plan"
)

// Scenario is one named planning setup: an embedded map plus the robot
// dimensions and field options to plan with.
type Scenario struct {
	// Name identifies the scenario in logs, exports and the result store.
	Name string
	// Description is a one-line human summary.
	Description string
	// MapText is the whitespace-separated cell-code map (see grid.Parse).
	MapText string
	// RobotWidth and RobotHeight are the footprint dimensions in cells.
	RobotWidth, RobotHeight int
	// FieldOptions tune the potential field for this scenario.
	FieldOptions []field.Option
	// Expect is the status this scenario is designed to terminate with.
	Expect plan.Status
}

// Grid parses the scenario's embedded map.
func (s Scenario) Grid() (*grid.Grid, error) {
	return grid.Parse(strings.NewReader(s.MapText))
}

// Outcome is the result of running one scenario. Err is nil on
// StatusSuccess and carries the terminal sentinel otherwise; either
// way Result holds the finalized statistics and any (partial) path.
type Outcome struct {
	Scenario string
	Result   plan.Result
	Err      error
}

// Succeeded reports whether the scenario produced a complete path.
func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.Result.Stats.Status == plan.StatusSuccess
}

// Runner executes scenarios sequentially.
type Runner struct {
	log *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger; the default discards.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner builds a Runner with the given options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes one scenario. The returned error is infrastructural
// (cancelled context, unparsable map); a planning failure is recorded
// in the Outcome and does not surface here.
func (r *Runner) Run(ctx context.Context, s Scenario) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	g, err := s.Grid()
	if err != nil {
		return Outcome{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	res, err := plan.Plan(g, g.Start(), g.Goal(),
		plan.WithRobot(s.RobotWidth, s.RobotHeight),
		plan.WithFieldOptions(s.FieldOptions...),
	)

	out := Outcome{Scenario: s.Name, Result: res, Err: err}
	r.log.Info("scenario finished",
		slog.String("name", s.Name),
		slog.String("status", res.Stats.Status.String()),
		slog.String("strategy", res.Stats.Strategy.String()),
		slog.Int("expanded", res.Stats.NodesExpanded),
		slog.Int("steps", res.Stats.Steps),
		slog.Int("path_len", res.Stats.PathLength),
		slog.Float64("path_cost", res.Stats.PathCost),
		slog.Duration("elapsed", res.Stats.Elapsed),
	)

	return out, nil
}

// RunAll executes the scenarios in order, collecting every outcome.
// Cancellation between scenarios stops the batch and returns the
// outcomes gathered so far together with the context error.
func (r *Runner) RunAll(ctx context.Context, list []Scenario) ([]Outcome, error) {
	outs := make([]Outcome, 0, len(list))
	for _, s := range list {
		out, err := r.Run(ctx, s)
		if err != nil {
			return outs, err
		}
		outs = append(outs, out)
	}

	return outs, nil
}
