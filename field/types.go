// Package field defines tunable gains and sentinel errors for
// potential-field construction.
package field

import (
	"errors"
	"fmt"
)

// Sentinel errors for field construction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to Build.
	ErrNilGrid = errors.New("field: grid is nil")
	// ErrGoalOutOfBounds indicates the goal lies outside the grid.
	ErrGoalOutOfBounds = errors.New("field: goal out of bounds")
	// ErrGoalOnObstacle indicates the goal cell is an (inflated) obstacle.
	ErrGoalOnObstacle = errors.New("field: goal lies on an obstacle cell")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("field: invalid option supplied")
)

// Default gains, matching the reference tuning for small occupancy maps.
const (
	// DefaultAttractiveGain is the goal attraction coefficient kAtt.
	DefaultAttractiveGain = 1.0
	// DefaultRepulsiveGain is the obstacle repulsion coefficient kRep.
	DefaultRepulsiveGain = 50.0
	// DefaultInfluenceRadius is the repulsive field radius rho0 in cells.
	DefaultInfluenceRadius = 3.0
)

// Options holds the potential-field gains for one Build call.
// No process-wide mutable state exists; every run carries its own copy.
type Options struct {
	// AttractiveGain kAtt scales the quadratic goal well. Must be > 0.
	AttractiveGain float64
	// RepulsiveGain kRep scales obstacle repulsion. Must be ≥ 0.
	RepulsiveGain float64
	// InfluenceRadius rho0 bounds the repulsive term's reach in cells.
	// Must be > 0.
	InfluenceRadius float64

	// internal error recorded during option parsing
	err error
}

// Option configures field construction via functional arguments.
// Invalid values are recorded internally and surfaced as
// ErrOptionViolation when Build is invoked.
type Option func(*Options)

// DefaultOptions returns Options with the reference gains:
// kAtt=1.0, kRep=50.0, rho0=3.0.
func DefaultOptions() Options {
	return Options{
		AttractiveGain:  DefaultAttractiveGain,
		RepulsiveGain:   DefaultRepulsiveGain,
		InfluenceRadius: DefaultInfluenceRadius,
		err:             nil,
	}
}

// WithAttractiveGain sets kAtt. Must be positive.
func WithAttractiveGain(k float64) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: AttractiveGain must be positive (%g)", ErrOptionViolation, k)
			return
		}
		o.AttractiveGain = k
	}
}

// WithRepulsiveGain sets kRep. Must be non-negative; zero disables
// repulsion entirely.
func WithRepulsiveGain(k float64) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: RepulsiveGain cannot be negative (%g)", ErrOptionViolation, k)
			return
		}
		o.RepulsiveGain = k
	}
}

// WithInfluenceRadius sets rho0, the obstacle influence radius in cells.
// Must be positive.
func WithInfluenceRadius(rho float64) Option {
	return func(o *Options) {
		if rho <= 0 {
			o.err = fmt.Errorf("%w: InfluenceRadius must be positive (%g)", ErrOptionViolation, rho)
			return
		}
		o.InfluenceRadius = rho
	}
}
