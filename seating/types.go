// Package seating defines the cell enumeration, sentinel errors, rule
// interface and simulation options for the seating automaton.
package seating

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for seating operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("seating: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("seating: all rows must have the same length")
	// ErrBorderNotFloor indicates a padded matrix whose outer ring holds seats.
	ErrBorderNotFloor = errors.New("seating: border cells must be floor")
	// ErrInvalidCell indicates a character that is not one of ".L#".
	ErrInvalidCell = errors.New("seating: invalid cell character")
	// ErrNoConvergence indicates the simulation did not reach a fixed point.
	ErrNoConvergence = errors.New("seating: simulation did not converge")
)

// Cell is the state of one grid position.
type Cell uint8

const (
	// Floor never changes and never counts as a neighbour.
	Floor Cell = iota
	// Empty is an unoccupied seat.
	Empty
	// Occupied is a taken seat.
	Occupied
)

// DefaultMaxIterations bounds Stabilize when no option overrides it.
const DefaultMaxIterations = 250

// Default tolerances: an occupied seat empties once this many visible
// neighbours are occupied.
const (
	DefaultAdjacencyTolerance = 4
	DefaultSightTolerance     = 5
)

// Rule computes the next state of the interior cell at (row, col).
// Implementations must read only from g.
type Rule interface {
	Next(g *Grid, row, col int) Cell
}

// Option configures Stabilize.
type Option func(*Options)

// Options holds configurable parameters for Stabilize.
type Options struct {
	// Ctx allows cancellation; checked once before every step.
	Ctx context.Context

	// MaxIterations is the number of steps allowed before giving up.
	MaxIterations int

	// OnStep, if non-nil, is called with every newly produced snapshot.
	// Returning an error aborts the simulation with that error.
	OnStep func(step int, g *Grid) error

	// Logger receives trace-level step records and a debug-level summary.
	Logger zerolog.Logger
}

// DefaultOptions returns Options with a background context, the default
// iteration bound, no hook and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: DefaultMaxIterations,
		OnStep:        nil,
		Logger:        zerolog.Nop(),
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations overrides the step bound. Non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

// WithOnStep installs fn as a per-step hook.
func WithOnStep(fn func(step int, g *Grid) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result is the outcome of Stabilize.
type Result struct {
	// Occupied is the number of occupied seats at the fixed point.
	Occupied int
	// Steps is the number of steps that changed the grid.
	Steps int
	// Final is the stable snapshot.
	Final *Grid
}
