package generate

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation.
var (
	// ErrNoValidCell indicates that no acceptable cell was found within
	// Options.MaxAttempts random draws.
	ErrNoValidCell = errors.New("generate: no valid cell found")

	// ErrNoPlayer indicates a refiner that measures from the player found none.
	ErrNoPlayer = errors.New("generate: level has no player")

	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("generate: invalid option supplied")
)

// Options tunes every generator and refiner in the package.
// Each function reads only the fields it documents.
type Options struct {
	// Iterations is the number of Digger walks.
	Iterations int
	// TurnChanceStep is the Digger turn probability after a turn, and the
	// amount it grows by on every step without one.
	TurnChanceStep float64
	// WalkablePortion × Area is the number of steps in each Digger walk.
	WalkablePortion float64

	// RoomCount, RoomMin and RoomMax shape BasicRooms.
	RoomCount        int
	RoomMin, RoomMax int

	// FloorPortion × Area random cells become Floor in Scatter.
	FloorPortion float64

	// WallPortion × Area is the number of wall insertions a scatter refiner
	// attempts. Zero selects the refiner's own default.
	WallPortion float64
	// Attempts bounds the random tries per wall insertion.
	Attempts int

	// MaxAttempts bounds every rejection-sampling loop.
	MaxAttempts int

	err error
}

// Refiner defaults for Options.WallPortion.
const (
	DefaultScatterWallPortion    = 4.0
	DefaultPreservingWallPortion = 0.5
)

// DefaultOptions returns the tuning of the reference generators:
//   - 5 digger walks of 0.2×Area steps, turn step 0.01;
//   - 8 rooms of 2..6 tiles per side;
//   - Scatter floor portion 0.5;
//   - 32 tries per refiner wall, 4096 tries per rejection loop.
func DefaultOptions() Options {
	return Options{
		Iterations:      5,
		TurnChanceStep:  0.01,
		WalkablePortion: 0.2,
		RoomCount:       8,
		RoomMin:         2,
		RoomMax:         6,
		FloorPortion:    0.5,
		Attempts:        32,
		MaxAttempts:     4096,
	}
}

// Option configures generation via functional arguments.
type Option func(*Options)

func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithIterations sets the number of Digger walks (n ≥ 1).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("iterations %d < 1", n)
			return
		}
		o.Iterations = n
	}
}

// WithTurnChanceStep sets the Digger turn step (0 ≤ p ≤ 1).
func WithTurnChanceStep(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.violate("turn chance step %v outside [0,1]", p)
			return
		}
		o.TurnChanceStep = p
	}
}

// WithWalkablePortion sets the Digger walk length as a portion of Area.
func WithWalkablePortion(p float64) Option {
	return func(o *Options) {
		if p < 0 {
			o.violate("walkable portion %v < 0", p)
			return
		}
		o.WalkablePortion = p
	}
}

// WithParams scales the Digger tuning by an external parameter vector the
// way evolutionary search drives it: TurnChanceStep *= 2·p[1] and
// WalkablePortion *= 2·p[2]. p[0] is reserved and ignored.
func WithParams(p []float64) Option {
	return func(o *Options) {
		if len(p) < 3 {
			o.violate("params has %d values, want 3", len(p))
			return
		}
		if p[1] < 0 || p[2] < 0 {
			o.violate("params %v has a negative factor", p)
			return
		}
		o.TurnChanceStep *= 2 * p[1]
		o.WalkablePortion *= 2 * p[2]
	}
}

// WithRooms sets the BasicRooms count and side range (1 ≤ lo ≤ hi).
func WithRooms(count, lo, hi int) Option {
	return func(o *Options) {
		if count < 0 || lo < 1 || hi < lo {
			o.violate("rooms count=%d sides=[%d,%d]", count, lo, hi)
			return
		}
		o.RoomCount, o.RoomMin, o.RoomMax = count, lo, hi
	}
}

// WithFloorPortion sets the Scatter floor portion.
func WithFloorPortion(p float64) Option {
	return func(o *Options) {
		if p < 0 {
			o.violate("floor portion %v < 0", p)
			return
		}
		o.FloorPortion = p
	}
}

// WithWallPortion sets the refiner insertion count as a portion of Area.
func WithWallPortion(p float64) Option {
	return func(o *Options) {
		if p < 0 {
			o.violate("wall portion %v < 0", p)
			return
		}
		o.WallPortion = p
	}
}

// WithAttempts sets the tries per refiner wall insertion (n ≥ 1).
func WithAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("attempts %d < 1", n)
			return
		}
		o.Attempts = n
	}
}

// WithMaxAttempts bounds every rejection-sampling loop (n ≥ 1).
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("max attempts %d < 1", n)
			return
		}
		o.MaxAttempts = n
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}
