package recipe

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/lvlgen/generate"
	"github.com/katalvlaran/lvlgen/place"
)

// ErrOptionViolation indicates an invalid Option argument.
var ErrOptionViolation = errors.New("recipe: invalid option supplied")

// Options controls Generate and Batch.
type Options struct {
	// MaxTries bounds the attempts per level.
	MaxTries int
	// Workers bounds Batch concurrency.
	Workers int
	// Tuning is handed to every stage.
	Tuning Tuning

	err error
}

// DefaultOptions returns 8 tries per level and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		MaxTries: 8,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// Option configures generation via functional arguments.
type Option func(*Options)

// WithMaxTries sets the attempts per level (n ≥ 1).
func WithMaxTries(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: max tries %d < 1", ErrOptionViolation, n))
			return
		}
		o.MaxTries = n
	}
}

// WithWorkers sets the Batch worker count (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: workers %d < 1", ErrOptionViolation, n))
			return
		}
		o.Workers = n
	}
}

// WithGenerateOptions appends options for generator and refiner stages.
func WithGenerateOptions(opts ...generate.Option) Option {
	return func(o *Options) {
		o.Tuning.Generate = append(o.Tuning.Generate, opts...)
	}
}

// WithPlaceOptions appends options for placer stages.
func WithPlaceOptions(opts ...place.Option) Option {
	return func(o *Options) {
		o.Tuning.Place = append(o.Tuning.Place, opts...)
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
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
