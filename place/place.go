package place

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/generate"
	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/verify"
)

// Sentinel errors for placement.
var (
	// ErrNoValidCell indicates a unique entity could not be placed. It is
	// generate.ErrNoValidCell, so either name matches with errors.Is.
	ErrNoValidCell = generate.ErrNoValidCell

	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("place: invalid option supplied")
)

// Options holds per-cell hazard probabilities and the sampling budget.
type Options struct {
	GoldChance   float64
	EnemyChance  float64
	SpikesChance float64
	MaxAttempts  int

	err error
}

// DefaultOptions returns gold 0.07, enemy 0.03, spikes 0.03 and 4096
// attempts per unique entity.
func DefaultOptions() Options {
	return Options{
		GoldChance:   0.07,
		EnemyChance:  0.03,
		SpikesChance: 0.03,
		MaxAttempts:  4096,
	}
}

// Option configures placement via functional arguments.
type Option func(*Options)

// WithParams sets the gold, enemy and spikes chances from p[0..2].
func WithParams(p []float64) Option {
	return func(o *Options) {
		if len(p) < 3 {
			o.fail(fmt.Errorf("%w: params has %d values, want 3", ErrOptionViolation, len(p)))
			return
		}
		for _, v := range p[:3] {
			if v < 0 || v > 1 {
				o.fail(fmt.Errorf("%w: chance %v outside [0,1]", ErrOptionViolation, v))
				return
			}
		}
		o.GoldChance, o.EnemyChance, o.SpikesChance = p[0], p[1], p[2]
	}
}

// WithMaxAttempts bounds the search for each unique entity (n ≥ 1).
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: max attempts %d < 1", ErrOptionViolation, n))
			return
		}
		o.MaxAttempts = n
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

// hazards rolls Gold, then Enemy, then Spikes on every interior cell
// without a Wall; the first success wins.
func hazards(l *level.Level, r rng.Random, o Options) {
	for y := 1; y < level.Size-1; y++ {
		for x := 1; x < level.Size-1; x++ {
			t := l.Ptr(level.Point{X: x, Y: y})
			if t.Has(level.Wall) {
				continue
			}
			switch {
			case r.Chance(o.GoldChance):
				*t = t.With(level.Gold)
			case r.Chance(o.EnemyChance):
				*t = t.With(level.Enemy)
			case r.Chance(o.SpikesChance):
				*t = t.With(level.Spikes)
			}
		}
	}
}

func find(l *level.Level, r rng.Random, o Options, e level.Entity, accept func(level.Point) bool) (level.Point, error) {
	floor := generate.PureFloor(l)
	return generate.FindCell(r, o.MaxAttempts, e.String(), func(p level.Point) bool {
		return floor(p) && (accept == nil || accept(p))
	})
}

// Scatter rolls hazards with the Options chances, then puts Exit+Lock, Key
// and Player each on a random pure-Floor cell. The result may not be
// completable.
func Scatter(l *level.Level, r rng.Random, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	hazards(l, r, o)
	for _, u := range []struct {
		e    level.Entity
		tile level.Tile
	}{
		{level.Exit, level.Tiles(level.Floor, level.Exit, level.Lock)},
		{level.Key, level.Tiles(level.Floor, level.Key)},
		{level.Player, level.Tiles(level.Floor, level.Player)},
	} {
		p, err := find(l, r, o, u.e, nil)
		if err != nil {
			return err
		}
		l.Set(p, u.tile)
	}
	return nil
}

// VerifiedScatter rolls hazards, puts Exit+Lock on a pure-Floor cell, the
// Key on a pure-Floor cell that safely sees the Exit, and the Player on a
// pure-Floor cell that safely sees the Key or the Exit.
func VerifiedScatter(l *level.Level, r rng.Random, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	hazards(l, r, o)

	exit, err := find(l, r, o, level.Exit, nil)
	if err != nil {
		return err
	}
	l.Set(exit, l.At(exit)|level.Tiles(level.Exit, level.Lock))

	sees := func(want level.Tile) func(level.Point) bool {
		return func(p level.Point) bool { return verify.Seen(l, p)&want != 0 }
	}
	key, err := find(l, r, o, level.Key, sees(level.Bit(level.Exit)))
	if err != nil {
		return err
	}
	l.Set(key, l.At(key).With(level.Key))

	player, err := find(l, r, o, level.Player, sees(level.Tiles(level.Exit, level.Key)))
	if err != nil {
		return err
	}
	l.Set(player, l.At(player).With(level.Player))
	return nil
}
