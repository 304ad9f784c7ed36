package recipe

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/verify"
)

// ErrExhausted indicates every attempt of a Generate call failed.
var ErrExhausted = errors.New("recipe: generation attempts exhausted")

// Seed is the 128-bit seed of one level.
type Seed struct {
	A uint64 `json:"a"`
	B uint64 `json:"b"`
}

// Result is a generated level with its provenance.
type Result struct {
	Recipe string
	Seed   Seed
	Level  *level.Level
	// Tries is the number of attempts used, starting at 1.
	Tries       int
	Completable bool
}

// Generate runs rec from an empty level seeded by seed. Attempts that fail a
// stage, Level.Validate, or (when required) completability are retried on a
// stream derived from seed. ctx is checked between stages.
func Generate(ctx context.Context, rec Recipe, seed Seed, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	base := rng.New(seed.A, seed.B)
	var last error
	for try := 0; try < o.MaxTries; try++ {
		var r rng.Random
		if try == 0 {
			r = rng.New(seed.A, seed.B)
		} else {
			r = base.Derive(uint64(try))
		}
		l, err := run(ctx, rec, r, o.Tuning)
		if err == nil {
			return &Result{
				Recipe:      rec.Name,
				Seed:        seed,
				Level:       l,
				Tries:       try + 1,
				Completable: verify.IsCompletable(l),
			}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		last = err
	}
	return nil, fmt.Errorf("%w: %s after %d tries: %w", ErrExhausted, rec.Name, o.MaxTries, last)
}

func run(ctx context.Context, rec Recipe, r rng.Random, t Tuning) (*level.Level, error) {
	l := level.New()
	for i, stage := range rec.Stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := stage(l, r, t); err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
	}
	if rec.RequireCompletable {
		return l, verify.Check(l)
	}
	return l, l.Validate()
}

// Seeds derives n per-level seeds from seed, in index order.
func Seeds(seed Seed, n int) []Seed {
	base := rng.New(seed.A, seed.B)
	out := make([]Seed, n)
	for i := range out {
		child := base.Derive(uint64(i))
		out[i] = Seed{A: child.Uint64(), B: child.Uint64()}
	}
	return out
}

// Batch generates n levels from seeds derived with Seeds, using at most
// Options.Workers goroutines. Results are ordered by index. The first
// failure cancels the remaining work and is returned.
func Batch(ctx context.Context, rec Recipe, seed Seed, n int, opts ...Option) ([]*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: batch size %d < 0", ErrOptionViolation, n)
	}
	seeds := Seeds(seed, n)
	out := make([]*Result, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, s := range seeds {
		g.Go(func() error {
			res, err := Generate(gctx, rec, s, opts...)
			if err != nil {
				return fmt.Errorf("level %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
