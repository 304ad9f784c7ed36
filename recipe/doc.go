// Package recipe names complete generation pipelines and runs them
// reproducibly, one level at a time or in concurrent batches.
//
// What:
//
//   - A Recipe is an ordered list of Stages (generators, placers, refiners)
//     plus whether its output must be completable.
//   - Built-ins: classic, digger, rooms, dense and noise (see Names).
//   - Generate seeds a fresh rng.Source, runs every stage on an empty level
//     and validates the result. A failed attempt is retried on a stream
//     derived from the seed, up to Options.MaxTries.
//   - Batch runs Generate for n derived seeds on a bounded worker pool.
//
// Determinism:
//
//	The first attempt of Generate uses rng.New(seed.A, seed.B) directly, so
//	a single-attempt level matches any other tool seeded the same way.
//	Batch derives every per-level seed before starting workers; its output
//	is identical for any worker count.
//
// Errors:
//
//   - ErrUnknownRecipe:   Lookup of an unregistered name.
//   - ErrDuplicateRecipe: Register of a name already taken.
//   - ErrExhausted:       every attempt failed; wraps the last failure.
//   - ErrOptionViolation: an Option received an out-of-range value.
//   - context errors are returned unwrapped when ctx ends.
package recipe
