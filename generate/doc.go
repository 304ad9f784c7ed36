// Package generate builds level terrain: additive generators that carve
// walkable space out of a grid, and subtractive refiners that add walls
// while a predicate keeps holding.
//
// What:
//
//   - EmptyBordered / ResetBordered: all Floor inside a Wall ring.
//   - Digger: random walks that turn with growing probability; every walk
//     after the first starts on dug Floor, so the dug area is connected.
//   - BasicRooms: Floor rectangles centred on existing Floor.
//   - Scatter: Wall noise with random Floor cells; no connectivity guarantee.
//   - ReverseVerifiedScatter / ReverseEntityPreservingScatter: random wall
//     insertion gated on completability / on every entity staying reachable.
//   - ReverseVerifiedFill: a row-major sweep that walls every interior tile
//     the level can spare.
//
// Randomness comes from an explicit rng.Random; the same seed and options
// reproduce the same level.
//
// Options:
//
//	Defaults follow DefaultOptions. Invalid Option arguments are recorded and
//	reported as ErrOptionViolation by the call that receives them.
//
// Errors:
//
//   - ErrNoValidCell:     a rejection-sampling loop ran out of attempts.
//   - ErrNoPlayer:        a player-relative refiner found no player.
//   - ErrOptionViolation: an Option received an out-of-range value.
//   - verify.ErrNotCompletable: a completability refiner was given a level
//     that was not completable to begin with.
package generate
