// Package place puts entities into generated terrain: scattered hazards and
// collectibles, then the unique Exit+Lock, Key and Player.
//
// What:
//
//   - Scatter: independent hazard rolls per open interior cell, then the
//     unique entities on random pure-Floor cells. No reachability guarantee.
//   - VerifiedScatter: the same hazards, but the Key must safely see the
//     Exit and the Player must safely see the Key or the Exit, so the result
//     is completable whenever the terrain allows it.
//
// Each open cell gets at most one hazard: Gold, Enemy and Spikes are rolled
// in that order and the first success wins.
//
// On error the level holds whatever was placed so far; callers generate
// into a scratch level or start over.
//
// Errors:
//
//   - ErrNoValidCell:     no acceptable cell for a unique entity within
//     Options.MaxAttempts draws.
//   - ErrOptionViolation: an Option received an out-of-range value.
package place
