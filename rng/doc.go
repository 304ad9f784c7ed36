// Package rng provides the deterministic pseudo-random source used by every
// randomized stage of level generation.
//
// What:
//
//   - Source is a xoroshiro128+ generator with an explicit 128-bit state.
//   - Float64, IntRange and Chance derive from a single Uint64 draw, so a
//     given seed reproduces the same levels on every platform.
//   - Derive splits off independent child streams for parallel work.
//
// Concurrency:
//
//   - A *Source is NOT goroutine-safe. Give each generation task its own
//     stream via Derive, or wrap a shared instance in Locked.
//
// Complexity: every draw is O(1) with no allocation.
package rng
