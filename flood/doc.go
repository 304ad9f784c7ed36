// Package flood is the connectivity oracle: a masked breadth-first flood
// fill over the level grid and the reachability queries built on it.
//
// What:
//
//   - Flood visits every tile orthogonally reachable from a start point whose
//     masked bits equal the target's: tile&mask == target&mask.
//   - A Visitor sees each matching tile exactly once, may mutate it, and may
//     halt the traversal by returning Stop.
//   - Record accumulates the OR of all visited tiles, which is how callers
//     ask "what can be reached from here?".
//   - Region, Components and Distances answer set, partition and path-length
//     questions with the same matching rule.
//
// The "safe" query used throughout generation is mask Floor|Wall|Spikes with
// target Floor: a tile is walkable when it has Floor and neither Wall nor
// Spikes, whatever else stands on it.
//
// Determinism:
//
//	Neighbours are expanded N, E, S, W from a FIFO queue, so visit order is
//	reproducible, though callers must not depend on it.
//
// Complexity (A = level.Area):
//
//   - Time:   O(A) per query; each tile is enqueued at most once.
//   - Memory: O(A) for the queue and the seen flags.
package flood
