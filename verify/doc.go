// Package verify decides whether a level can be finished and reports why
// it cannot.
//
// What:
//
//   - IsCompletable: from the Player, a safe flood (see flood.SafeMask)
//     must see both the Key and the Exit.
//   - Seen / CountEntities / ReachableEntities: the primitive reachability
//     measures the generators and refiners gate their mutations on.
//   - Inspect: a Report with path lengths and unreachable entities, for
//     tooling and the generation service.
//   - Check: Level.Validate plus completability, as a single error.
//
// The test is an approximation: it ignores enemy movement, the order in
// which the key and exit are reached, and that the Exit tile itself may
// carry the Lock.
//
// Errors:
//
//   - ErrNotCompletable: the player cannot safely reach the key and the exit.
package verify
