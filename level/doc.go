// Package level defines the fixed-size tile grid that every generator,
// placer and validator operates on.
//
// What:
//
//   - Entity enumerates the nine things a cell can hold (Floor … Player).
//   - Tile is a uint16 bit set of entities; several may coexist on one cell.
//   - Level is a row-major [Size*Size]Tile array with fill/stamp primitives.
//   - The .lvl binary codec and the one-char-per-tile debug dump.
//
// Invariants of a finished level (see Validate):
//
//   - exactly one Player, Key, Exit and Lock, with the Lock on the Exit;
//   - Wall and Floor never share a tile;
//   - enclosed arenas keep an all-Wall border ring (ValidateBorder).
//
// The type does not enforce these: placement passes through transient
// states (a Wall OR-ed onto an occupied Floor) that would violate them.
//
// Errors:
//
//   - ErrEntityCount:      a unique entity is missing or duplicated.
//   - ErrLockNotOnExit:    the Lock bit is not on the Exit tile.
//   - ErrWallFloorOverlap: a tile holds both Wall and Floor.
//   - ErrOpenBorder:       a border tile is not Wall.
//   - ErrShortRead / ErrShortWrite: the .lvl stream was truncated.
//   - ErrBadDump:          a text dump has the wrong shape or glyphs.
package level
