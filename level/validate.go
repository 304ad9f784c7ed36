package level

import (
	"errors"
	"fmt"
)

// Sentinel errors for level validation and I/O.
var (
	// ErrEntityCount indicates a unique entity is missing or duplicated.
	ErrEntityCount = errors.New("level: unique entity count is not one")

	// ErrLockNotOnExit indicates the Lock bit is not co-located with the Exit.
	ErrLockNotOnExit = errors.New("level: lock is not on the exit")

	// ErrWallFloorOverlap indicates a tile holds both Wall and Floor.
	ErrWallFloorOverlap = errors.New("level: wall and floor share a tile")

	// ErrOpenBorder indicates a border tile is not pure Wall.
	ErrOpenBorder = errors.New("level: border ring is not closed")

	// ErrShortRead indicates fewer than Area tiles could be read.
	ErrShortRead = errors.New("level: short read")

	// ErrShortWrite indicates fewer than Area tiles could be written.
	ErrShortWrite = errors.New("level: short write")

	// ErrBadDump indicates a text dump with the wrong shape or an unknown glyph.
	ErrBadDump = errors.New("level: malformed text dump")
)

// uniqueEntities must each appear on exactly one tile of a finished level.
var uniqueEntities = [...]Entity{Player, Key, Exit, Lock}

// Validate checks the structural invariants of a finished level:
// one Player, Key, Exit and Lock; the Lock on the Exit; no Wall/Floor overlap.
// Reachability is checked by package verify.
func (l *Level) Validate() error {
	for _, e := range uniqueEntities {
		if n := l.Count(e); n != 1 {
			return fmt.Errorf("%w: %s appears %d times", ErrEntityCount, e, n)
		}
	}
	lock, _ := l.First(Lock)
	if !l.At(lock).Has(Exit) {
		return fmt.Errorf("%w: lock at %v", ErrLockNotOnExit, lock)
	}
	if ov := l.Overlaps(); len(ov) > 0 {
		return fmt.Errorf("%w: %d tiles, first at %v", ErrWallFloorOverlap, len(ov), ov[0])
	}
	return nil
}

// ValidateBorder checks that every border tile is exactly Wall.
func (l *Level) ValidateBorder() error {
	for i, t := range l {
		p := PointOf(i)
		if OnBorder(p) && !t.Only(Wall) {
			return fmt.Errorf("%w: %v holds %v", ErrOpenBorder, p, t)
		}
	}
	return nil
}
