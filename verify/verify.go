package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/flood"
	"github.com/katalvlaran/lvlgen/level"
)

// ErrNotCompletable indicates the key or the exit is unreachable.
var ErrNotCompletable = errors.New("verify: level is not completable")

// goal holds the entities a completable player must be able to reach.
var goal = level.Tiles(level.Key, level.Exit)

// Seen returns the OR of every tile safely reachable from p.
func Seen(l *level.Level, p level.Point) level.Tile {
	var seen level.Tile
	flood.Flood(l, p, flood.SafeMask, flood.SafeTarget, flood.Record(&seen))
	return seen
}

// IsCompletable reports whether the player can safely reach both the key and
// the exit. A level without a player is never completable.
func IsCompletable(l *level.Level) bool {
	p, ok := l.FindPlayer()
	if !ok {
		return false
	}
	return Seen(l, p)&goal == goal
}

// CountEntities returns the number of tiles holding at least one
// non-terrain bit.
func CountEntities(l *level.Level) int {
	n := 0
	for _, t := range l {
		if t.HasEntity() {
			n++
		}
	}
	return n
}

// ReachableEntities counts entity-bearing tiles in the player's safe region.
// ok is false when the level has no player.
func ReachableEntities(l *level.Level) (n int, ok bool) {
	p, ok := l.FindPlayer()
	if !ok {
		return 0, false
	}
	flood.Flood(l, p, flood.SafeMask, flood.SafeTarget, func(t *level.Tile, _ level.Point) flood.Action {
		if t.HasEntity() {
			n++
		}
		return flood.Continue
	})
	return n, true
}

// Check runs Level.Validate and then the completability test.
func Check(l *level.Level) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if !IsCompletable(l) {
		return fmt.Errorf("%w: %s", ErrNotCompletable, Inspect(l).Reason())
	}
	return nil
}
