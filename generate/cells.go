package generate

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/rng"
)

// RandomInterior draws a uniformly random cell strictly inside the border.
func RandomInterior(r rng.Random) level.Point {
	x := r.IntRange(1, level.Size-2)
	y := r.IntRange(1, level.Size-2)
	return level.Point{X: x, Y: y}
}

// FindCell draws interior cells until accept holds, giving up with
// ErrNoValidCell after maxAttempts draws. what names the search in the error.
func FindCell(r rng.Random, maxAttempts int, what string, accept func(level.Point) bool) (level.Point, error) {
	for i := 0; i < maxAttempts; i++ {
		p := RandomInterior(r)
		if accept(p) {
			return p, nil
		}
	}
	return level.Point{}, fmt.Errorf("%w: %s after %d attempts", ErrNoValidCell, what, maxAttempts)
}

// PureFloor returns a predicate matching cells that are exactly Floor.
func PureFloor(l *level.Level) func(level.Point) bool {
	return func(p level.Point) bool { return l.At(p).Only(level.Floor) }
}
