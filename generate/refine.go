package generate

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/verify"
)

// refine makes walls wall insertions at random interior cells and returns
// how many added a new wall. Each insertion gets attempts tries; a try ORs
// Wall into the cell and keeps it, collapsed to pure Wall, only when accept
// still holds. Player cells cost a try. A draw on an existing wall completes
// the insertion without changing the level or the count. A rejected try
// restores the cell exactly.
func refine(l *level.Level, r rng.Random, walls, attempts int, accept func() bool) int {
	placed := 0
	for i := 0; i < walls; i++ {
		for a := 0; a < attempts; a++ {
			t := l.Ptr(RandomInterior(r))
			if t.Has(level.Player) {
				continue
			}
			if t.Has(level.Wall) {
				break
			}
			old := *t
			*t |= level.Bit(level.Wall)
			if !accept() {
				*t = old
				continue
			}
			*t = level.Bit(level.Wall)
			placed++
			break
		}
	}
	return placed
}

func wallCount(o Options, def float64) int {
	p := o.WallPortion
	if p == 0 {
		p = def
	}
	return int(p * level.Area)
}

// ReverseVerifiedScatter adds random walls that keep the level completable
// and returns how many it placed. Options.WallPortion defaults to
// DefaultScatterWallPortion.
func ReverseVerifiedScatter(l *level.Level, r rng.Random, opts ...Option) (int, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if !verify.IsCompletable(l) {
		return 0, fmt.Errorf("%w: before refinement", verify.ErrNotCompletable)
	}
	accept := func() bool { return verify.IsCompletable(l) }
	return refine(l, r, wallCount(o, DefaultScatterWallPortion), o.Attempts, accept), nil
}

// ReverseEntityPreservingScatter adds random walls that keep every entity
// reachable from the player: the reachable entity count must stay equal to
// the total measured before the first insertion. A level whose entities are
// not all reachable to begin with accepts no walls. Options.WallPortion
// defaults to DefaultPreservingWallPortion.
func ReverseEntityPreservingScatter(l *level.Level, r rng.Random, opts ...Option) (int, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if _, ok := l.FindPlayer(); !ok {
		return 0, ErrNoPlayer
	}
	total := verify.CountEntities(l)
	accept := func() bool {
		n, _ := verify.ReachableEntities(l)
		return n == total
	}
	return refine(l, r, wallCount(o, DefaultPreservingWallPortion), o.Attempts, accept), nil
}

// ReverseVerifiedFill tries to wall every interior cell in row-major order,
// keeping each wall only if the level stays completable. It returns the
// number of walls placed. The result is maximal: a second sweep places none.
//
// Time: O(Area²), one flood per candidate cell.
func ReverseVerifiedFill(l *level.Level) (int, error) {
	if !verify.IsCompletable(l) {
		return 0, fmt.Errorf("%w: before refinement", verify.ErrNotCompletable)
	}
	placed := 0
	for y := 1; y < level.Size-1; y++ {
		for x := 1; x < level.Size-1; x++ {
			t := l.Ptr(level.Point{X: x, Y: y})
			if t.Has(level.Player) || t.Has(level.Wall) {
				continue
			}
			old := *t
			*t |= level.Bit(level.Wall)
			if !verify.IsCompletable(l) {
				*t = old
				continue
			}
			*t = level.Bit(level.Wall)
			placed++
		}
	}
	return placed, nil
}
