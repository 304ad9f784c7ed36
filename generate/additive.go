package generate

import (
	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/rng"
)

// EmptyBordered returns a level that is Floor inside a Wall ring.
func EmptyBordered() *level.Level {
	l := level.New()
	ResetBordered(l)
	return l
}

// ResetBordered overwrites l with Floor inside a Wall ring.
func ResetBordered(l *level.Level) {
	l.Fill(level.Floor)
	l.PaintRect(level.Wall, level.Bounds, level.StampBorder)
}

// Digger carves connected Floor corridors with Options.Iterations random
// walks. The first walk starts anywhere in the interior; later walks start
// on a pure-Floor cell. Walks are clamped to the interior.
//
// Digger is meant for a Wall-filled level; on an open one it only adds
// Floor.
func Digger(l *level.Level, r rng.Random, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	steps := int(o.WalkablePortion * level.Area)
	for i := 0; i < o.Iterations; i++ {
		var at level.Point
		if i == 0 {
			at = RandomInterior(r)
		} else if at, err = FindCell(r, o.MaxAttempts, "digger start", PureFloor(l)); err != nil {
			return err
		}
		dir := level.Neighbors4[r.IntRange(0, 3)]
		turn := o.TurnChanceStep
		for s := 0; s < steps; s++ {
			l.Set(at, level.Bit(level.Floor))
			at = clampInterior(at.Add(dir))
			if r.Chance(turn) {
				dir = level.Neighbors4[r.IntRange(0, 3)]
				turn = o.TurnChanceStep
			} else {
				turn += o.TurnChanceStep
			}
		}
	}
	return nil
}

// BasicRooms stamps Options.RoomCount Floor rectangles, each centred on a
// pure-Floor cell and clamped to the interior. Rooms may overlap.
func BasicRooms(l *level.Level, r rng.Random, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	for i := 0; i < o.RoomCount; i++ {
		c, err := FindCell(r, o.MaxAttempts, "room centre", PureFloor(l))
		if err != nil {
			return err
		}
		w := r.IntRange(o.RoomMin, o.RoomMax)
		h := r.IntRange(o.RoomMin, o.RoomMax)
		room := level.Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
		l.PaintRect(level.Floor, room.Intersect(level.Interior), level.StampArea)
	}
	return nil
}

// Scatter fills l with Wall and then turns Options.FloorPortion×Area random
// interior cells into Floor. Nothing about the result is guaranteed.
func Scatter(l *level.Level, r rng.Random, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	l.Fill(level.Wall)
	n := int(o.FloorPortion * level.Area)
	for i := 0; i < n; i++ {
		l.Set(RandomInterior(r), level.Bit(level.Floor))
	}
	return nil
}

func clampInterior(p level.Point) level.Point {
	return level.Point{
		X: min(max(p.X, 1), level.Size-2),
		Y: min(max(p.Y, 1), level.Size-2),
	}
}
