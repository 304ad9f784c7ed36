package flood

import "github.com/katalvlaran/lvlgen/level"

// Action tells Flood whether to keep going after a visit.
type Action int

const (
	// Continue proceeds with the traversal.
	Continue Action = iota
	// Stop halts the traversal immediately.
	Stop
)

// Visitor is invoked once per matching reachable tile.
// The tile pointer aliases the level and may be modified in place.
type Visitor func(t *level.Tile, p level.Point) Action

// Safe walkability query: Floor present, Wall and Spikes absent.
var (
	SafeMask   = level.Tiles(level.Floor, level.Wall, level.Spikes)
	SafeTarget = level.Bit(level.Floor)
)

// Matches reports whether t satisfies the flood rule for mask and target.
func Matches(t, mask, target level.Tile) bool {
	return t&mask == target&mask
}

// Flood traverses the region of matching tiles connected to start and calls
// visit for each. It returns the number of tiles visited; when visit returns
// Stop, the stopping tile is not counted. A nil visit is treated as a visitor
// that always continues. An off-grid or non-matching start visits nothing.
func Flood(l *level.Level, start level.Point, mask, target level.Tile, visit Visitor) int {
	if !level.InBounds(start) || !Matches(l.At(start), mask, target) {
		return 0
	}
	var seen [level.Area]bool
	queue := make([]int, 0, 64)
	i0 := level.Index(start)
	seen[i0] = true
	queue = append(queue, i0)

	count := 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		p := level.PointOf(u)
		if visit != nil && visit(&l[u], p) == Stop {
			return count
		}
		count++
		for _, d := range level.Neighbors4 {
			q := p.Add(d)
			if !level.InBounds(q) {
				continue
			}
			vi := level.Index(q)
			if seen[vi] || !Matches(l[vi], mask, target) {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return count
}

// Record returns a visitor that ORs every visited tile into acc.
func Record(acc *level.Tile) Visitor {
	return func(t *level.Tile, _ level.Point) Action {
		*acc |= *t
		return Continue
	}
}

// Until returns a visitor that records into acc and stops as soon as acc
// holds every entity in want.
func Until(acc *level.Tile, want level.Tile) Visitor {
	return func(t *level.Tile, _ level.Point) Action {
		*acc |= *t
		if *acc&want == want {
			return Stop
		}
		return Continue
	}
}
