package flood

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlgen/level"
)

// Region returns the set of tiles Flood would visit from start.
func Region(l *level.Level, start level.Point, mask, target level.Tile) mapset.Set[level.Point] {
	set := mapset.New[level.Point]()
	Flood(l, start, mask, target, func(_ *level.Tile, p level.Point) Action {
		set.Put(p)
		return Continue
	})
	return set
}

// Components partitions all matching tiles into orthogonally connected
// regions. Regions appear in row-major order of their first tile and list
// their tiles in breadth-first order from it.
//
// Time: O(A). Memory: O(A).
func Components(l *level.Level, mask, target level.Tile) [][]level.Point {
	var seen [level.Area]bool
	var comps [][]level.Point
	for i := range l {
		if seen[i] || !Matches(l[i], mask, target) {
			continue
		}
		var comp []level.Point
		Flood(l, level.PointOf(i), mask, target, func(_ *level.Tile, p level.Point) Action {
			seen[level.Index(p)] = true
			comp = append(comp, p)
			return Continue
		})
		comps = append(comps, comp)
	}
	return comps
}

// Distances returns the breadth-first step count from start to every tile of
// its region. start maps to 0; tiles outside the region are absent.
func Distances(l *level.Level, start level.Point, mask, target level.Tile) map[level.Point]int {
	dist := make(map[level.Point]int)
	if !level.InBounds(start) || !Matches(l.At(start), mask, target) {
		return dist
	}
	dist[start] = 0
	queue := []level.Point{start}
	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		for _, d := range level.Neighbors4 {
			q := p.Add(d)
			if !level.InBounds(q) || !Matches(l.At(q), mask, target) {
				continue
			}
			if _, ok := dist[q]; ok {
				continue
			}
			dist[q] = dist[p] + 1
			queue = append(queue, q)
		}
	}
	return dist
}

// PathLength returns the safe-path step count between two tiles, or -1 when
// to is not reachable from from.
func PathLength(l *level.Level, from, to level.Point) int {
	if d, ok := Distances(l, from, SafeMask, SafeTarget)[to]; ok {
		return d
	}
	return -1
}
