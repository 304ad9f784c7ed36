package level

import "strconv"

// Grid dimensions. Levels never resize.
const (
	Size = 22
	Area = Size * Size
)

// Point is a cell coordinate; (0,0) is the top-left corner.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// String renders p as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Orthogonal neighbour offsets: N, E, S, W.
var Neighbors4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Index maps p to its row-major array index. p must be in bounds.
func Index(p Point) int { return p.X + p.Y*Size }

// PointOf converts a row-major index back to a Point.
func PointOf(i int) Point { return Point{i % Size, i / Size} }

// InBounds reports whether p lies on the grid.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// InInterior reports whether p lies strictly inside the border ring.
func InInterior(p Point) bool {
	return p.X >= 1 && p.X < Size-1 && p.Y >= 1 && p.Y < Size-1
}

// OnBorder reports whether p is part of the outer ring.
func OnBorder(p Point) bool {
	return InBounds(p) && !InInterior(p)
}

// Rect is an axis-aligned rectangle with its top-left corner at (X,Y).
type Rect struct {
	X, Y, W, H int
}

// Bounds covers the whole grid; Interior excludes the border ring.
var (
	Bounds   = Rect{0, 0, Size, Size}
	Interior = Rect{1, 1, Size - 2, Size - 2}
)

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of r and o (possibly empty).
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// onEdge reports whether p lies on the outline of r.
func (r Rect) onEdge(p Point) bool {
	return p.X == r.X || p.X == r.X+r.W-1 || p.Y == r.Y || p.Y == r.Y+r.H-1
}

// StampMode selects which cells of a rectangle a stamp touches.
type StampMode int

const (
	// StampBorder touches only the outline.
	StampBorder StampMode = iota
	// StampArea touches every cell.
	StampArea
)

// Level is a row-major grid of tiles. The zero value is an empty grid.
type Level [Area]Tile

// New returns an empty level.
func New() *Level { return new(Level) }

// At returns the tile at p, or the empty tile when p is off the grid.
func (l *Level) At(p Point) Tile {
	if !InBounds(p) {
		return 0
	}
	return l[Index(p)]
}

// Set replaces the tile at p. Off-grid writes are ignored.
func (l *Level) Set(p Point, t Tile) {
	if InBounds(p) {
		l[Index(p)] = t
	}
}

// Ptr returns a pointer to the tile at p, or nil when p is off the grid.
func (l *Level) Ptr(p Point) *Tile {
	if !InBounds(p) {
		return nil
	}
	return &l[Index(p)]
}

// Clone returns an independent copy.
func (l *Level) Clone() *Level {
	c := *l
	return &c
}

// Fill sets every tile to exactly Bit(e), discarding all prior bits.
func (l *Level) Fill(e Entity) {
	b := Bit(e)
	for i := range l {
		l[i] = b
	}
}

// StampRect ORs Bit(e) onto the outline or area of r, clipped to the grid.
func (l *Level) StampRect(e Entity, r Rect, mode StampMode) {
	l.eachInRect(r, mode, func(t *Tile) { *t |= Bit(e) })
}

// PaintRect is StampRect that replaces tiles with exactly Bit(e).
func (l *Level) PaintRect(e Entity, r Rect, mode StampMode) {
	l.eachInRect(r, mode, func(t *Tile) { *t = Bit(e) })
}

func (l *Level) eachInRect(r Rect, mode StampMode, fn func(*Tile)) {
	clip := r.Intersect(Bounds)
	for y := clip.Y; y < clip.Y+clip.H; y++ {
		for x := clip.X; x < clip.X+clip.W; x++ {
			p := Point{x, y}
			if mode == StampBorder && !r.onEdge(p) {
				continue
			}
			fn(&l[Index(p)])
		}
	}
}

// First returns the first tile in row-major order holding e.
func (l *Level) First(e Entity) (Point, bool) {
	for i, t := range l {
		if t.Has(e) {
			return PointOf(i), true
		}
	}
	return Point{}, false
}

// FindPlayer returns the first row-major tile holding the Player.
func (l *Level) FindPlayer() (Point, bool) {
	return l.First(Player)
}

// Count returns the number of tiles holding e.
func (l *Level) Count(e Entity) int {
	n := 0
	for _, t := range l {
		if t.Has(e) {
			n++
		}
	}
	return n
}

// Find lists every tile holding e in row-major order.
func (l *Level) Find(e Entity) []Point {
	var out []Point
	for i, t := range l {
		if t.Has(e) {
			out = append(out, PointOf(i))
		}
	}
	return out
}

// Overlaps lists tiles holding both Wall and Floor.
func (l *Level) Overlaps() []Point {
	both := Tiles(Wall, Floor)
	var out []Point
	for i, t := range l {
		if t&both == both {
			out = append(out, PointOf(i))
		}
	}
	return out
}
