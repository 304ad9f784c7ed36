package level

import (
	"strconv"
	"strings"
)

// Entity identifies one kind of thing that can occupy a tile.
// Values double as bit positions within a Tile.
type Entity uint8

const (
	None Entity = iota
	Floor
	Wall
	Spikes
	Exit
	Lock
	Gold
	Key
	Enemy
	Player
)

// EntityCount is the number of real entities (Floor through Player).
const EntityCount = 9

var entityNames = [...]string{"none", "floor", "wall", "spikes", "exit", "lock", "gold", "key", "enemy", "player"}

// String returns the lower-case entity name.
func (e Entity) String() string {
	if int(e) < len(entityNames) {
		return entityNames[e]
	}
	return "entity(" + strconv.Itoa(int(e)) + ")"
}

// ParseEntity is the inverse of Entity.String.
func ParseEntity(s string) (Entity, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range entityNames {
		if n == s {
			return Entity(i), true
		}
	}
	return None, false
}

// Tile is a bit set of entities present on one cell.
type Tile uint16

// Bit returns the tile holding only e. Bit(None) is the empty tile.
func Bit(e Entity) Tile {
	if e == None {
		return 0
	}
	return 1 << e
}

// Tiles ORs the bits of every given entity.
func Tiles(es ...Entity) Tile {
	var t Tile
	for _, e := range es {
		t |= Bit(e)
	}
	return t
}

// Category masks.
var (
	// StaticMask holds entities the turn simulation never moves.
	StaticMask = Tiles(Floor, Wall, Spikes, Exit)
	// SolidMask holds entities that block movement.
	SolidMask = Bit(Wall)
	// TerrainMask holds the non-entity layer; any other bit is an entity.
	TerrainMask = Tiles(Floor, Wall, Spikes)
)

// Has reports whether e is present.
func (t Tile) Has(e Entity) bool { return e != None && t&Bit(e) != 0 }

// With returns t plus e.
func (t Tile) With(e Entity) Tile { return t | Bit(e) }

// Without returns t minus e.
func (t Tile) Without(e Entity) Tile { return t &^ Bit(e) }

// Only reports whether t is exactly Bit(e).
func (t Tile) Only(e Entity) bool { return t == Bit(e) }

// Solid reports whether t blocks movement.
func (t Tile) Solid() bool { return t&SolidMask != 0 }

// HasEntity reports whether t holds any bit beyond the terrain layer.
func (t Tile) HasEntity() bool { return t&^TerrainMask != 0 }

// Top returns the highest-numbered entity present, or None.
func (t Tile) Top() Entity {
	top := None
	for e := Floor; e <= Player; e++ {
		if t.Has(e) {
			top = e
		}
	}
	return top
}

// Entities lists the entities present in ascending bit order, which is
// also the order a renderer draws them in.
func (t Tile) Entities() []Entity {
	var out []Entity
	for e := Floor; e <= Player; e++ {
		if t.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

// String renders t as "floor|key".
func (t Tile) String() string {
	es := t.Entities()
	if len(es) == 0 {
		return "none"
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return strings.Join(parts, "|")
}
