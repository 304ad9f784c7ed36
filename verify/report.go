package verify

import (
	"github.com/katalvlaran/lvlgen/flood"
	"github.com/katalvlaran/lvlgen/level"
)

// Report summarises the reachability of a level from its player.
type Report struct {
	HasPlayer   bool        `json:"has_player"`
	Player      level.Point `json:"player"`
	Completable bool        `json:"completable"`
	// Reachable is the size of the player's safe region.
	Reachable int `json:"reachable"`
	// Entities and ReachableEntities count entity-bearing tiles.
	Entities          int `json:"entities"`
	ReachableEntities int `json:"reachable_entities"`
	// Unreachable lists entity-bearing tiles outside the safe region,
	// row-major.
	Unreachable []level.Point `json:"unreachable,omitempty"`
	// KeyPath and ExitPath are safe step counts player→key and key→exit,
	// -1 when unreachable or absent.
	KeyPath  int `json:"key_path"`
	ExitPath int `json:"exit_path"`
}

// Inspect computes a Report for l.
func Inspect(l *level.Level) Report {
	r := Report{
		Entities: CountEntities(l),
		KeyPath:  -1,
		ExitPath: -1,
	}
	p, ok := l.FindPlayer()
	if !ok {
		for i, t := range l {
			if t.HasEntity() {
				r.Unreachable = append(r.Unreachable, level.PointOf(i))
			}
		}
		return r
	}
	r.HasPlayer = true
	r.Player = p
	r.Completable = IsCompletable(l)

	region := flood.Region(l, p, flood.SafeMask, flood.SafeTarget)
	r.Reachable = region.Size()
	for i, t := range l {
		if !t.HasEntity() {
			continue
		}
		if q := level.PointOf(i); region.Has(q) {
			r.ReachableEntities++
		} else {
			r.Unreachable = append(r.Unreachable, q)
		}
	}

	key, hasKey := l.First(level.Key)
	exit, hasExit := l.First(level.Exit)
	if hasKey {
		r.KeyPath = flood.PathLength(l, p, key)
	}
	if hasKey && hasExit {
		r.ExitPath = flood.PathLength(l, key, exit)
	}
	return r
}

// Reason names the first missing requirement, or "ok".
func (r Report) Reason() string {
	switch {
	case !r.HasPlayer:
		return "no player"
	case r.KeyPath < 0:
		return "key unreachable"
	case !r.Completable:
		return "exit unreachable"
	}
	return "ok"
}
