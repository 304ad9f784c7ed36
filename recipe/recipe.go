package recipe

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlgen/generate"
	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/place"
	"github.com/katalvlaran/lvlgen/rng"
)

// Sentinel errors for the recipe registry.
var (
	// ErrUnknownRecipe indicates a name with no registered recipe.
	ErrUnknownRecipe = errors.New("recipe: unknown recipe")

	// ErrDuplicateRecipe indicates Register was given a taken name.
	ErrDuplicateRecipe = errors.New("recipe: recipe already registered")
)

// Tuning carries per-call options down to the stages.
type Tuning struct {
	Generate []generate.Option
	Place    []place.Option
}

// Stage mutates a level in place.
type Stage func(l *level.Level, r rng.Random, t Tuning) error

// Recipe is a named generation pipeline.
type Recipe struct {
	Name        string
	Description string
	Stages      []Stage
	// RequireCompletable rejects attempts the verify package cannot solve.
	RequireCompletable bool
}

// Stage adapters for the generate and place packages.
var (
	// Bordered resets the level to Floor inside a Wall ring.
	Bordered Stage = func(l *level.Level, _ rng.Random, _ Tuning) error {
		generate.ResetBordered(l)
		return nil
	}
	// Solid fills the level with Wall.
	Solid Stage = func(l *level.Level, _ rng.Random, _ Tuning) error {
		l.Fill(level.Wall)
		return nil
	}
	// Digger carves corridors with generate.Digger.
	Digger Stage = func(l *level.Level, r rng.Random, t Tuning) error {
		return generate.Digger(l, r, t.Generate...)
	}
	// Rooms adds generate.BasicRooms.
	Rooms Stage = func(l *level.Level, r rng.Random, t Tuning) error {
		return generate.BasicRooms(l, r, t.Generate...)
	}
	// Noise runs the generate.Scatter baseline.
	Noise Stage = func(l *level.Level, r rng.Random, t Tuning) error {
		return generate.Scatter(l, r, t.Generate...)
	}
	// Scatter places entities blindly with place.Scatter.
	Scatter Stage = func(l *level.Level, r rng.Random, t Tuning) error {
		return place.Scatter(l, r, t.Place...)
	}
	// VerifiedScatter places entities with place.VerifiedScatter.
	VerifiedScatter Stage = func(l *level.Level, r rng.Random, t Tuning) error {
		return place.VerifiedScatter(l, r, t.Place...)
	}
	// WallScatter adds walls that keep the level completable.
	WallScatter Stage = func(l *level.Level, r rng.Random, t Tuning) error {
		_, err := generate.ReverseVerifiedScatter(l, r, t.Generate...)
		return err
	}
	// WallPreserving adds walls that keep every entity reachable.
	WallPreserving Stage = func(l *level.Level, r rng.Random, t Tuning) error {
		_, err := generate.ReverseEntityPreservingScatter(l, r, t.Generate...)
		return err
	}
	// WallFill walls every cell the level can spare.
	WallFill Stage = func(l *level.Level, _ rng.Random, _ Tuning) error {
		_, err := generate.ReverseVerifiedFill(l)
		return err
	}
)

var (
	mu       sync.RWMutex
	registry = map[string]Recipe{}
)

func init() {
	for _, r := range []Recipe{
		{
			Name:               "classic",
			Description:        "open arena, blind placement, verified wall scatter",
			Stages:             []Stage{Bordered, Scatter, WallScatter},
			RequireCompletable: true,
		},
		{
			Name:               "digger",
			Description:        "dug caves, verified placement, verified wall scatter",
			Stages:             []Stage{Solid, Digger, VerifiedScatter, WallScatter},
			RequireCompletable: true,
		},
		{
			Name:               "rooms",
			Description:        "dug caves with rooms, verified placement, entity-preserving walls",
			Stages:             []Stage{Solid, Digger, Rooms, VerifiedScatter, WallPreserving},
			RequireCompletable: true,
		},
		{
			Name:               "dense",
			Description:        "open arena, verified placement, maximal wall fill",
			Stages:             []Stage{Bordered, VerifiedScatter, WallFill},
			RequireCompletable: true,
		},
		{
			Name:        "noise",
			Description: "wall noise with blind placement; not guaranteed completable",
			Stages:      []Stage{Noise, Scatter},
		},
	} {
		registry[r.Name] = r
	}
}

// Register adds a custom recipe under r.Name.
func Register(r Recipe) error {
	if r.Name == "" || len(r.Stages) == 0 {
		return fmt.Errorf("%w: recipe needs a name and at least one stage", ErrOptionViolation)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[r.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRecipe, r.Name)
	}
	registry[r.Name] = r
	return nil
}

// Lookup returns the recipe registered under name.
func Lookup(name string) (Recipe, error) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[name]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q", ErrUnknownRecipe, name)
	}
	return r, nil
}

// Names lists registered recipes in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
