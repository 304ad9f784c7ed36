package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlgen/level"
)

// Sentinel errors for persistence.
var (
	// ErrNotFound indicates no record with the requested name.
	ErrNotFound = errors.New("store: level not found")

	// ErrInvalidRecord indicates a record missing its name or level.
	ErrInvalidRecord = errors.New("store: invalid record")
)

// Meta is the provenance of a stored level.
type Meta struct {
	Name        string    `json:"name"`
	Recipe      string    `json:"recipe"`
	SeedA       uint64    `json:"seed_a"`
	SeedB       uint64    `json:"seed_b"`
	Completable bool      `json:"completable"`
	CreatedAt   time.Time `json:"created_at"`
}

// Record is a stored level.
type Record struct {
	Meta
	Level *level.Level
}

// Storage defines the interface for level persistence.
type Storage interface {
	// Save inserts or replaces the record with r.Name. A zero CreatedAt is
	// set to the current time.
	Save(ctx context.Context, r *Record) error
	Load(ctx context.Context, name string) (*Record, error)
	// List returns every record's Meta sorted by name.
	List(ctx context.Context) ([]Meta, error)
	Delete(ctx context.Context, name string) error
	Close() error
}

func check(r *Record) error {
	if r == nil || r.Level == nil {
		return fmt.Errorf("%w: missing level", ErrInvalidRecord)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidRecord)
	}
	return nil
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}
