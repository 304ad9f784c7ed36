package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/katalvlaran/lvlgen/level"
)

// PostgresStore handles level persistence using PostgreSQL.
// Seeds are stored as BIGINT holding the two's-complement bits of the uint64.
type PostgresStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS levels (
	name        TEXT PRIMARY KEY,
	recipe      TEXT NOT NULL,
	seed_a      BIGINT NOT NULL,
	seed_b      BIGINT NOT NULL,
	completable BOOLEAN NOT NULL,
	tiles       BYTEA NOT NULL,
	created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	updated_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
`

// NewPostgresStore connects, pings and initialises the schema.
func NewPostgresStore(ctx context.Context, connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	ps := &PostgresStore{db: db}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return ps, nil
}

// Save upserts r on its name.
func (ps *PostgresStore) Save(ctx context.Context, r *Record) error {
	if err := check(r); err != nil {
		return err
	}
	tiles, err := r.Level.MarshalBinary()
	if err != nil {
		return err
	}
	query := `
	INSERT INTO levels (name, recipe, seed_a, seed_b, completable, tiles, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
	ON CONFLICT (name)
	DO UPDATE SET
		recipe = $2, seed_a = $3, seed_b = $4, completable = $5, tiles = $6,
		updated_at = NOW()
	`
	var created sql.NullTime
	if !r.CreatedAt.IsZero() {
		created = sql.NullTime{Time: r.CreatedAt, Valid: true}
	}
	_, err = ps.db.ExecContext(ctx, query,
		r.Name, r.Recipe, int64(r.SeedA), int64(r.SeedB), r.Completable, tiles, created)
	if err != nil {
		return fmt.Errorf("failed to save level: %w", err)
	}
	return nil
}

// Load returns the record stored under name.
func (ps *PostgresStore) Load(ctx context.Context, name string) (*Record, error) {
	query := `SELECT name, recipe, seed_a, seed_b, completable, tiles, created_at FROM levels WHERE name = $1`

	var (
		rec   Record
		seedA int64
		seedB int64
		tiles []byte
	)
	err := ps.db.QueryRowContext(ctx, query, name).Scan(
		&rec.Name, &rec.Recipe, &seedA, &seedB, &rec.Completable, &tiles, &rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	rec.SeedA, rec.SeedB = uint64(seedA), uint64(seedB)
	rec.Level = level.New()
	if err := rec.Level.UnmarshalBinary(tiles); err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return &rec, nil
}

// List returns every record's Meta sorted by name.
func (ps *PostgresStore) List(ctx context.Context) ([]Meta, error) {
	rows, err := ps.db.QueryContext(ctx,
		`SELECT name, recipe, seed_a, seed_b, completable, created_at FROM levels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	var out []Meta
	for rows.Next() {
		var (
			m            Meta
			seedA, seedB int64
		)
		if err := rows.Scan(&m.Name, &m.Recipe, &seedA, &seedB, &m.Completable, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan level: %w", err)
		}
		m.SeedA, m.SeedB = uint64(seedA), uint64(seedB)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Delete removes the record stored under name.
func (ps *PostgresStore) Delete(ctx context.Context, name string) error {
	res, err := ps.db.ExecContext(ctx, `DELETE FROM levels WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete level: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(name)
	}
	return nil
}

// Close closes the connection pool.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
