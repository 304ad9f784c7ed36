package server

import (
	"context"
	"log"

	"github.com/katalvlaran/lvlgen/store"
)

// Config selects the listen port and the storage backend.
type Config struct {
	Port        string
	DBType      string
	DatabaseURL string
	DBFile      string
}

const defaultDatabaseURL = "host=localhost user=lvlgen password=lvlgen dbname=lvlgen sslmode=disable"

// ConfigFromEnv reads PORT, DB_TYPE, DATABASE_URL and DB_FILE through
// getenv, filling defaults for unset values.
func ConfigFromEnv(getenv func(string) string) Config {
	c := Config{
		Port:        getenv("PORT"),
		DBType:      getenv("DB_TYPE"),
		DatabaseURL: getenv("DATABASE_URL"),
		DBFile:      getenv("DB_FILE"),
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DBType == "" {
		c.DBType = "json"
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = defaultDatabaseURL
	}
	if c.DBFile == "" {
		c.DBFile = "levels.json"
	}
	return c
}

// OpenStorage opens the backend named by c.DBType; anything but "postgres"
// selects the JSON file store.
func OpenStorage(ctx context.Context, c Config) (store.Storage, error) {
	if c.DBType == "postgres" {
		ps, err := store.NewPostgresStore(ctx, c.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Println("Using PostgreSQL persistence")
		return ps, nil
	}
	js, err := store.NewJSONStore(c.DBFile)
	if err != nil {
		return nil, err
	}
	log.Println("Using JSON persistence")
	return js, nil
}
