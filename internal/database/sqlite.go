package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

// Config holds database configuration
type Config struct {
	Path string
}

// Schema is the fetch-cache table. One row per (user, lookback) pair with
// the raw date→count payload as JSON.
const Schema = `
	CREATE TABLE IF NOT EXISTS activity_cache (
		user       TEXT    NOT NULL,
		lookback   INTEGER NOT NULL,
		counts     TEXT    NOT NULL,
		fetched_at INTEGER NOT NULL,
		PRIMARY KEY (user, lookback)
	)
`

// Init opens the database and applies the schema. Safe to call more than
// once; only the first call does work.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		db, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)

		// WAL mode for better concurrency under the HTTP server.
		if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			return
		}

		if _, err = db.Exec(Schema); err != nil {
			err = fmt.Errorf("failed to apply schema: %w", err)
			return
		}

		if err = db.Ping(); err != nil {
			return
		}

		log.Printf("Database initialized successfully: %s", cfg.Path)
	})

	return err
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
