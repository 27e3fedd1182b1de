package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ActivityRepository handles database operations for the fetch cache.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Get returns the cached date→count payload for (user, lookback) if one
// exists and is younger than maxAge. The second return is false on a miss
// or a stale entry.
func (r *ActivityRepository) Get(user string, lookback int, maxAge time.Duration) (map[string]int, bool, error) {
	var payload string
	var fetchedAt int64
	err := r.db.QueryRow(
		"SELECT counts, fetched_at FROM activity_cache WHERE user = ? AND lookback = ?",
		user, lookback,
	).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query activity cache: %w", err)
	}

	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false, nil
	}

	var counts map[string]int
	if err := json.Unmarshal([]byte(payload), &counts); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached counts: %w", err)
	}
	return counts, true, nil
}

// Put stores or replaces the payload for (user, lookback).
func (r *ActivityRepository) Put(user string, lookback int, counts map[string]int) error {
	payload, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to encode counts: %w", err)
	}
	_, err = r.db.Exec(
		"INSERT OR REPLACE INTO activity_cache (user, lookback, counts, fetched_at) VALUES (?, ?, ?, ?)",
		user, lookback, string(payload), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store activity cache: %w", err)
	}
	return nil
}

// Purge drops every cached entry and returns the number removed.
func (r *ActivityRepository) Purge() (int64, error) {
	res, err := r.db.Exec("DELETE FROM activity_cache")
	if err != nil {
		return 0, fmt.Errorf("failed to purge activity cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged rows: %w", err)
	}
	return n, nil
}
