package repository

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/isowyrm/isowyrm/internal/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A fresh connection would see a different in-memory database.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(database.Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestActivityRepositoryRoundTrip(t *testing.T) {
	repo := NewActivityRepository(testDB(t))

	counts := map[string]int{"2025-06-01": 3, "2025-06-02": 0, "2025-06-03": 11}
	if err := repo.Put("octocat", 365, counts); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, fresh, err := repo.Get("octocat", 365, time.Hour)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !fresh {
		t.Fatal("expected a fresh cache hit")
	}
	if len(got) != len(counts) {
		t.Fatalf("expected %d entries, got %d", len(counts), len(got))
	}
	for k, v := range counts {
		if got[k] != v {
			t.Fatalf("expected %s=%d, got %d", k, v, got[k])
		}
	}
}

func TestActivityRepositoryMissAndStale(t *testing.T) {
	repo := NewActivityRepository(testDB(t))

	if _, fresh, err := repo.Get("nobody", 365, time.Hour); err != nil || fresh {
		t.Fatalf("expected clean miss, got fresh=%v err=%v", fresh, err)
	}

	if err := repo.Put("octocat", 180, map[string]int{"2025-06-01": 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, fresh, err := repo.Get("octocat", 180, 0); err != nil || fresh {
		t.Fatalf("expected stale entry to miss, got fresh=%v err=%v", fresh, err)
	}
	// Same user, different lookback is a distinct key.
	if _, fresh, err := repo.Get("octocat", 365, time.Hour); err != nil || fresh {
		t.Fatalf("expected miss for other lookback, got fresh=%v err=%v", fresh, err)
	}
}

func TestActivityRepositoryPurge(t *testing.T) {
	repo := NewActivityRepository(testDB(t))

	if err := repo.Put("octocat", 365, map[string]int{"2025-06-01": 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put("hubot", 180, map[string]int{"2025-06-02": 2}); err != nil {
		t.Fatalf("put: %v", err)
	}

	purged, err := repo.Purge()
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 2 {
		t.Fatalf("expected 2 purged rows, got %d", purged)
	}
	if _, fresh, _ := repo.Get("octocat", 365, time.Hour); fresh {
		t.Fatal("expected cache to be empty after purge")
	}
}
