// Package cache is a SQLite-backed store of past DOI lookups. Registry
// answers are stable, so both hits and confirmed misses are cached;
// transient failures are never written.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/matsen/citecheck/internal/crossref"
	_ "modernc.org/sqlite"
)

// DefaultTTL is how long a cached lookup stays valid. Not-found entries
// expire too: a DOI can be registered after we first checked it.
const DefaultTTL = 30 * 24 * time.Hour

// Cache stores DOI lookup results keyed by normalized DOI.
type Cache struct {
	db   *sql.DB
	ttl  time.Duration
	path string
}

// Entry is one cached lookup. Work is nil when Found is false.
type Entry struct {
	Found bool
	Work  *crossref.Work
}

// Stats summarizes cache contents.
type Stats struct {
	Path     string `json:"path"`
	Total    int    `json:"total"`
	Found    int    `json:"found"`
	NotFound int    `json:"not_found"`
}

// Open opens or creates the cache database at path. A ttl of zero means
// DefaultTTL.
func Open(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{db: db, ttl: ttl, path: path}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			doi TEXT PRIMARY KEY,
			found INTEGER NOT NULL,
			payload TEXT,
			checked_at TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached entry for a normalized DOI. Expired entries,
// decode failures, and database errors all report a miss; the caller
// falls through to a live lookup.
func (c *Cache) Get(doi string) (*Entry, bool) {
	var found int
	var payload sql.NullString
	var checkedAt string

	err := c.db.QueryRow(
		`SELECT found, payload, checked_at FROM lookups WHERE doi = ?`, doi,
	).Scan(&found, &payload, &checkedAt)
	if err != nil {
		return nil, false
	}

	checked, err := time.Parse(time.RFC3339, checkedAt)
	if err != nil || time.Since(checked) > c.ttl {
		return nil, false
	}

	entry := &Entry{Found: found != 0}
	if entry.Found {
		if !payload.Valid {
			return nil, false
		}
		var work crossref.Work
		if err := json.Unmarshal([]byte(payload.String), &work); err != nil {
			return nil, false
		}
		entry.Work = &work
	}
	return entry, true
}

// Put records a lookup result, replacing any earlier entry for the DOI.
func (c *Cache) Put(doi string, found bool, work *crossref.Work) error {
	var payload sql.NullString
	if work != nil {
		b, err := json.Marshal(work)
		if err != nil {
			return fmt.Errorf("encoding work for %s: %w", doi, err)
		}
		payload = sql.NullString{String: string(b), Valid: true}
	}

	foundInt := 0
	if found {
		foundInt = 1
	}

	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO lookups (doi, found, payload, checked_at) VALUES (?, ?, ?, ?)`,
		doi, foundInt, payload, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("caching lookup for %s: %w", doi, err)
	}
	return nil
}

// Clear removes every cached lookup.
func (c *Cache) Clear() error {
	_, err := c.db.Exec(`DELETE FROM lookups`)
	return err
}

// Stats counts cached lookups by outcome.
func (c *Cache) Stats() (Stats, error) {
	s := Stats{Path: c.path}
	err := c.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(found), 0) FROM lookups`,
	).Scan(&s.Total, &s.Found)
	if err != nil {
		return Stats{}, err
	}
	s.NotFound = s.Total - s.Found
	return s, nil
}
