// Package store provides a SQLite-backed journal of files opened and saved.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS file_events (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	path     TEXT NOT NULL,
	kind     TEXT NOT NULL,
	added    INTEGER NOT NULL DEFAULT 0,
	removed  INTEGER NOT NULL DEFAULT 0,
	created  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_path ON file_events(path);
CREATE INDEX IF NOT EXISTS idx_events_created ON file_events(created);
`

// Event kinds.
const (
	KindOpen = "open"
	KindSave = "save"
)

// Entry is the latest journal event for one path.
type Entry struct {
	Path    string
	Kind    string
	Added   int
	Removed int
	When    time.Time
}

// Journal records file activity. A nil *Journal is valid and records nothing.
type Journal struct {
	mu        sync.Mutex
	db        *sql.DB
	retention time.Duration
}

// Open creates or opens a journal database at the given path. Events older
// than retention are purged on open; zero keeps everything.
func Open(dbPath string, retention time.Duration) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	j := &Journal{db: db, retention: retention}
	j.purgeStale()
	return j, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}

// RecordOpen notes that path was opened. No-op on nil receiver.
func (j *Journal) RecordOpen(path string) {
	j.record(path, KindOpen, 0, 0)
}

// RecordSave notes a save of path with its changed line counts.
// No-op on nil receiver.
func (j *Journal) RecordSave(path string, added, removed int) {
	j.record(path, KindSave, added, removed)
}

func (j *Journal) record(path, kind string, added, removed int) {
	if j == nil || path == "" {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(
		"INSERT INTO file_events (path, kind, added, removed, created) VALUES (?, ?, ?, ?, ?)",
		path, kind, added, removed, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Str("kind", kind).Msg("failed to record file event")
	}
}

// Recent returns the latest event for up to n distinct paths, newest first.
// Safe to call on a nil receiver (returns nil).
func (j *Journal) Recent(n int) []Entry {
	if j == nil || n <= 0 {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(`
		SELECT e.path, e.kind, e.added, e.removed, e.created
		FROM file_events e
		JOIN (SELECT path, MAX(id) AS last FROM file_events GROUP BY path) l
		  ON e.id = l.last
		ORDER BY e.id DESC
		LIMIT ?`, n)
	if err != nil {
		log.Warn().Err(err).Msg("failed to query recent files")
		return nil
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.Path, &e.Kind, &e.Added, &e.Removed, &created); err != nil {
			log.Warn().Err(err).Msg("failed to scan file event")
			continue
		}
		e.When = time.Unix(created, 0)
		out = append(out, e)
	}
	return out
}

// purgeStale removes events older than the retention window.
func (j *Journal) purgeStale() {
	if j.retention <= 0 {
		return
	}
	cutoff := time.Now().Add(-j.retention).Unix()
	res, err := j.db.Exec("DELETE FROM file_events WHERE created <= ?", cutoff)
	if err != nil {
		log.Warn().Err(err).Msg("failed to purge stale journal entries")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Msg("purged stale journal entries")
	}
}
