// Package storage provides SQLite-based run history for the bounce renderer.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only run statistics are recorded; simulation state is never restored.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run sources.
const (
	SourceLocal = "local"
	SourceSSH   = "ssh"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded animation session.
type Run struct {
	ID        int64
	Source    string // SourceLocal or SourceSSH
	User      string // SSH user or local login name
	Preset    string
	Frames    int
	Bounces   int
	Respawns  int
	Duration  time.Duration
	CreatedAt time.Time
}

// Totals aggregates every recorded run.
type Totals struct {
	Runs     int
	Frames   int
	Bounces  int
	Respawns int
	Duration time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			preset TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL DEFAULT 0,
			bounces INTEGER NOT NULL DEFAULT 0,
			respawns INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (source, username, preset, frames, bounces, respawns, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.User, r.Preset, r.Frames, r.Bounces, r.Respawns, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
// An empty source matches every source.
func (s *Store) RecentRuns(source string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, source, username, preset, frames, bounces, respawns, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR source = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		source, source, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Source, &r.User, &r.Preset, &r.Frames, &r.Bounces, &r.Respawns, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Totals sums every recorded run. All fields are zero for an empty history.
func (s *Store) Totals() (Totals, error) {
	var (
		t                                   Totals
		frames, bounces, respawns, duration sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(frames), SUM(bounces), SUM(respawns), SUM(duration_ms) FROM runs`,
	).Scan(&t.Runs, &frames, &bounces, &respawns, &duration)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}

	t.Frames = int(frames.Int64)
	t.Bounces = int(bounces.Int64)
	t.Respawns = int(respawns.Int64)
	t.Duration = time.Duration(duration.Int64) * time.Millisecond
	return t, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
