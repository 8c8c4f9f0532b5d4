// Package storage keeps a log of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The game opens the log in memory, so it lives only as long as the
// process: results are shown on the scoreboard and dropped at exit.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Memory is the path that selects a private in-memory database.
const Memory = ":memory:"

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished game.
type RunEntry struct {
	ID        int64
	RunID     string // Generated when empty
	Session   string // Player session the run belongs to
	Score     int
	Outcome   string // "win", "wall_collision", "self_collision"
	Ticks     uint64 // Logical updates performed
	Length    int    // Final snake length
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats aggregates the runs of a session.
type Stats struct {
	Session   string
	Runs      int
	Wins      int
	BestScore int
	AvgScore  float64
}

// OpenMemory creates an empty in-memory run log and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", Memory)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

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
			run_id TEXT NOT NULL UNIQUE,
			session TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			length INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(session, score DESC);
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

// SaveRun records a finished run and returns its row ID.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, session, score, outcome, ticks, length, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Session, run.Score, run.Outcome, int64(run.Ticks), run.Length, run.Duration.Milliseconds(),
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

const runColumns = `id, run_id, session, score, outcome, ticks, length, duration_ms, created_at`

// SessionRuns returns a session's runs, best score first. Ties keep
// the order they were played in. A non-positive limit returns all runs.
func (s *Store) SessionRuns(session string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE session = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns returns the latest runs of a session, newest first.
func (s *Store) RecentRuns(session string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// TopRuns returns the best runs across all sessions.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// BestScore returns the highest score of a session.
// Returns 0 if the session has no runs.
func (s *Store) BestScore(session string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE session = ?",
		session,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// SessionStats aggregates a session's runs. winOutcome names the
// outcome counted as a win.
func (s *Store) SessionStats(session, winOutcome string) (*Stats, error) {
	stats := &Stats{Session: session}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM runs WHERE session = ?`,
		winOutcome, session,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestScore, &stats.AvgScore)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}

	return stats, nil
}

// ClearSession deletes every run of a session.
func (s *Store) ClearSession(session string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE session = ?", session)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var ticks, durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Session, &e.Score, &e.Outcome, &ticks, &e.Length, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and the string form SQLite returns.
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
