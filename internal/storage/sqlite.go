// Package storage persists the clock's settings and game scores in SQLite
// via the pure-Go modernc.org/sqlite driver. Writes are deliberately
// infrequent: difficulty on change, best scores only on improvement, one
// run row per completed game. This mirrors the write-endurance discipline
// of the EEPROM the device originally targeted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	// DefaultDifficulty is substituted when the stored value is missing
	// or implausible.
	DefaultDifficulty = 3

	// maxPlausibleScore bounds loaded best scores; anything above is
	// treated as corrupt and reset.
	maxPlausibleScore = 9999
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one completed game run.
type RunEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path, creating
// parent directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
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

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS best_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id, created_at DESC);
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

// Difficulty returns the stored difficulty, range-validated to 1..5.
// An out-of-range or missing value is replaced by the default and, when
// out of range, rewritten.
func (s *Store) Difficulty() (int, error) {
	var v int
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = 'difficulty'").Scan(&v)
	if err == sql.ErrNoRows {
		return DefaultDifficulty, nil
	}
	if err != nil {
		return DefaultDifficulty, fmt.Errorf("storage: cannot read difficulty: %w", err)
	}
	if v < 1 || v > 5 {
		if err := s.SetDifficulty(DefaultDifficulty); err != nil {
			return DefaultDifficulty, err
		}
		return DefaultDifficulty, nil
	}
	return v, nil
}

// SetDifficulty stores a difficulty value. Writes only when the value
// actually changes.
func (s *Store) SetDifficulty(v int) error {
	if v < 1 || v > 5 {
		return fmt.Errorf("storage: difficulty %d out of range", v)
	}
	cur, err := s.settingValue("difficulty")
	if err == nil && cur == int64(v) {
		return nil
	}
	_, err = s.db.Exec(
		"INSERT INTO settings (key, value) VALUES ('difficulty', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		v,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save difficulty: %w", err)
	}
	return nil
}

// BestScore returns the best persisted score for a game, validated to a
// plausible range. Corrupt values are reset to zero and rewritten.
func (s *Store) BestScore(gameID string) (int, error) {
	var v int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE game_id = ?", gameID).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best score: %w", err)
	}
	if v < 0 || v > maxPlausibleScore {
		_, err := s.db.Exec("UPDATE best_scores SET score = 0, updated_at = CURRENT_TIMESTAMP WHERE game_id = ?", gameID)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot reset corrupt best score: %w", err)
		}
		return 0, nil
	}
	return v, nil
}

// RecordScore logs one completed run and promotes the best score when the
// run improves it. Returns whether the best score changed; a non-improving
// score leaves the stored best untouched.
func (s *Store) RecordScore(gameID string, score int) (improved bool, err error) {
	if _, err := s.db.Exec("INSERT INTO runs (game_id, score) VALUES (?, ?)", gameID, score); err != nil {
		return false, fmt.Errorf("storage: cannot record run: %w", err)
	}

	best, err := s.BestScore(gameID)
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}

	_, err = s.db.Exec(
		`INSERT INTO best_scores (game_id, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return true, nil
}

// RecentRuns returns the most recent runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearAll wipes every stored score and setting. Used by the reset CLI
// command, never by the device itself.
func (s *Store) ClearAll() error {
	for _, stmt := range []string{
		"DELETE FROM runs",
		"DELETE FROM best_scores",
		"DELETE FROM settings",
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("storage: cannot clear: %w", err)
		}
	}
	return nil
}

// ClockOffset returns the persisted clock adjustment. Implements
// rtc.OffsetStore.
func (s *Store) ClockOffset() (time.Duration, error) {
	v, err := s.settingValue("clock_offset_ms")
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read clock offset: %w", err)
	}
	return time.Duration(v) * time.Millisecond, nil
}

// SetClockOffset persists the clock adjustment. Implements rtc.OffsetStore.
func (s *Store) SetClockOffset(d time.Duration) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES ('clock_offset_ms', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		d.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save clock offset: %w", err)
	}
	return nil
}

func (s *Store) settingValue(key string) (int64, error) {
	var v int64
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	return v, err
}

// parseTimestamp handles both time.Time and string values coming back from
// the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// rawSetBestScore bypasses validation. Test helper for corrupt-value
// recovery paths.
func (s *Store) rawSetBestScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score`,
		gameID, score,
	)
	return err
}

func (s *Store) rawSetSetting(key string, value int64) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}
