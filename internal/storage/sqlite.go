// Package storage provides SQLite-based persistence for runs and high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	BoardID   string
	Player    string
	Score     int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id TEXT NOT NULL,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_board ON scores(board_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(board_id, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			board_id TEXT NOT NULL,
			player TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (board_id, player)
		);
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

// RecordScore stores a finished run and returns its ID.
func (s *Store) RecordScore(boardID, player string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (board_id, player, score) VALUES (?, ?, ?)",
		boardID, player, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N runs on a board, best first.
func (s *Store) TopScores(boardID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, board_id, player, score, created_at
		 FROM scores
		 WHERE board_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		boardID, limit,
	)
}

// AllScores retrieves every run on a board, best first.
func (s *Store) AllScores(boardID string) ([]ScoreEntry, error) {
	return s.queryScores(
		`SELECT id, board_id, player, score, created_at
		 FROM scores
		 WHERE board_id = ?
		 ORDER BY score DESC, id ASC`,
		boardID,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.BoardID, &e.Player, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the stored high score of a player on a board, or 0.
func (s *Store) HighScore(boardID, player string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE board_id = ? AND player = ?",
		boardID, player,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore replaces the high score of a player on a board. Zero resets
// it; the run history is kept.
func (s *Store) SetHighScore(boardID, player string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (board_id, player, score, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(board_id, player) DO UPDATE SET
		   score = excluded.score,
		   updated_at = excluded.updated_at`,
		boardID, player, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearScores deletes every run and high score on a board.
func (s *Store) ClearScores(boardID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM scores WHERE board_id = ?", boardID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM high_scores WHERE board_id = ?", boardID); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// BoardStats contains aggregated statistics for a board.
type BoardStats struct {
	BoardID    string
	RunsCount  int
	BestScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for one board.
func (s *Store) Stats(boardID string) (*BoardStats, error) {
	stats := &BoardStats{BoardID: boardID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE board_id = ?`,
		boardID,
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every board that has runs.
func (s *Store) AllStats() (map[string]*BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY board_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all board stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*BoardStats)
	for rows.Next() {
		var b BoardStats
		var lastPlayed any
		if err := rows.Scan(&b.BoardID, &b.RunsCount, &b.BestScore, &b.AvgScore, &b.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		b.LastPlayed = parseTime(lastPlayed)
		stats[b.BoardID] = &b
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles the datetime as either time.Time or string.
func parseTime(v any) time.Time {
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
