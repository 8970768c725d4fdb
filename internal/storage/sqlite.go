// Package storage provides SQLite-based persistence for snaketerm: the
// high-score history and serialized saved games. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/termgames/snaketerm/internal/engine"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished-game record.
type ScoreEntry struct {
	ID        int64
	Player    string
	Score     int
	CreatedAt time.Time
}

// SavedGameRow is a persisted engine snapshot plus its storage identity.
type SavedGameRow struct {
	ID        int64
	Record    engine.Record
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

	// Create parent directories
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
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS saved_games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			snake_id TEXT NOT NULL,
			body TEXT NOT NULL,
			direction INTEGER NOT NULL,
			previous INTEGER NOT NULL,
			speed INTEGER NOT NULL,
			gem_row INTEGER NOT NULL,
			gem_column INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// SaveScore records a finished game's score.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(player string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (player, score) VALUES (?, ?)",
		player, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &createdAt); err != nil {
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

// HighScore returns the highest recorded score, or 0 if none exists.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all recorded scores.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveSnapshot persists an engine snapshot record.
// Returns the ID of the inserted row.
func (s *Store) SaveSnapshot(rec engine.Record) (int64, error) {
	body, err := yaml.Marshal(rec.Body)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode snake body: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO saved_games
		 (snake_id, body, direction, previous, speed, gem_row, gem_column, width, height)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SnakeID,
		string(body),
		int(rec.Direction),
		int(rec.Previous),
		rec.Speed,
		rec.Gem.Row,
		rec.Gem.Column,
		rec.Width,
		rec.Height,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LatestSnapshot retrieves the most recently saved game, or nil if none
// exists.
func (s *Store) LatestSnapshot() (*SavedGameRow, error) {
	var row SavedGameRow
	var body string
	var direction, previous int
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, snake_id, body, direction, previous, speed,
		        gem_row, gem_column, width, height, created_at
		 FROM saved_games
		 ORDER BY id DESC
		 LIMIT 1`,
	).Scan(
		&row.ID,
		&row.Record.SnakeID,
		&body,
		&direction,
		&previous,
		&row.Record.Speed,
		&row.Record.Gem.Row,
		&row.Record.Gem.Column,
		&row.Record.Width,
		&row.Record.Height,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	if err := yaml.Unmarshal([]byte(body), &row.Record.Body); err != nil {
		return nil, fmt.Errorf("storage: cannot decode snake body: %w", err)
	}
	row.Record.Direction = engine.Direction(direction)
	row.Record.Previous = engine.Direction(previous)
	row.CreatedAt = parseTimestamp(createdAt)

	return &row, nil
}

// DeleteSnapshot removes a saved game by its row ID.
func (s *Store) DeleteSnapshot(id int64) error {
	_, err := s.db.Exec("DELETE FROM saved_games WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshot: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
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
