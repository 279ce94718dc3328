// Package storage keeps finished-session scores in SQLite through the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Result is one finished session.
type Result struct {
	ID              int64
	Map             string
	Score           int
	ShotsFired      int
	BlocksDestroyed int
	GoldCollected   int
	CoalCollected   int
	CreatedAt       time.Time
}

// Open creates or opens the database at path, creating parent directories and
// the schema as needed. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			map TEXT NOT NULL,
			score INTEGER NOT NULL,
			shots INTEGER NOT NULL DEFAULT 0,
			blocks INTEGER NOT NULL DEFAULT 0,
			gold INTEGER NOT NULL DEFAULT 0,
			coal INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(map, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records r and returns its row id.
func (s *Store) SaveScore(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO scores (map, score, shots, blocks, gold, coal) VALUES (?, ?, ?, ?, ?, ?)`,
		r.Map, r.Score, r.ShotsFired, r.BlocksDestroyed, r.GoldCollected, r.CoalCollected,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: inserted id: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit results for mapName, highest first. Ties
// keep insertion order. An empty mapName matches every map.
func (s *Store) TopScores(mapName string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, map, score, shots, blocks, gold, coal, created_at
		 FROM scores
		 WHERE ? = '' OR map = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mapName, mapName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Map, &r.Score, &r.ShotsFired, &r.BlocksDestroyed, &r.GoldCollected, &r.CoalCollected, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate rows: %w", err)
	}
	return out, nil
}

// HighScore returns the best score for mapName, or 0 when there is none.
func (s *Store) HighScore(mapName string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE ? = '' OR map = ?`, mapName, mapName).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// the driver hands DATETIME back as either time.Time or text
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
