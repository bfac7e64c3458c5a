// Package storage provides SQLite-based persistence for game scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Level     int // level reached when the session ended
	CreatedAt time.Time
}

// scoreRow is the database shape of ScoreEntry.
type scoreRow struct {
	ID        int64  `db:"id"`
	GameID    string `db:"game_id"`
	Score     int    `db:"score"`
	Level     int    `db:"level"`
	CreatedAt int64  `db:"created_at"`
}

func (r scoreRow) entry() ScoreEntry {
	return ScoreEntry{
		ID:        r.ID,
		GameID:    r.GameID,
		Score:     r.Score,
		Level:     r.Level,
		CreatedAt: time.Unix(r.CreatedAt, 0),
	}
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

	// Connect opens and pings
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

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
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
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

// SaveScore records a finished session for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score, level int) (int64, error) {
	result, err := s.db.NamedExec(
		`INSERT INTO scores (game_id, score, level, created_at)
		 VALUES (:game_id, :score, :level, :created_at)`,
		scoreRow{
			GameID:    gameID,
			Score:     score,
			Level:     max(level, 1),
			CreatedAt: s.now().Unix(),
		},
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

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending; ties keep the older entry first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []scoreRow
	err := s.db.Select(&rows,
		`SELECT id, game_id, score, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries(rows), nil
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	var rows []scoreRow
	err := s.db.Select(&rows,
		`SELECT id, game_id, score, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries(rows), nil
}

func entries(rows []scoreRow) []ScoreEntry {
	out := make([]ScoreEntry, len(rows))
	for i, r := range rows {
		out[i] = r.entry()
	}
	return out
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	if err := s.db.Get(&score, "SELECT MAX(score) FROM scores WHERE game_id = ?", gameID); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

type statsRow struct {
	GameID     string  `db:"game_id"`
	GamesCount int     `db:"games"`
	HighScore  int     `db:"high"`
	BestLevel  int     `db:"best_level"`
	AvgScore   float64 `db:"avg"`
	TotalScore int64   `db:"total"`
	LastPlayed int64   `db:"last_played"`
}

func (r statsRow) stats() *GameStats {
	st := &GameStats{
		GameID:     r.GameID,
		GamesCount: r.GamesCount,
		HighScore:  r.HighScore,
		BestLevel:  r.BestLevel,
		AvgScore:   r.AvgScore,
		TotalScore: r.TotalScore,
	}
	if r.GamesCount > 0 {
		st.LastPlayed = time.Unix(r.LastPlayed, 0)
	}
	return st
}

const statsColumns = `COUNT(*) AS games,
	COALESCE(MAX(score), 0) AS high,
	COALESCE(MAX(level), 0) AS best_level,
	COALESCE(AVG(score), 0) AS avg,
	COALESCE(SUM(score), 0) AS total,
	COALESCE(MAX(created_at), 0) AS last_played`

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	var row statsRow
	err := s.db.Get(&row,
		`SELECT ? AS game_id, `+statsColumns+` FROM scores WHERE game_id = ?`,
		gameID, gameID,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	row.GameID = gameID
	return row.stats(), nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	var rows []statsRow
	err := s.db.Select(&rows,
		`SELECT game_id, `+statsColumns+` FROM scores GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	stats := make(map[string]*GameStats, len(rows))
	for _, r := range rows {
		stats[r.GameID] = r.stats()
	}
	return stats, nil
}
