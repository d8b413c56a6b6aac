// Package storage provides the SQLite replay journal for game sessions.
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

	"github.com/vovakirdan/term2048/internal/games/t2048"
)

// ErrGameNotFound is returned when a journaled game ID does not exist.
var ErrGameNotFound = errors.New("no such game")

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// GameRecord is one journaled session.
type GameRecord struct {
	ID         int64
	Seed       int64
	BoardSize  int
	Spawn4     float64
	Status     t2048.Status
	Outcome    string // Empty until the session finished
	MaxTile    int
	Moves      int // Moves that changed the board
	Directions []t2048.Direction
	CreatedAt  time.Time
	FinishedAt time.Time
}

// Options returns the session options needed to replay the record.
func (r GameRecord) Options() t2048.Options {
	return t2048.Options{
		Size:   r.BoardSize,
		Seed:   r.Seed,
		Spawn4: r.Spawn4,
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			board_size INTEGER NOT NULL,
			spawn4 REAL NOT NULL,
			status TEXT NOT NULL DEFAULT 'playing',
			outcome TEXT NOT NULL DEFAULT '',
			max_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			finished_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);

		CREATE TABLE IF NOT EXISTS game_moves (
			game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			direction TEXT NOT NULL,
			PRIMARY KEY (game_id, seq)
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

// StartGame records a new session and returns its ID.
func (s *Store) StartGame(opts t2048.Options) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO games (seed, board_size, spawn4) VALUES (?, ?, ?)",
		opts.Seed, opts.Size, opts.Spawn4,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// AppendMove records the command at position seq (0-based) of a session.
func (s *Store) AppendMove(gameID int64, seq int, dir t2048.Direction) error {
	_, err := s.db.Exec(
		"INSERT INTO game_moves (game_id, seq, direction) VALUES (?, ?, ?)",
		gameID, seq, dir.String(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot append move %d to game %d: %w", seq, gameID, err)
	}
	return nil
}

// FinishGame stores the final state of a session.
func (s *Store) FinishGame(gameID int64, snap t2048.Snapshot) error {
	result, err := s.db.Exec(
		`UPDATE games
		 SET status = ?, outcome = ?, max_tile = ?, moves = ?, finished_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		string(snap.Status), snap.Outcome, snap.MaxTile, snap.Moves, gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish game %d: %w", gameID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot finish game %d: %w", gameID, err)
	}
	if n == 0 {
		return fmt.Errorf("storage: cannot finish game %d: %w", gameID, ErrGameNotFound)
	}
	return nil
}

// LoadGame retrieves a session with its full command list.
// Returns nil if the game does not exist.
func (s *Store) LoadGame(gameID int64) (*GameRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, board_size, spawn4, status, outcome, max_tile, moves, created_at, finished_at
		 FROM games
		 WHERE id = ?`,
		gameID,
	)

	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game %d: %w", gameID, err)
	}

	rows, err := s.db.Query(
		"SELECT direction FROM game_moves WHERE game_id = ? ORDER BY seq",
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves of game %d: %w", gameID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan move: %w", err)
		}
		dir, ok := t2048.ParseDirectionName(name)
		if !ok {
			return nil, fmt.Errorf("storage: game %d has unknown direction %q", gameID, name)
		}
		rec.Directions = append(rec.Directions, dir)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// RecentGames retrieves the most recent sessions, newest first.
// Directions are not loaded.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, board_size, spawn4, status, outcome, max_tile, moves, created_at, finished_at
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeleteGame removes a session and its moves.
// Returns ErrGameNotFound if no session has that ID.
func (s *Store) DeleteGame(gameID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot delete game %d: %w", gameID, err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	if _, err := tx.Exec("DELETE FROM game_moves WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot delete moves of game %d: %w", gameID, err)
	}
	result, err := tx.Exec("DELETE FROM games WHERE id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete game %d: %w", gameID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete game %d: %w", gameID, err)
	}
	if n == 0 {
		return fmt.Errorf("storage: cannot delete game %d: %w", gameID, ErrGameNotFound)
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(sc scanner) (*GameRecord, error) {
	var rec GameRecord
	var status string
	var createdAt, finishedAt any

	err := sc.Scan(
		&rec.ID,
		&rec.Seed,
		&rec.BoardSize,
		&rec.Spawn4,
		&status,
		&rec.Outcome,
		&rec.MaxTile,
		&rec.Moves,
		&createdAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Status = t2048.Status(status)
	rec.CreatedAt = parseTime(createdAt)
	rec.FinishedAt = parseTime(finishedAt)
	return &rec, nil
}

// parseTime handles both time.Time and string datetimes; NULL yields the zero time.
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
