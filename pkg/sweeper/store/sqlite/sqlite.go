// Package sqlite implements store.Store on a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/sweeper/pkg/sweeper/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	played_at TEXT NOT NULL,
	height INTEGER NOT NULL,
	width INTEGER NOT NULL,
	mine_count INTEGER NOT NULL,
	won INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS game_moves (
	game_id TEXT NOT NULL,
	move_index INTEGER NOT NULL,
	row INTEGER NOT NULL,
	col INTEGER NOT NULL,
	guess INTEGER NOT NULL,
	nearby INTEGER NOT NULL,
	mine INTEGER NOT NULL,
	PRIMARY KEY(game_id, move_index),
	FOREIGN KEY(game_id) REFERENCES games(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_games_played_at ON games(played_at);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveGame records a game and its move log in one transaction.
func (s *sqliteStore) SaveGame(ctx context.Context, g store.Game) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (id, played_at, height, width, mine_count, won)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			played_at = excluded.played_at,
			height = excluded.height,
			width = excluded.width,
			mine_count = excluded.mine_count,
			won = excluded.won`,
		g.ID, g.PlayedAt.UTC().Format(time.RFC3339Nano),
		g.Height, g.Width, g.MineCount, boolToInt(g.Won))
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM game_moves WHERE game_id = ?", g.ID); err != nil {
		return fmt.Errorf("clear moves: %w", err)
	}
	for _, m := range g.Moves {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO game_moves (game_id, move_index, row, col, guess, nearby, mine)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.ID, m.Index, m.Row, m.Col, boolToInt(m.Guess), m.Nearby, boolToInt(m.Mine))
		if err != nil {
			return fmt.Errorf("insert move %d: %w", m.Index, err)
		}
	}

	return tx.Commit()
}

// GetGame returns a game and its moves by ID.
func (s *sqliteStore) GetGame(ctx context.Context, id string) (store.Game, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, played_at, height, width, mine_count, won
		FROM games WHERE id = ?`, id)

	g, err := scanGame(row)
	if err == sql.ErrNoRows {
		return store.Game{}, false, nil
	}
	if err != nil {
		return store.Game{}, false, err
	}

	moves, err := s.loadMoves(ctx, g.ID)
	if err != nil {
		return store.Game{}, false, err
	}
	g.Moves = moves
	return g, true, nil
}

// RecentGames returns the newest games first, moves included.
func (s *sqliteStore) RecentGames(ctx context.Context, limit int) ([]store.Game, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, played_at, height, width, mine_count, won
		FROM games ORDER BY played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []store.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range games {
		moves, err := s.loadMoves(ctx, games[i].ID)
		if err != nil {
			return nil, err
		}
		games[i].Moves = moves
	}
	return games, nil
}

// Stats aggregates across all stored games.
func (s *sqliteStore) Stats(ctx context.Context) (store.Stats, error) {
	var st store.Stats

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(won), 0) FROM games`).Scan(&st.Games, &st.Wins)
	if err != nil {
		return store.Stats{}, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN guess = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN guess = 1 THEN 1 ELSE 0 END), 0)
		FROM game_moves`).Scan(&st.SafeMoves, &st.GuessMoves)
	if err != nil {
		return store.Stats{}, err
	}
	return st, nil
}

func (s *sqliteStore) loadMoves(ctx context.Context, gameID string) ([]store.Move, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT move_index, row, col, guess, nearby, mine
		FROM game_moves WHERE game_id = ? ORDER BY move_index`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moves []store.Move
	for rows.Next() {
		var m store.Move
		var guess, mine int
		if err := rows.Scan(&m.Index, &m.Row, &m.Col, &guess, &m.Nearby, &mine); err != nil {
			return nil, err
		}
		m.Guess = guess != 0
		m.Mine = mine != 0
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(r rowScanner) (store.Game, error) {
	var g store.Game
	var playedAt string
	var won int
	if err := r.Scan(&g.ID, &playedAt, &g.Height, &g.Width, &g.MineCount, &won); err != nil {
		return store.Game{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, playedAt)
	if err != nil {
		return store.Game{}, fmt.Errorf("parse played_at: %w", err)
	}
	g.PlayedAt = t
	g.Won = won != 0
	return g, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
