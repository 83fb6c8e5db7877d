// Package store defines persistence for completed game records. Only
// outcomes are stored; the agent's knowledge base never leaves a game.
package store

import (
	"context"
	"time"
)

// Store persists game records.
type Store interface {
	Close() error

	// SaveGame records one completed game with its move log.
	SaveGame(ctx context.Context, g Game) error

	// GetGame returns a game by ID.
	GetGame(ctx context.Context, id string) (Game, bool, error)

	// RecentGames returns the most recently played games, newest first.
	RecentGames(ctx context.Context, limit int) ([]Game, error)

	// Stats returns aggregates over every stored game.
	Stats(ctx context.Context) (Stats, error)
}

// Game is one completed game.
type Game struct {
	ID        string
	PlayedAt  time.Time
	Height    int
	Width     int
	MineCount int
	Won       bool
	Moves     []Move
}

// Move is one probe the agent made.
type Move struct {
	Index  int
	Row    int
	Col    int
	Guess  bool // chosen without a safety deduction
	Nearby int  // mine count revealed by the probe
	Mine   bool // the probe hit a mine and ended the game
}

// Stats aggregates stored games.
type Stats struct {
	Games      int64
	Wins       int64
	SafeMoves  int64
	GuessMoves int64
}

// WinRate returns wins over games, or 0 with no games.
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}
