// Package memstore is an in-memory store.Store used by tests and the
// CLIs when no database path is given.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/sweeper/pkg/sweeper/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu    sync.RWMutex
	games map[string]store.Game
	order []string // insertion order, oldest first
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{games: make(map[string]store.Game)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveGame records a game, keyed by ID.
func (s *Store) SaveGame(ctx context.Context, g store.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[g.ID]; !ok {
		s.order = append(s.order, g.ID)
	}
	s.games[g.ID] = copyGame(g)
	return nil
}

// GetGame returns a game by ID.
func (s *Store) GetGame(ctx context.Context, id string) (store.Game, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return store.Game{}, false, nil
	}
	return copyGame(g), true, nil
}

// RecentGames returns the newest games first.
func (s *Store) RecentGames(ctx context.Context, limit int) ([]store.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	out := make([]store.Game, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyGame(s.games[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Stats aggregates all stored games.
func (s *Store) Stats(ctx context.Context) (store.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st store.Stats
	for _, g := range s.games {
		st.Games++
		if g.Won {
			st.Wins++
		}
		for _, m := range g.Moves {
			if m.Guess {
				st.GuessMoves++
			} else {
				st.SafeMoves++
			}
		}
	}
	return st, nil
}

func copyGame(g store.Game) store.Game {
	moves := make([]store.Move, len(g.Moves))
	copy(moves, g.Moves)
	g.Moves = moves
	return g
}
