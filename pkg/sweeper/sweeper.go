// Package sweeper wires the board, the inference agent and the store
// into a playable game driver.
package sweeper

import (
	"context"
	cryptorand "crypto/rand"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/sweeper/pkg/sweeper/board"
	"github.com/cognicore/sweeper/pkg/sweeper/config"
	"github.com/cognicore/sweeper/pkg/sweeper/grid"
	"github.com/cognicore/sweeper/pkg/sweeper/infer"
	"github.com/cognicore/sweeper/pkg/sweeper/infer/deductive"
	"github.com/cognicore/sweeper/pkg/sweeper/store"
)

// Sweeper is the game-playing facade.
type Sweeper struct {
	store    store.Store
	entropy  *ulid.MonotonicEntropy
	rng      *rand.Rand
	newAgent func(grid.Size, int64) infer.Agent
}

// Options configures a Sweeper instance.
type Options struct {
	// Store receives completed game records. Nil disables persistence.
	Store store.Store

	// Seed drives board layouts and move selection. Zero means a
	// time-based seed.
	Seed int64

	// NewAgent overrides the agent implementation. Nil selects the
	// deductive engine.
	NewAgent func(size grid.Size, seed int64) infer.Agent
}

// New creates a Sweeper instance with the given dependencies.
func New(opts Options) *Sweeper {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	newAgent := opts.NewAgent
	if newAgent == nil {
		newAgent = func(size grid.Size, seed int64) infer.Agent {
			return deductive.NewSeeded(size, seed)
		}
	}
	return &Sweeper{
		store:    opts.Store,
		entropy:  ulid.Monotonic(cryptorand.Reader, 0),
		rng:      rand.New(rand.NewSource(seed)),
		newAgent: newAgent,
	}
}

// Close releases the underlying store, if any.
func (s *Sweeper) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// GameRequest describes the board to play.
type GameRequest struct {
	Height int
	Width  int
	Mines  int
}

// Move is one probe the agent made during a game.
type Move struct {
	Cell   grid.Cell
	Guess  bool
	Nearby int
	Mine   bool
}

// GameResult summarizes one completed game.
type GameResult struct {
	ID       string
	Won      bool
	Moves    []Move
	Mines    []grid.Cell       // cells the agent deduced to be mines
	Revealed map[grid.Cell]int // revealed cells with their counts
	Duration time.Duration
}

// Guesses returns how many moves were made without a safety deduction.
func (r GameResult) Guesses() int {
	n := 0
	for _, m := range r.Moves {
		if m.Guess {
			n++
		}
	}
	return n
}

// Play generates a random board for the request and plays it to
// completion, recording the game if a store is configured.
func (s *Sweeper) Play(ctx context.Context, req GameRequest) (GameResult, error) {
	preset := config.Preset{Height: req.Height, Width: req.Width, Mines: req.Mines}
	if err := preset.Validate(); err != nil {
		return GameResult{}, err
	}

	b, err := board.New(grid.Size{Height: req.Height, Width: req.Width}, req.Mines, s.rng)
	if err != nil {
		return GameResult{}, err
	}
	return s.PlayBoard(ctx, b)
}

// PlayBoard plays a prepared board to completion. The agent plays
// known-safe cells first, guesses when it has to, and stops when no
// unplayed non-mine candidate remains; the deduced mines are then
// flagged and the board decides the win.
func (s *Sweeper) PlayBoard(ctx context.Context, b *board.Board) (GameResult, error) {
	start := time.Now()
	agent := s.newAgent(b.Size(), s.rng.Int63())

	result := GameResult{
		ID:       ulid.MustNew(ulid.Now(), s.entropy).String(),
		Revealed: make(map[grid.Cell]int),
	}

	hitMine := false
	for {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}

		cell, ok := agent.SafeMove()
		guess := false
		if !ok {
			cell, ok = agent.RandomMove()
			guess = true
		}
		if !ok {
			break
		}

		if b.IsMine(cell) {
			result.Moves = append(result.Moves, Move{Cell: cell, Guess: guess, Mine: true})
			hitMine = true
			break
		}

		nearby := b.NearbyMines(cell)
		result.Moves = append(result.Moves, Move{Cell: cell, Guess: guess, Nearby: nearby})
		result.Revealed[cell] = nearby

		if err := agent.Observe(cell, nearby); err != nil {
			return GameResult{}, fmt.Errorf("observe %v: %w", cell, err)
		}
	}

	result.Mines = agent.Mines()
	for _, c := range result.Mines {
		b.Flag(c)
	}
	result.Won = !hitMine && b.Won()
	result.Duration = time.Since(start)

	if s.store != nil {
		if err := s.store.SaveGame(ctx, toRecord(result, b)); err != nil {
			return GameResult{}, fmt.Errorf("save game: %w", err)
		}
	}
	return result, nil
}

func toRecord(r GameResult, b *board.Board) store.Game {
	g := store.Game{
		ID:        r.ID,
		PlayedAt:  time.Now().UTC(),
		Height:    b.Size().Height,
		Width:     b.Size().Width,
		MineCount: b.MineCount(),
		Won:       r.Won,
		Moves:     make([]store.Move, len(r.Moves)),
	}
	for i, m := range r.Moves {
		g.Moves[i] = store.Move{
			Index:  i,
			Row:    m.Cell.Row,
			Col:    m.Cell.Col,
			Guess:  m.Guess,
			Nearby: m.Nearby,
			Mine:   m.Mine,
		}
	}
	return g
}
