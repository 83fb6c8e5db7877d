// Package board implements the game side of minesweeper: the hidden
// mine layout, per-cell neighbor counts and the flag bookkeeping used
// to decide a win. The inference agent never sees this package's
// internals, only the counts its driver relays.
package board

import (
	"fmt"
	"math/rand"

	"github.com/cognicore/sweeper/pkg/sweeper/grid"
	"github.com/cognicore/sweeper/pkg/sweeper/internalerr"
)

// Board holds a mine layout for one game.
type Board struct {
	size    grid.Size
	mines   map[grid.Cell]struct{}
	flagged map[grid.Cell]struct{}
}

// New creates a board with mineCount mines placed uniformly at random
// using rng. Any cell may be mined, including the first one probed.
func New(size grid.Size, mineCount int, rng *rand.Rand) (*Board, error) {
	if size.Height <= 0 || size.Width <= 0 {
		return nil, fmt.Errorf("board %dx%d: %w", size.Height, size.Width, internalerr.ErrInvalidConfig)
	}
	if mineCount < 0 || mineCount >= size.Cells() {
		return nil, fmt.Errorf("%d mines on %d cells: %w", mineCount, size.Cells(), internalerr.ErrInvalidConfig)
	}

	b := &Board{
		size:    size,
		mines:   make(map[grid.Cell]struct{}, mineCount),
		flagged: make(map[grid.Cell]struct{}),
	}
	for len(b.mines) < mineCount {
		c := grid.Cell{Row: rng.Intn(size.Height), Col: rng.Intn(size.Width)}
		b.mines[c] = struct{}{}
	}
	return b, nil
}

// WithMines creates a board with an explicit mine layout, mainly for
// tests and replays.
func WithMines(size grid.Size, mines []grid.Cell) (*Board, error) {
	b := &Board{
		size:    size,
		mines:   make(map[grid.Cell]struct{}, len(mines)),
		flagged: make(map[grid.Cell]struct{}),
	}
	for _, c := range mines {
		if !size.Contains(c) {
			return nil, fmt.Errorf("mine at %v: %w", c, internalerr.ErrOutOfBounds)
		}
		b.mines[c] = struct{}{}
	}
	if len(b.mines) >= size.Cells() {
		return nil, fmt.Errorf("%d mines on %d cells: %w", len(b.mines), size.Cells(), internalerr.ErrInvalidConfig)
	}
	return b, nil
}

// Size returns the board dimensions.
func (b *Board) Size() grid.Size {
	return b.size
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	return len(b.mines)
}

// IsMine reports whether the cell holds a mine.
func (b *Board) IsMine(c grid.Cell) bool {
	_, ok := b.mines[c]
	return ok
}

// NearbyMines returns the number of mines within one row and column of
// the cell, not counting the cell itself. Always in [0, 8].
func (b *Board) NearbyMines(c grid.Cell) int {
	count := 0
	for _, n := range b.size.Neighbors(c) {
		if b.IsMine(n) {
			count++
		}
	}
	return count
}

// Flag marks a cell as a suspected mine.
func (b *Board) Flag(c grid.Cell) {
	if b.size.Contains(c) {
		b.flagged[c] = struct{}{}
	}
}

// Flagged reports whether the cell has been flagged.
func (b *Board) Flagged(c grid.Cell) bool {
	_, ok := b.flagged[c]
	return ok
}

// Won reports whether the flagged set equals the true mine set.
func (b *Board) Won() bool {
	if len(b.flagged) != len(b.mines) {
		return false
	}
	for c := range b.mines {
		if _, ok := b.flagged[c]; !ok {
			return false
		}
	}
	return true
}
