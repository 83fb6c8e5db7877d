// Package infer defines the agent contract the game driver plays
// against. Implementations deduce which cells are safe or mined from
// the per-cell counts the board reveals.
package infer

import "github.com/cognicore/sweeper/pkg/sweeper/grid"

// Agent maintains knowledge about a single game and answers move
// queries. This interface allows swapping implementations (the
// deductive engine, probabilistic solvers, etc.)
type Agent interface {
	// Observe feeds one revealed cell and its adjacent mine count into
	// the agent. The caller guarantees the cell is actually safe and
	// the count is ground truth; Observe runs deduction to a fixpoint
	// before returning. A non-nil error means the inputs contradicted
	// each other, which indicates an upstream bug.
	Observe(cell grid.Cell, count int) error

	// SafeMove returns a cell known to be safe that has not been
	// played. The second result is false when none is known.
	SafeMove() (grid.Cell, bool)

	// RandomMove returns any cell that has not been played and is not
	// a known mine. The second result is false when none remains.
	RandomMove() (grid.Cell, bool)

	// Mines returns the cells confirmed to be mines.
	Mines() []grid.Cell

	// Safes returns the cells confirmed to be safe.
	Safes() []grid.Cell

	// MovesMade returns the cells already played.
	MovesMade() []grid.Cell
}
