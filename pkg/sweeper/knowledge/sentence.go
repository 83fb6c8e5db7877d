// Package knowledge holds the logical statements the agent accumulates
// about a board and the deduplicated base that owns them.
package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/sweeper/pkg/sweeper/grid"
)

// Sentence is a statement about a board: exactly Count of Cells are
// mines. Sentences are owned by a Base and mutated in place as cells
// become known.
type Sentence struct {
	cells map[grid.Cell]struct{}
	count int
}

// NewSentence creates a sentence over the given cells. Duplicate cells
// in the input collapse into one.
func NewSentence(cells []grid.Cell, count int) *Sentence {
	set := make(map[grid.Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return &Sentence{cells: set, count: count}
}

// Count returns the number of mines the sentence asserts.
func (s *Sentence) Count() int {
	return s.count
}

// Len returns the number of cells the sentence ranges over.
func (s *Sentence) Len() int {
	return len(s.cells)
}

// Contains reports whether the cell is part of the sentence.
func (s *Sentence) Contains(c grid.Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the sentence's cells in row-major order.
func (s *Sentence) Cells() []grid.Cell {
	return sortedCells(s.cells)
}

// KnownMines returns every cell in the sentence if all of them must be
// mines (count equals cell count), otherwise nil.
func (s *Sentence) KnownMines() []grid.Cell {
	if len(s.cells) > 0 && s.count == len(s.cells) {
		return sortedCells(s.cells)
	}
	return nil
}

// KnownSafes returns every cell in the sentence if none of them can be
// a mine (count is zero), otherwise nil.
func (s *Sentence) KnownSafes() []grid.Cell {
	if len(s.cells) > 0 && s.count == 0 {
		return sortedCells(s.cells)
	}
	return nil
}

// MarkMine records that cell is a mine: the cell leaves the sentence
// and the count drops by one. No-op if the sentence does not contain
// the cell.
func (s *Sentence) MarkMine(c grid.Cell) {
	if _, ok := s.cells[c]; !ok {
		return
	}
	delete(s.cells, c)
	s.count--
}

// MarkSafe records that cell is safe: the cell leaves the sentence and
// the count is unchanged. No-op if the sentence does not contain the
// cell.
func (s *Sentence) MarkSafe(c grid.Cell) {
	delete(s.cells, c)
}

// Equal reports structural equality: same cell set and same count,
// independent of insertion order.
func (s *Sentence) Equal(o *Sentence) bool {
	if s.count != o.count || len(s.cells) != len(o.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Subset reports whether every cell of s is also a cell of o.
func (s *Sentence) Subset(o *Sentence) bool {
	if len(s.cells) > len(o.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Minus derives the sentence over s's cells that are not in sub, with
// the count difference. Valid when sub is a subset of s.
func (s *Sentence) Minus(sub *Sentence) *Sentence {
	rest := make(map[grid.Cell]struct{}, len(s.cells)-len(sub.cells))
	for c := range s.cells {
		if _, ok := sub.cells[c]; !ok {
			rest[c] = struct{}{}
		}
	}
	return &Sentence{cells: rest, count: s.count - sub.count}
}

// Key returns a canonical representation (cells sorted row-major) so
// equality and deduplication are independent of insertion order.
func (s *Sentence) Key() string {
	var b strings.Builder
	for i, c := range sortedCells(s.cells) {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%d,%d", c.Row, c.Col)
	}
	fmt.Fprintf(&b, "=%d", s.count)
	return b.String()
}

// String formats the sentence as {cells} = count.
func (s *Sentence) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range sortedCells(s.cells) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "} = %d", s.count)
	return b.String()
}

// check validates the count range invariant: 0 <= count <= |cells|.
func (s *Sentence) check() error {
	if s.count < 0 || s.count > len(s.cells) {
		return fmt.Errorf("sentence %s: count out of range", s)
	}
	return nil
}

func sortedCells(set map[grid.Cell]struct{}) []grid.Cell {
	out := make([]grid.Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
