// Package grid provides board coordinates and bounds shared by the
// board, knowledge and inference packages.
package grid

import "fmt"

// Cell is a board coordinate. Cells are plain values: two cells are
// equal iff both row and column match, so they can key maps directly.
type Cell struct {
	Row int
	Col int
}

// String formats the cell as (row, col).
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Size describes board dimensions.
type Size struct {
	Height int
	Width  int
}

// Contains reports whether the cell lies within the board.
func (s Size) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < s.Height && c.Col >= 0 && c.Col < s.Width
}

// Cells returns the total number of cells on the board.
func (s Size) Cells() int {
	return s.Height * s.Width
}

// Neighbors returns the in-bounds cells of the 3x3 block centered on c,
// excluding c itself. At most 8 cells.
func (s Size) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if s.Contains(n) {
				out = append(out, n)
			}
		}
	}
	return out
}
