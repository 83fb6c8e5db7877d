// Package render produces text views of a game. It contains no game
// logic; it only formats what the board or the agent already knows.
package render

import (
	"fmt"
	"strings"

	"github.com/cognicore/sweeper/pkg/sweeper/board"
	"github.com/cognicore/sweeper/pkg/sweeper/grid"
)

// Frame renders the player's view: revealed cells show their nearby
// counts (zero as '.'), deduced mines show 'F', everything else '-'.
func Frame(size grid.Size, revealed map[grid.Cell]int, mines []grid.Cell) string {
	mineSet := make(map[grid.Cell]struct{}, len(mines))
	for _, c := range mines {
		mineSet[c] = struct{}{}
	}

	var b strings.Builder
	writeHeader(&b, size.Width)
	for row := 0; row < size.Height; row++ {
		fmt.Fprintf(&b, "%2d ", row)
		for col := 0; col < size.Width; col++ {
			c := grid.Cell{Row: row, Col: col}
			switch {
			case inSet(mineSet, c):
				b.WriteString("F ")
			case hasCount(revealed, c):
				n := revealed[c]
				if n == 0 {
					b.WriteString(". ")
				} else {
					fmt.Fprintf(&b, "%d ", n)
				}
			default:
				b.WriteString("- ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Reveal renders the true layout with mines as '*', for debugging and
// post-game display.
func Reveal(bd *board.Board) string {
	size := bd.Size()

	var b strings.Builder
	writeHeader(&b, size.Width)
	for row := 0; row < size.Height; row++ {
		fmt.Fprintf(&b, "%2d ", row)
		for col := 0; col < size.Width; col++ {
			c := grid.Cell{Row: row, Col: col}
			if bd.IsMine(c) {
				b.WriteString("* ")
				continue
			}
			n := bd.NearbyMines(c)
			if n == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", n)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeHeader(b *strings.Builder, width int) {
	b.WriteString("   ")
	for col := 0; col < width; col++ {
		fmt.Fprintf(b, "%d ", col%10)
	}
	b.WriteByte('\n')
}

func inSet(set map[grid.Cell]struct{}, c grid.Cell) bool {
	_, ok := set[c]
	return ok
}

func hasCount(revealed map[grid.Cell]int, c grid.Cell) bool {
	_, ok := revealed[c]
	return ok
}
