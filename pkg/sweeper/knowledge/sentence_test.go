package knowledge

import (
	"testing"

	"github.com/cognicore/sweeper/pkg/sweeper/grid"
)

func cells(pairs ...[2]int) []grid.Cell {
	out := make([]grid.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = grid.Cell{Row: p[0], Col: p[1]}
	}
	return out
}

func TestKnownMines(t *testing.T) {
	s := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 2)

	mines := s.KnownMines()
	if len(mines) != 2 {
		t.Fatalf("Expected all cells known mines, got %v", mines)
	}
	if safes := s.KnownSafes(); len(safes) != 0 {
		t.Errorf("Expected no known safes, got %v", safes)
	}
}

func TestKnownSafes(t *testing.T) {
	s := NewSentence(cells([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 2}), 0)

	safes := s.KnownSafes()
	if len(safes) != 3 {
		t.Fatalf("Expected all cells known safe, got %v", safes)
	}
	if mines := s.KnownMines(); len(mines) != 0 {
		t.Errorf("Expected no known mines, got %v", mines)
	}
}

func TestAmbiguousSentence(t *testing.T) {
	s := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), 1)

	if mines := s.KnownMines(); len(mines) != 0 {
		t.Errorf("Ambiguous sentence must not report mines, got %v", mines)
	}
	if safes := s.KnownSafes(); len(safes) != 0 {
		t.Errorf("Ambiguous sentence must not report safes, got %v", safes)
	}
}

func TestMarkMine(t *testing.T) {
	s := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), 2)

	s.MarkMine(grid.Cell{Row: 0, Col: 1})
	if s.Len() != 2 {
		t.Errorf("Expected 2 cells after MarkMine, got %d", s.Len())
	}
	if s.Count() != 1 {
		t.Errorf("Expected count 1 after MarkMine, got %d", s.Count())
	}
	if s.Contains(grid.Cell{Row: 0, Col: 1}) {
		t.Error("Marked cell should have been removed")
	}

	// Marking a cell outside the sentence is a no-op.
	s.MarkMine(grid.Cell{Row: 5, Col: 5})
	if s.Len() != 2 || s.Count() != 1 {
		t.Error("MarkMine on absent cell must not change the sentence")
	}
}

func TestMarkSafe(t *testing.T) {
	s := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 1)

	s.MarkSafe(grid.Cell{Row: 0, Col: 0})
	if s.Len() != 1 {
		t.Errorf("Expected 1 cell after MarkSafe, got %d", s.Len())
	}
	if s.Count() != 1 {
		t.Errorf("MarkSafe must not change count, got %d", s.Count())
	}

	s.MarkSafe(grid.Cell{Row: 9, Col: 9})
	if s.Len() != 1 {
		t.Error("MarkSafe on absent cell must not change the sentence")
	}
}

func TestEqualOrderIndependent(t *testing.T) {
	a := NewSentence(cells([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}), 1)
	b := NewSentence(cells([2]int{2, 2}, [2]int{0, 0}, [2]int{1, 1}), 1)

	if !a.Equal(b) {
		t.Error("Expected order-independent equality")
	}
	if a.Key() != b.Key() {
		t.Errorf("Expected identical keys, got %q vs %q", a.Key(), b.Key())
	}

	c := NewSentence(cells([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}), 2)
	if a.Equal(c) {
		t.Error("Sentences with different counts must not be equal")
	}
}

func TestSubsetAndMinus(t *testing.T) {
	small := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 1)
	big := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), 2)

	if !small.Subset(big) {
		t.Fatal("Expected small to be a subset of big")
	}
	if big.Subset(small) {
		t.Fatal("big is not a subset of small")
	}

	derived := big.Minus(small)
	want := NewSentence(cells([2]int{0, 2}), 1)
	if !derived.Equal(want) {
		t.Errorf("Expected derived %s, got %s", want, derived)
	}
}
