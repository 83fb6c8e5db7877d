package knowledge

import (
	"errors"
	"testing"

	"github.com/cognicore/sweeper/pkg/sweeper/grid"
	"github.com/cognicore/sweeper/pkg/sweeper/internalerr"
)

func TestAddDeduplicates(t *testing.T) {
	b := NewBase()

	if !b.Add(NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 1)) {
		t.Fatal("First add should succeed")
	}
	if b.Add(NewSentence(cells([2]int{0, 1}, [2]int{0, 0}), 1)) {
		t.Error("Equal sentence (different insertion order) must be rejected")
	}
	if !b.Add(NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 2)) {
		t.Error("Same cells with different count is a distinct sentence")
	}
	if b.Len() != 2 {
		t.Errorf("Expected 2 sentences, got %d", b.Len())
	}
}

func TestMarkPropagatesToAllSentences(t *testing.T) {
	b := NewBase()
	b.Add(NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 1))
	b.Add(NewSentence(cells([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}), 2))

	b.MarkMine(grid.Cell{Row: 0, Col: 0})

	for _, s := range b.Sentences() {
		if s.Contains(grid.Cell{Row: 0, Col: 0}) {
			t.Errorf("Sentence %s still contains marked mine", s)
		}
	}

	got := b.Sentences()
	if got[0].Count() != 0 || got[1].Count() != 1 {
		t.Errorf("Counts not decremented: %d, %d", got[0].Count(), got[1].Count())
	}
}

func TestPruneRemovesEmptySentences(t *testing.T) {
	b := NewBase()
	b.Add(NewSentence(cells([2]int{0, 0}), 1))
	b.Add(NewSentence(cells([2]int{1, 1}, [2]int{1, 2}), 1))

	b.MarkMine(grid.Cell{Row: 0, Col: 0})
	if err := b.Prune(); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Expected 1 sentence after prune, got %d", b.Len())
	}
}

func TestPruneDetectsContradiction(t *testing.T) {
	b := NewBase()
	b.Add(NewSentence(cells([2]int{0, 0}), 1))

	// A safe mark on the only remaining cell strands the count at 1.
	b.MarkSafe(grid.Cell{Row: 0, Col: 0})

	err := b.Prune()
	if !errors.Is(err, internalerr.ErrContradiction) {
		t.Fatalf("Expected ErrContradiction, got %v", err)
	}
}

func TestCheckDetectsBadCount(t *testing.T) {
	b := NewBase()
	b.Add(NewSentence(cells([2]int{0, 0}), 3))

	if err := b.Check(); !errors.Is(err, internalerr.ErrContradiction) {
		t.Fatalf("Expected ErrContradiction for count > |cells|, got %v", err)
	}
}
