package knowledge

import (
	"fmt"

	"github.com/cognicore/sweeper/pkg/sweeper/grid"
	"github.com/cognicore/sweeper/pkg/sweeper/internalerr"
)

// Base is an ordered, deduplicated collection of sentences. Sentences
// are owned by the base and never aliased elsewhere, so mutating them
// in place during propagation is safe.
type Base struct {
	sentences []*Sentence
}

// NewBase creates an empty knowledge base.
func NewBase() *Base {
	return &Base{}
}

// Len returns the number of retained sentences.
func (b *Base) Len() int {
	return len(b.sentences)
}

// Sentences returns a snapshot of the current sentence list. Callers
// may iterate the snapshot while the base mutates.
func (b *Base) Sentences() []*Sentence {
	out := make([]*Sentence, len(b.sentences))
	copy(out, b.sentences)
	return out
}

// Contains reports whether a structurally equal sentence is already
// retained.
func (b *Base) Contains(s *Sentence) bool {
	for _, existing := range b.sentences {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}

// Add appends the sentence unless an equal one is already retained.
// Reports whether the sentence was added.
func (b *Base) Add(s *Sentence) bool {
	if b.Contains(s) {
		return false
	}
	b.sentences = append(b.sentences, s)
	return true
}

// MarkMine propagates a confirmed mine into every sentence.
func (b *Base) MarkMine(c grid.Cell) {
	for _, s := range b.sentences {
		s.MarkMine(c)
	}
}

// MarkSafe propagates a confirmed safe cell into every sentence.
func (b *Base) MarkSafe(c grid.Cell) {
	for _, s := range b.sentences {
		s.MarkSafe(c)
	}
}

// Prune drops sentences whose cell set has emptied and collapses
// duplicates created by in-place marking (two sentences can converge
// on the same cells and count once shared cells resolve). An empty
// sentence carries no information only when its count is zero; any
// other count means the inputs contradicted each other.
func (b *Base) Prune() error {
	seen := make(map[string]struct{}, len(b.sentences))
	kept := b.sentences[:0]
	for _, s := range b.sentences {
		if s.Len() == 0 {
			if s.Count() != 0 {
				return fmt.Errorf("empty sentence with count %d: %w", s.Count(), internalerr.ErrContradiction)
			}
			continue
		}
		key := s.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, s)
	}
	b.sentences = kept
	return nil
}

// Check validates the base invariants: no duplicate sentences and
// every count within [0, |cells|]. Intended for tests and debugging.
func (b *Base) Check() error {
	seen := make(map[string]struct{}, len(b.sentences))
	for _, s := range b.sentences {
		if err := s.check(); err != nil {
			return fmt.Errorf("%w: %v", internalerr.ErrContradiction, err)
		}
		key := s.Key()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate sentence %s: %w", s, internalerr.ErrContradiction)
		}
		seen[key] = struct{}{}
	}
	return nil
}
