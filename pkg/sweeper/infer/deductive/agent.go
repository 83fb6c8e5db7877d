// Package deductive implements the knowledge-based agent. Every
// conclusion it reaches is certain: it never estimates probabilities
// and never searches over hypothetical mine layouts.
package deductive

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/cognicore/sweeper/pkg/sweeper/grid"
	"github.com/cognicore/sweeper/pkg/sweeper/internalerr"
	"github.com/cognicore/sweeper/pkg/sweeper/knowledge"
)

// Agent deduces safe and mined cells from observed neighbor counts.
// It is not safe for concurrent use; Observe runs to completion before
// any other method is expected to be called.
type Agent struct {
	size      grid.Size
	movesMade map[grid.Cell]struct{}
	mines     map[grid.Cell]struct{}
	safes     map[grid.Cell]struct{}
	kb        *knowledge.Base
	rng       *rand.Rand
}

// New creates an agent for a board of the given size.
func New(size grid.Size) *Agent {
	return NewSeeded(size, time.Now().UnixNano())
}

// NewSeeded creates an agent whose move selection among equally
// eligible cells is driven by the given seed. Deduction itself is
// deterministic regardless of seed.
func NewSeeded(size grid.Size, seed int64) *Agent {
	return &Agent{
		size:      size,
		movesMade: make(map[grid.Cell]struct{}),
		mines:     make(map[grid.Cell]struct{}),
		safes:     make(map[grid.Cell]struct{}),
		kb:        knowledge.NewBase(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Observe records that cell was revealed with count mines among its
// neighbors, then derives every certain consequence.
func (a *Agent) Observe(cell grid.Cell, count int) error {
	if !a.size.Contains(cell) {
		return fmt.Errorf("observe %v: %w", cell, internalerr.ErrOutOfBounds)
	}
	if count < 0 || count > 8 {
		return fmt.Errorf("observe %v: count %d: %w", cell, count, internalerr.ErrContradiction)
	}

	a.movesMade[cell] = struct{}{}
	if err := a.markSafe(cell); err != nil {
		return err
	}

	// Build the sentence over the still-undetermined neighbors. Known
	// mines reduce the count; known safes contribute nothing.
	var undetermined []grid.Cell
	working := count
	for _, n := range a.size.Neighbors(cell) {
		switch {
		case a.isMine(n):
			working--
		case a.isSafe(n):
		default:
			undetermined = append(undetermined, n)
		}
	}
	if working < 0 || working > len(undetermined) {
		return fmt.Errorf("observe %v: count %d leaves %d mines over %d cells: %w",
			cell, count, working, len(undetermined), internalerr.ErrContradiction)
	}
	a.kb.Add(knowledge.NewSentence(undetermined, working))

	return a.deduce()
}

// deduce alternates fact propagation and subset derivation until a
// full cycle changes nothing.
func (a *Agent) deduce() error {
	for {
		propagated, err := a.propagate()
		if err != nil {
			return err
		}
		if err := a.kb.Prune(); err != nil {
			return err
		}
		derived, err := a.derive()
		if err != nil {
			return err
		}
		if !propagated && !derived {
			return nil
		}
	}
}

// propagate scans the base for resolved sentences and marks their
// cells globally, repeating until a full pass yields no new fact.
// Mutations are collected first and applied after the scan, since
// marking a cell rewrites every sentence containing it.
func (a *Agent) propagate() (bool, error) {
	changed := false
	for {
		var toMine, toSafe []grid.Cell
		for _, s := range a.kb.Sentences() {
			for _, c := range s.KnownMines() {
				if !a.isMine(c) {
					toMine = append(toMine, c)
				}
			}
			for _, c := range s.KnownSafes() {
				if !a.isSafe(c) {
					toSafe = append(toSafe, c)
				}
			}
		}
		if len(toMine) == 0 && len(toSafe) == 0 {
			return changed, nil
		}
		changed = true
		for _, c := range toMine {
			if err := a.markMine(c); err != nil {
				return changed, err
			}
		}
		for _, c := range toSafe {
			if err := a.markSafe(c); err != nil {
				return changed, err
			}
		}
	}
}

// derive applies subset inference over every sentence pair: when one
// sentence's cells are contained in another's, the difference must
// hold exactly the count difference. New sentences are collected from
// a snapshot and added afterwards.
func (a *Agent) derive() (bool, error) {
	snapshot := a.kb.Sentences()
	var fresh []*knowledge.Sentence
	for i, s1 := range snapshot {
		for j, s2 := range snapshot {
			if i == j || !s1.Subset(s2) {
				continue
			}
			d := s2.Minus(s1)
			if d.Len() == 0 {
				// Equal cell sets. Dedup guarantees the counts differ,
				// so the same cells carry two different totals.
				if d.Count() != 0 {
					return false, fmt.Errorf("sentences %s and %s disagree: %w", s1, s2, internalerr.ErrContradiction)
				}
				continue
			}
			if d.Count() < 0 || d.Count() > d.Len() {
				return false, fmt.Errorf("derived %s from %s and %s: %w", d, s2, s1, internalerr.ErrContradiction)
			}
			fresh = append(fresh, d)
		}
	}

	added := false
	for _, d := range fresh {
		if a.kb.Add(d) {
			added = true
		}
	}
	return added, nil
}

func (a *Agent) markMine(c grid.Cell) error {
	if a.isSafe(c) {
		return fmt.Errorf("cell %v deduced both mine and safe: %w", c, internalerr.ErrContradiction)
	}
	a.mines[c] = struct{}{}
	a.kb.MarkMine(c)
	return nil
}

func (a *Agent) markSafe(c grid.Cell) error {
	if a.isMine(c) {
		return fmt.Errorf("cell %v deduced both mine and safe: %w", c, internalerr.ErrContradiction)
	}
	a.safes[c] = struct{}{}
	a.kb.MarkSafe(c)
	return nil
}

func (a *Agent) isMine(c grid.Cell) bool {
	_, ok := a.mines[c]
	return ok
}

func (a *Agent) isSafe(c grid.Cell) bool {
	_, ok := a.safes[c]
	return ok
}

// SafeMove returns an unplayed cell known to be safe, if any.
func (a *Agent) SafeMove() (grid.Cell, bool) {
	var eligible []grid.Cell
	for c := range a.safes {
		if _, played := a.movesMade[c]; !played {
			eligible = append(eligible, c)
		}
	}
	return a.pick(eligible)
}

// RandomMove returns an unplayed cell that is not a known mine, if
// any. The choice carries no safety guarantee.
func (a *Agent) RandomMove() (grid.Cell, bool) {
	var eligible []grid.Cell
	for row := 0; row < a.size.Height; row++ {
		for col := 0; col < a.size.Width; col++ {
			c := grid.Cell{Row: row, Col: col}
			if _, played := a.movesMade[c]; played {
				continue
			}
			if a.isMine(c) {
				continue
			}
			eligible = append(eligible, c)
		}
	}
	return a.pick(eligible)
}

// pick chooses among eligible cells. Sorting before the random draw
// keeps seeded agents deterministic despite map iteration order.
func (a *Agent) pick(eligible []grid.Cell) (grid.Cell, bool) {
	if len(eligible) == 0 {
		return grid.Cell{}, false
	}
	sortCells(eligible)
	return eligible[a.rng.Intn(len(eligible))], true
}

// Mines returns the confirmed mines in row-major order.
func (a *Agent) Mines() []grid.Cell {
	return setToSlice(a.mines)
}

// Safes returns the confirmed safe cells in row-major order.
func (a *Agent) Safes() []grid.Cell {
	return setToSlice(a.safes)
}

// MovesMade returns the played cells in row-major order.
func (a *Agent) MovesMade() []grid.Cell {
	return setToSlice(a.movesMade)
}

// Knowledge returns a snapshot of the retained sentences, mainly for
// display and tests.
func (a *Agent) Knowledge() []*knowledge.Sentence {
	return a.kb.Sentences()
}

// Check validates the agent's internal invariants.
func (a *Agent) Check() error {
	for c := range a.mines {
		if _, ok := a.safes[c]; ok {
			return fmt.Errorf("cell %v in both mine and safe sets: %w", c, internalerr.ErrContradiction)
		}
	}
	for c := range a.movesMade {
		if _, ok := a.safes[c]; !ok {
			return fmt.Errorf("played cell %v not marked safe: %w", c, internalerr.ErrContradiction)
		}
	}
	return a.kb.Check()
}

func setToSlice(set map[grid.Cell]struct{}) []grid.Cell {
	out := make([]grid.Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sortCells(out)
	return out
}

func sortCells(cs []grid.Cell) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}
		return cs[i].Col < cs[j].Col
	})
}
