// Package samplableset implements a dynamic set of distinct, weighted
// elements that can be sampled with probability proportional to weight in
// expected O(log G) time, where G is the number of weight groups
// (O(log2(wMax/wMin))), independent of the number of elements.
//
// Elements are partitioned into groups spanning one octave of weight each
// (package groups). A flat-array prefix-sum tree over the groups' totals
// supports an inverse-CDF descent to pick a group in O(log G); within a
// group, rejection sampling against the group's ceiling weight picks an
// element in O(1) expected trials. Insert, SetWeight, and Erase are O(1)
// amortized plus the O(log G) tree update.
package samplableset

import (
	"github.com/ghsonge/samplableset/groups"
)

// position locates an element within the group table.
type position struct {
	group int
	slot  int
}

// Set is a dynamic, weighted, samplable collection of elements of type E.
// Every method is single-threaded by contract: no method may be called
// concurrently with any other method on the same Set. Distinct Sets are
// independent and may be used from distinct goroutines, except when they
// share a generator via WithSharedRNG.
type Set[E comparable] struct {
	hash  *groups.Hash
	tree  *groups.Tree
	table *groups.Table[E]
	index map[E]position

	rng RNG

	iterGroup int
	iterSlot  int
	iterEnd   bool
	// generation is bumped on every mutating call; the iterator snapshots
	// it on IterBegin and compares against it on every subsequent use, so a
	// mutation between IterBegin and a later GetAtIter/IterNext is detected
	// as ErrStaleIterator rather than silently read through.
	generation   uint64
	iterSnapshot uint64
}

// New returns an empty Set whose elements must carry a weight in
// [wMin, wMax]. It fails with ErrInvalidRange if wMin is not strictly
// positive, wMax is not finite, or wMax is smaller than wMin.
//
// By default the set owns a per-instance generator seeded with 42; use
// WithSeed, WithSharedRNG, or WithRNG to change that.
func New[E comparable](wMin, wMax float64, opts ...Option) (*Set[E], error) {
	hash, err := groups.NewHash(wMin, wMax)
	if err != nil {
		return nil, ErrInvalidRange
	}

	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	return &Set[E]{
		hash:  hash,
		tree:  groups.NewTree(hash.NumGroups()),
		table: groups.NewTable[E](hash),
		index: make(map[E]position),
		rng:   newRNG(c),
	}, nil
}

func (s *Set[E]) cloneWithRNG(rng RNG) *Set[E] {
	index := make(map[E]position, len(s.index))
	for e, p := range s.index {
		index[e] = p
	}

	table := groups.NewTable[E](s.hash)
	tree := groups.NewTree(s.hash.NumGroups())
	for g := 0; g < s.hash.NumGroups(); g++ {
		for i := 0; i < s.table.Len(g); i++ {
			entry := s.table.At(g, i)
			table.Append(g, entry.Element, entry.Weight)
			tree.Add(g, entry.Weight)
		}
	}

	return &Set[E]{
		hash:  s.hash,
		tree:  tree,
		table: table,
		index: index,
		rng:   rng,
	}
}

// inRange reports whether w is a valid weight for this set.
func (s *Set[E]) inRange(w float64) bool {
	return s.hash.Min() <= w && w <= s.hash.Max()
}

// Size returns the number of distinct elements currently in the set.
func (s *Set[E]) Size() int {
	return len(s.index)
}

// Empty reports whether the set has no elements.
func (s *Set[E]) Empty() bool {
	return len(s.index) == 0
}

// Count reports whether e is currently in the set.
func (s *Set[E]) Count(e E) bool {
	_, ok := s.index[e]
	return ok
}

// TotalWeight returns the sum of every element's weight. Repeated
// insertions and erasures can drift this value from the exact sum of
// current weights by a small relative amount because of floating-point
// rounding; call Clear and reinsert every element to force an exact
// re-summation.
func (s *Set[E]) TotalWeight() float64 {
	return s.tree.Total()
}

// GetWeight returns the weight associated with e, or fails with
// ErrNotFound if e isn't in the set.
func (s *Set[E]) GetWeight(e E) (float64, error) {
	p, ok := s.index[e]
	if !ok {
		return 0, ErrNotFound
	}
	return s.table.At(p.group, p.slot).Weight, nil
}

// Insert adds e to the set with weight w. It fails with
// ErrWeightOutOfRange if w isn't in [wMin, wMax], leaving the set
// unchanged. If e is already in the set, Insert does nothing -- it is
// idempotent on present keys and does not change the existing weight.
func (s *Set[E]) Insert(e E, w float64) error {
	if !s.inRange(w) {
		return ErrWeightOutOfRange
	}

	if _, ok := s.index[e]; ok {
		return nil
	}

	s.generation++
	g := s.hash.Of(w)
	slot := s.table.Append(g, e, w)
	s.index[e] = position{group: g, slot: slot}
	s.tree.Add(g, w)
	return nil
}

// SetWeight upserts e with weight w: if e is already in the set, its
// weight (and possibly group) is updated; otherwise e is inserted. It
// fails with ErrWeightOutOfRange if w isn't in [wMin, wMax], before any
// mutation takes place.
func (s *Set[E]) SetWeight(e E, w float64) error {
	if !s.inRange(w) {
		return ErrWeightOutOfRange
	}
	s.Erase(e)
	return s.Insert(e, w)
}

// Erase removes e from the set. It does nothing if e isn't in the set.
func (s *Set[E]) Erase(e E) {
	p, ok := s.index[e]
	if !ok {
		return
	}
	s.generation++

	w := s.table.At(p.group, p.slot).Weight
	s.tree.Add(p.group, -w)

	moved, hasMoved := s.table.SwapRemove(p.group, p.slot)
	if hasMoved {
		s.index[moved] = p
	}
	delete(s.index, e)
}

// Clear removes every element from the set and resets the iterator.
func (s *Set[E]) Clear() {
	s.generation++
	s.tree.Clear()
	s.table.Clear()
	s.index = make(map[E]position)
	s.iterEnd = true
}
