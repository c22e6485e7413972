package samplableset

// IterBegin positions the cursor at the first element of the set, in
// group-then-slot order. If the set is empty, the cursor is left at the
// end, and a subsequent GetAtIter fails with ErrEndOfIteration.
//
// The cursor is a snapshot-free view on the set: any call to Insert,
// SetWeight, Erase, or Clear invalidates it. IterNext and GetAtIter detect
// that and fail with ErrStaleIterator rather than reading through a
// position that may no longer mean what it meant when the cursor was
// positioned.
func (s *Set[E]) IterBegin() {
	s.iterSnapshot = s.generation
	s.iterGroup = 0
	s.iterSlot = 0
	s.iterEnd = s.Empty()
	s.skipEmptyGroups()
}

// IterNext advances the cursor by one element, skipping over any
// intervening empty groups. It fails with ErrStaleIterator if the set was
// mutated since the cursor was last positioned, or ErrEndOfIteration if
// the cursor is already past the last element.
func (s *Set[E]) IterNext() error {
	if stale := s.iterSnapshot != s.generation; stale {
		return ErrStaleIterator
	}
	if s.iterEnd {
		return ErrEndOfIteration
	}
	s.iterSlot++
	s.skipEmptyGroups()
	return nil
}

// GetAtIter returns the element and weight the cursor currently points
// at. It fails with ErrEndOfIteration if the cursor has walked past the
// last element, or ErrStaleIterator if the set was mutated since the
// cursor was last positioned.
func (s *Set[E]) GetAtIter() (E, float64, error) {
	var zero E
	if s.iterSnapshot != s.generation {
		return zero, 0, ErrStaleIterator
	}
	if s.iterEnd {
		return zero, 0, ErrEndOfIteration
	}
	entry := s.table.At(s.iterGroup, s.iterSlot)
	return entry.Element, entry.Weight, nil
}

// skipEmptyGroups advances iterGroup forward while the cursor has walked
// past the end of its current group, marking the cursor as end once it
// runs past the last group.
func (s *Set[E]) skipEmptyGroups() {
	if s.iterEnd {
		return
	}
	for s.iterSlot >= s.table.Len(s.iterGroup) {
		s.iterGroup++
		s.iterSlot = 0
		if s.iterGroup >= s.table.NumGroups() {
			s.iterEnd = true
			return
		}
	}
}
