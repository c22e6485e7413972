package groups

// Entry is an (element, weight) pair stored in a group's dense array.
type Entry[E comparable] struct {
	Element E
	Weight  float64
}

// Table holds, for each group, a dense array of (element, weight) pairs
// supporting O(1) append and O(1) swap-remove, plus the group's ceiling
// weight used as the denominator in rejection sampling.
type Table[E comparable] struct {
	hash     *Hash
	groups   [][]Entry[E]
	ceilings []float64
}

// NewTable returns an empty Table with one group per group of hash.
func NewTable[E comparable](hash *Hash) *Table[E] {
	n := hash.NumGroups()
	ceilings := make([]float64, n)
	for g := 0; g < n; g++ {
		ceilings[g] = hash.Ceiling(g)
	}
	return &Table[E]{
		hash:     hash,
		groups:   make([][]Entry[E], n),
		ceilings: ceilings,
	}
}

// NumGroups returns the number of groups in the table.
func (t *Table[E]) NumGroups() int {
	return len(t.groups)
}

// Len returns the number of entries currently stored in group g.
func (t *Table[E]) Len(g int) int {
	return len(t.groups[g])
}

// At returns the entry at slot s of group g.
func (t *Table[E]) At(g, s int) Entry[E] {
	return t.groups[g][s]
}

// Ceiling returns the ceiling weight of group g.
func (t *Table[E]) Ceiling(g int) float64 {
	return t.ceilings[g]
}

// Append pushes (e, w) to the end of group g and returns its slot.
func (t *Table[E]) Append(g int, e E, w float64) int {
	t.groups[g] = append(t.groups[g], Entry[E]{Element: e, Weight: w})
	return len(t.groups[g]) - 1
}

// SwapRemove removes the entry at slot s of group g by swapping it with
// the last entry and shrinking the group by one. It reports the element
// that now occupies slot s (so the caller can update its position index)
// and whether such an element exists — it doesn't if s was the last slot.
func (t *Table[E]) SwapRemove(g, s int) (moved E, ok bool) {
	last := len(t.groups[g]) - 1
	if s != last {
		t.groups[g][s] = t.groups[g][last]
		moved, ok = t.groups[g][s].Element, true
	}
	t.groups[g] = t.groups[g][:last]
	return moved, ok
}

// Clear empties every group.
func (t *Table[E]) Clear() {
	for g := range t.groups {
		t.groups[g] = t.groups[g][:0]
	}
}
