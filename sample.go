package samplableset

// Sample draws an element with probability proportional to its weight,
// using the set's own generator. It fails with ErrEmpty if the set has no
// elements.
func (s *Set[E]) Sample() (E, float64, error) {
	return s.SampleWith(s.rng)
}

// SampleWith draws an element with probability proportional to its
// weight, using the supplied generator instead of the set's own. It fails
// with ErrEmpty if the set has no elements.
func (s *Set[E]) SampleWith(rng RNG) (E, float64, error) {
	var zero E
	if s.tree.Total() <= 0 {
		return zero, 0, ErrEmpty
	}

	g := s.tree.Locate(rng.Float64())
	ceiling := s.table.Ceiling(g)
	for {
		n := s.table.Len(g)
		slot := int(rng.Float64() * float64(n))
		if slot >= n {
			slot = n - 1 // guard against a rng.Float64() draw of exactly 1.
		}
		entry := s.table.At(g, slot)
		if rng.Float64() < entry.Weight/ceiling {
			return entry.Element, entry.Weight, nil
		}
	}
}
