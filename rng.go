package samplableset

import (
	"golang.org/x/exp/rand"

	"github.com/ghsonge/samplableset/sharedrand"
)

// defaultSeed is used by New when no WithSeed, WithSharedRNG, or WithRNG
// option is given,
// matching the original implementation's default constructor seed.
const defaultSeed = 42

// RNG is the minimal interface Sample, SampleWith, and a Set's own
// generator need: a uniform draw in [0, 1). Both *golang.org/x/exp/rand.Rand
// and *math/rand.Rand satisfy it.
type RNG interface {
	Float64() float64
}

// Option configures a Set at construction time.
type Option func(*config)

type config struct {
	seed    uint64
	hasSeed bool
	rng     RNG
	shared  bool
}

// WithSeed seeds the set's own per-instance generator explicitly, instead
// of the default seed (42).
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithSharedRNG opts the set into the process-wide generator from package
// sharedrand instead of owning a per-instance one. Sets built this way are
// not reentrant with respect to each other, since they all draw from the
// same generator.
func WithSharedRNG() Option {
	return func(c *config) {
		c.shared = true
	}
}

// WithRNG injects an arbitrary generator as the set's own, bypassing
// seeding entirely. Useful for deterministic construction in tests.
func WithRNG(rng RNG) Option {
	return func(c *config) {
		c.rng = rng
	}
}

func newRNG(c *config) RNG {
	if c.rng != nil {
		return c.rng
	}
	if c.shared {
		return sharedrand.Generator()
	}
	seed := uint64(defaultSeed)
	if c.hasSeed {
		seed = c.seed
	}
	return rand.New(rand.NewSource(seed))
}

// Clone returns a copy of the set with its own per-instance generator,
// reseeded from one draw of the source's generator. Because the new seed
// comes from a 32-bit-ish draw, many clones of the same source risk a
// birthday collision (about 77,000 clones for a 50% chance of one pair
// sharing a seed); use CloneWithSeed for a guaranteed-distinct sequence.
func (s *Set[E]) Clone() *Set[E] {
	return s.cloneWithRNG(rand.New(rand.NewSource(uint64(s.rng.Float64() * (1 << 32)))))
}

// CloneWithSeed returns a copy of the set with its own per-instance
// generator seeded explicitly.
func (s *Set[E]) CloneWithSeed(seed uint64) *Set[E] {
	return s.cloneWithRNG(rand.New(rand.NewSource(seed)))
}
