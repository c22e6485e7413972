// Package groups implements the bucketing and prefix-sum machinery a
// samplableset.Set uses to sample elements with probability proportional to their
// weight: a logarithmic hash from weight to group index, a flat-array
// prefix-sum tree over group totals, and a per-group dense table with
// O(1) swap-remove.
package groups

import (
	"errors"
	"math"
)

// ErrInvalidRange is returned by NewHash when the weight bounds cannot
// define a valid set of groups.
var ErrInvalidRange = errors.New("groups: invalid weight range")

// Hash maps a weight to the index of the group it belongs to. Weights
// are partitioned into groups spanning one octave each: group g holds
// every weight w such that wMin*2^g <= w < wMin*2^(g+1), except that the
// last group ends at wMax and includes it.
type Hash struct {
	min        float64
	max        float64
	numGroups  int
	powerOfTwo bool
}

// NewHash returns a Hash for the closed range [wMin, wMax]. It fails with
// ErrInvalidRange if wMin is not strictly positive, wMax is not finite,
// or wMax < wMin.
func NewHash(wMin, wMax float64) (*Hash, error) {
	if wMin <= 0 {
		return nil, ErrInvalidRange
	}
	if math.IsInf(wMax, 0) || math.IsNaN(wMax) {
		return nil, ErrInvalidRange
	}
	if wMax < wMin {
		return nil, ErrInvalidRange
	}

	ratio := math.Log2(wMax / wMin)
	powerOfTwo := math.Floor(ratio) == math.Ceil(ratio) && wMax != wMin

	h := &Hash{
		min:        wMin,
		max:        wMax,
		powerOfTwo: powerOfTwo,
	}
	h.numGroups = h.of(wMax) + 1
	return h, nil
}

// NumGroups returns the number of groups G this Hash partitions
// [wMin, wMax] into.
func (h *Hash) NumGroups() int {
	return h.numGroups
}

// Min returns the lower bound of the weight range.
func (h *Hash) Min() float64 {
	return h.min
}

// Max returns the upper bound of the weight range.
func (h *Hash) Max() float64 {
	return h.max
}

// Of returns the group index a weight w in [wMin, wMax] belongs to.
// Behavior is unspecified for weights outside that range; callers are
// expected to validate the range first (see Set.Insert).
func (h *Hash) Of(w float64) int {
	return h.of(w)
}

func (h *Hash) of(w float64) int {
	index := int(math.Floor(math.Log2(w / h.min)))
	if h.powerOfTwo && w == h.max {
		// Without this fix, wMax would hash into the group right past the
		// last one, which doesn't exist: log2(wMax/wMin) is an integer, so
		// floor() doesn't round it down into the last group the way it does
		// for every other weight in that group.
		index--
	}
	return index
}

// Ceiling returns the ceiling weight of group g: the smallest power-of-two
// multiple of wMin strictly greater than every weight group g can hold,
// except for the last group, whose ceiling is exactly wMax.
func (h *Hash) Ceiling(g int) float64 {
	if g == h.numGroups-1 {
		return h.max
	}
	return h.min * math.Pow(2, float64(g+1))
}
