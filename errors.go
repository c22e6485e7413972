package samplableset

import "errors"

// ErrInvalidRange is returned by New when the weight bounds cannot define a
// valid set of groups: wMin is not strictly positive, wMax is not finite,
// or wMax is smaller than wMin.
var ErrInvalidRange = errors.New("samplableset: invalid weight range")

// ErrWeightOutOfRange is returned by Insert and SetWeight when the given
// weight falls outside the [wMin, wMax] range fixed at construction.
var ErrWeightOutOfRange = errors.New("samplableset: weight out of range")

// ErrEmpty is returned by Sample and SampleWith when the set has no
// elements to draw from.
var ErrEmpty = errors.New("samplableset: set is empty")

// ErrNotFound is returned by GetWeight when the element isn't in the set.
var ErrNotFound = errors.New("samplableset: element not found")

// ErrEndOfIteration is returned by GetAtIter and IterNext when the cursor
// has walked past the last element.
var ErrEndOfIteration = errors.New("samplableset: end of iteration")

// ErrStaleIterator is returned by GetAtIter and IterNext when the cursor
// was positioned before a mutation (Insert, SetWeight, Erase, or Clear)
// invalidated it.
var ErrStaleIterator = errors.New("samplableset: iterator used after mutation")
