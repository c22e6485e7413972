package groups

import (
	"github.com/ghsonge/samplableset/internal/invariant"
)

// Tree is a full binary tree with n leaves holding the sum of the weights
// in each group, laid out as a flat array the way a static segment tree
// normally is: the root is at index 1, leaf g is at index n+g, the parent
// of node i is at i/2, and the children of node i are at 2i and 2i+1. Every
// internal node holds the sum of its two children, so the root always
// holds the total weight.
type Tree struct {
	n    int
	sums []float64
}

// NewTree returns a Tree with n leaves, all initialized to zero weight.
// n must be at least 1.
func NewTree(n int) *Tree {
	return &Tree{
		n:    n,
		sums: make([]float64, n*2),
	}
}

// Total returns the sum of every leaf, i.e. the value at the root.
func (t *Tree) Total() float64 {
	return t.sums[1]
}

// Add adds delta (positive or negative) to leaf g and to every ancestor of
// leaf g up to the root. The result is clamped to zero if floating-point
// drift or a caller bug would otherwise drive it negative; under the
// sampleset_debug build tag a leaf driven below -1e-9 panics instead (see
// package invariant).
func (t *Tree) Add(g int, delta float64) {
	i := t.n + g
	t.sums[i] += delta
	invariant.Check(t.sums[i] >= -1e-9, "tree leaf driven below zero")
	if t.sums[i] < 0 {
		t.sums[i] = 0
	}
	for p := i / 2; p > 0; p /= 2 {
		l := p * 2
		r := l + 1
		t.sums[p] = t.sums[l] + t.sums[r]
	}
}

// Locate returns the group whose share of the leaves' running sum, taken
// over the leaves in the tree's left-to-right order, contains r*Total():
// at each internal node it descends left when the target is at most the
// left subtree's positive sum (ties go left), and otherwise subtracts that
// sum and descends right. Each group's share has length weight(g)/Total(),
// and a group of zero weight is never returned. The leaves appear in
// group order only when n is a power of two; for other n the flat layout
// places them in a different order. r must be in [0,1). Locate must not be
// called when Total() is zero; the caller (Set.Sample) is expected to
// guard that case.
func (t *Tree) Locate(r float64) int {
	target := r * t.sums[1]
	i := 1
	for i < t.n {
		l := i * 2
		if target <= t.sums[l] && t.sums[l] > 0 {
			i = l
		} else {
			target -= t.sums[l]
			i = l + 1
		}
	}
	return i - t.n
}

// Clear resets every leaf and internal node to zero.
func (t *Tree) Clear() {
	for i := range t.sums {
		t.sums[i] = 0
	}
}
