// Package sharedrand implements the process-wide generator variant
// described for samplableset.Set: a single generator shared by every set
// constructed with WithSharedRNG, initialized from the wall clock when the
// package is initialized and explicitly reseedable with Seed.
//
// Like the sets built on top of it, the shared generator is single
// threaded by contract: nothing in this package synchronizes concurrent
// calls, and callers must not invoke Seed or draw from Generator
// concurrently with any other use of it.
package sharedrand

import (
	"time"

	"golang.org/x/exp/rand"
)

var shared = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

// Seed reseeds the shared generator. Every Set built with WithSharedRNG
// observes the new sequence from this point on.
func Seed(seed uint64) {
	shared.Seed(seed)
}

// Generator returns the process-wide generator.
func Generator() *rand.Rand {
	return shared
}
