//go:build sampleset_debug

// Package invariant gates internal consistency checks behind the
// sampleset_debug build tag, so release builds of this module pay no cost
// for them.
package invariant

// Check panics with msg if cond is false. Only called from code paths that
// indicate a bug in this module, never in response to caller input.
func Check(cond bool, msg string) {
	if !cond {
		panic("samplableset: invariant violated: " + msg)
	}
}

// Enabled reports whether invariant checking is compiled in.
const Enabled = true
