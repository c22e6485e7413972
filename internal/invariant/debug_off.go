//go:build !sampleset_debug

package invariant

// Check is a no-op in release builds.
func Check(cond bool, msg string) {}

// Enabled reports whether invariant checking is compiled in.
const Enabled = false
