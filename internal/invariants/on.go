//go:build invariants

package invariants

// Enabled is true when built with the "invariants" tag: every structural
// operation on a cache ring is followed by a full ring walk.
const Enabled = true
