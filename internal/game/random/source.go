// Package random provides the deterministic randomness primitives for the
// progression engine: a seed-keyed uniform source and a weighted selection
// queue. Every draw is a pure function of (pushed contents, seed) so that
// independently simulated game instances replay bit-for-bit.
package random

import "math/rand"

// Source is the randomness provider for weighted and uniform draws.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// seededSource implements Source using math/rand keyed by a caller seed.
//
// Invariant: two seededSources built from the same seed produce identical
// value sequences.
type seededSource struct {
	src *rand.Rand
}

// NewSeededSource returns a deterministic Source keyed by seed.
//
// Postcondition: the returned Source yields the same sequence for the same
// seed on every call site and every process.
func NewSeededSource(seed uint64) Source {
	return &seededSource{src: rand.New(rand.NewSource(int64(seed)))}
}

// Intn returns a deterministic int in [0, n).
//
// Precondition: n > 0. Panics with "random: Intn called with n <= 0" otherwise.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with n <= 0")
	}
	return s.src.Intn(n)
}
