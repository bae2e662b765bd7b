package game

import "math/rand"

// newTestRand returns a seeded, per-test random source so test runs
// are reproducible.
func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
