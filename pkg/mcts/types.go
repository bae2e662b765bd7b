package mcts

// Result is a reward in [0,1], 0 being a loss and 1 a win from the
// perspective it was recorded for.
type Result = float64

// SeedGeneratorFn supplies the seed for a Tree's rollout RNG. Default
// is time-based; tests override it for determinism.
var SeedGeneratorFn func() int64 = defaultSeedGeneratorFn

// SetSeedGeneratorFn overrides the seed generator used by new Trees.
func SetSeedGeneratorFn(f func() int64) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
