package pmcts

import "time"

// Budget bounds a single Search.Run call: either a fixed total number
// of rollouts spread evenly across every root action, or a wall-clock
// deadline shared by repeated allocation passes.
type Budget struct {
	Rollouts uint32
	Movetime time.Duration
	timed    bool
}

// DefaultBudget runs a fixed number of rollouts.
func DefaultBudget() *Budget {
	return &Budget{Rollouts: 10000}
}

// SetRollouts sets the total rollout count and switches to count mode.
func (b *Budget) SetRollouts(n uint32) *Budget {
	b.Rollouts = n
	b.timed = false
	return b
}

// SetMovetime sets a wall-clock think time and switches to timed mode.
func (b *Budget) SetMovetime(d time.Duration) *Budget {
	b.Movetime = d
	b.timed = true
	return b
}
