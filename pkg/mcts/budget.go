package mcts

import "time"

// Budget bounds a single Tree.Run call: an iteration count, or a
// wall-clock deadline. Iterations is the default; SetMovetime switches
// to the timed mode.
type Budget struct {
	Iterations uint32
	Movetime   time.Duration
	timed      bool
}

// DefaultBudget runs a fixed number of iterations.
func DefaultBudget() *Budget {
	return &Budget{Iterations: 1000}
}

// SetIterations sets the iteration count and switches to count mode.
func (b *Budget) SetIterations(n uint32) *Budget {
	b.Iterations = n
	b.timed = false
	return b
}

// SetMovetime sets a wall-clock think time and switches to timed mode.
func (b *Budget) SetMovetime(d time.Duration) *Budget {
	b.Movetime = d
	b.timed = true
	return b
}

func (b *Budget) done(iter uint32, timer *_Timer) bool {
	if b.timed {
		return timer.IsEnd()
	}
	return iter >= b.Iterations
}
