package mcts

import "time"

// ExplorationParam is the C constant in the UCT formula: higher values
// favor exploring under-visited children, lower values favor
// exploiting high-reward ones. Fixed at 1.41 (sqrt(2) rounded), not
// tunable.
const ExplorationParam float64 = 1.41

func defaultSeedGeneratorFn() int64 {
	return time.Now().UnixNano()
}
