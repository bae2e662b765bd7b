// Package pmcts implements a parallel flat-rollout search: no tree is
// built, just full random-playout simulations from each root-child
// action, tallied and reduced to an accumulated-reward argmax.
package pmcts

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/Carbon225/uttt-mcts/pkg/game"
)

// SeedGeneratorFn supplies the base seed each worker's RNG derives
// from; default is time-based, tests override it for determinism.
var SeedGeneratorFn func() int64 = func() int64 {
	return time.Now().UnixNano()
}

// SetSeedGeneratorFn overrides the seed generator used by new Search
// runs.
func SetSeedGeneratorFn(f func() int64) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

func seedFor(worker int) int64 {
	return SeedGeneratorFn() ^ (int64(worker) << 32)
}

// Search runs flat rollouts from a fixed root position.
type Search struct {
	rootState *game.Game
	workers   int
}

// NewSearch builds a Search over state, cloned so the caller's
// position is never mutated. Worker count defaults to runtime.NumCPU.
func NewSearch(state *game.Game) *Search {
	return &Search{
		rootState: state.Clone(),
		workers:   runtime.NumCPU(),
	}
}

// SetWorkers overrides the worker pool size.
func (s *Search) SetWorkers(n int) *Search {
	if n > 0 {
		s.workers = n
	}
	return s
}

type workerTally struct {
	rewards []float64
	visits  []uint32
}

// Run allocates rollouts evenly across every root-child action and
// returns the action with the highest accumulated reward. In
// iteration-budgeted mode, each action receives exactly
// budget.Rollouts/k rollouts (k = number of actions), parallelized
// across the worker pool by action. In timed mode, one rollout per
// action is issued per pass, passes repeating until the deadline, so
// every action always holds the same visit count. Panics if the root
// position is terminal.
func (s *Search) Run(budget *Budget) game.Move {
	moves := s.rootState.ValidMoves()
	k := len(moves)
	if k == 0 {
		panic("pmcts: Run called on a terminal position")
	}

	workers := s.workers
	if workers < 1 {
		workers = 1
	}
	if workers > k {
		workers = k
	}

	rewards := make([]float64, k)
	visits := make([]uint32, k)

	if budget.timed {
		deadline := time.Now().Add(budget.Movetime)
		for time.Now().Before(deadline) {
			runPass(s.rootState, moves, workers, 1, rewards, visits)
		}
	} else {
		n := budget.Rollouts / uint32(k)
		runPass(s.rootState, moves, workers, n, rewards, visits)
	}

	return selectBest(moves, rewards)
}

// selectBest returns the move with the highest accumulated reward.
func selectBest(moves []game.Move, rewards []float64) game.Move {
	best := 0
	bestReward := math.Inf(-1)
	for i, r := range rewards {
		if r > bestReward {
			bestReward = r
			best = i
		}
	}
	return moves[best]
}

// runPass partitions moves round-robin across workers, has each
// worker run n rollouts per assigned action into its own private
// tally, waits for every worker, then serially sums the tallies into
// rewards/visits. The Wait barrier is what lets a timed Run issue
// exactly one rollout per action per pass: no action can race ahead
// of another within a pass.
func runPass(root *game.Game, moves []game.Move, workers int, n uint32, rewards []float64, visits []uint32) {
	tallies := make([]workerTally, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			tallies[worker] = runWorker(root, moves, worker, workers, n)
		}(w)
	}
	wg.Wait()

	for _, t := range tallies {
		for i := range moves {
			rewards[i] += t.rewards[i]
			visits[i] += t.visits[i]
		}
	}
}

// runWorker plays n rollouts for each action at index
// worker, worker+totalWorkers, worker+2*totalWorkers, ... accumulating
// into a tally private to this worker: no synchronization is needed
// until runPass's serial reduction afterward.
func runWorker(root *game.Game, moves []game.Move, worker, totalWorkers int, n uint32) workerTally {
	rng := rand.New(rand.NewSource(seedFor(worker)))
	tally := workerTally{
		rewards: make([]float64, len(moves)),
		visits:  make([]uint32, len(moves)),
	}

	for actionIdx := worker; actionIdx < len(moves); actionIdx += totalWorkers {
		move := moves[actionIdx]
		for i := uint32(0); i < n; i++ {
			state := root.Clone()
			state.MakeMove(move)
			mover := state.CurrentPlayer().Other()
			winner := rollout(state, rng)

			tally.rewards[actionIdx] += rewardFor(mover, winner)
			tally.visits[actionIdx]++
		}
	}
	return tally
}

func rollout(state *game.Game, rng *rand.Rand) game.Mark {
	for !state.IsOver() {
		moves := state.ValidMoves()
		state.MakeMove(moves[rng.Intn(len(moves))])
	}
	return state.Winner()
}

// rewardFor reports the rollout result from mover's perspective: 1 a
// win, 0 a loss, 0.5 a draw.
func rewardFor(mover game.Mark, winner game.Mark) float64 {
	switch winner {
	case game.MarkNone:
		return 0.5
	case mover:
		return 1
	default:
		return 0
	}
}
