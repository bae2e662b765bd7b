package mcts

import "github.com/Carbon225/uttt-mcts/pkg/game"

// SearchStats is the snapshot a SearchListener receives after each
// completed iteration.
type SearchStats struct {
	// Iterations is the number of completed select/expand/rollout/
	// backprop cycles so far.
	Iterations uint32

	// BestMove is the current root's most-visited child move.
	BestMove game.Move

	// BestMoveVisits is that child's visit count.
	BestMoveVisits uint32

	// TreeSize is the number of nodes materialized in the arena.
	TreeSize int
}

// SearchListener is called once per completed iteration during Tree.Run.
type SearchListener func(SearchStats)
