// Package mcts implements Monte Carlo Tree Search: an append-only
// node arena, UCT selection, random rollout, leaf-to-root
// backpropagation, and a root-advancement operation that lets a Tree
// be reused across plies instead of rebuilt from scratch.
package mcts

import (
	"math"
	"math/rand"

	"github.com/Carbon225/uttt-mcts/pkg/game"
)

// Tree is a single MCTS search tree rooted at a game position. Nodes
// are stored by value in arena and referenced by NodeID; a node's
// full board state is never stored, it is recovered by replaying the
// path of actions from rootState.
type Tree struct {
	arena     []Node
	root      NodeID
	rootState *game.Game

	rng      *rand.Rand
	timer    *_Timer
	listener SearchListener
}

// NewTree builds a fresh single-node tree rooted at state. state is
// cloned; the tree owns its own copy.
func NewTree(state *game.Game) *Tree {
	t := &Tree{
		rootState: state.Clone(),
		timer:     _NewTimer(),
		rng:       rand.New(rand.NewSource(SeedGeneratorFn())),
	}
	t.arena = append(t.arena, newNode(t.rootState, 0, false, game.Move{}, false))
	t.root = 0
	return t
}

// SetListener attaches a callback invoked once every iteration.
func (t *Tree) SetListener(l SearchListener) {
	t.listener = l
}

// TreeSize returns the number of nodes materialized in the arena.
func (t *Tree) TreeSize() int {
	return len(t.arena)
}

// Root returns the id of the current root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node exposes a read-only view of an arena node, for inspection
// (e.g. a CLI printing the per-move visit distribution).
func (t *Tree) Node(id NodeID) *Node {
	return &t.arena[id]
}

// Run performs iterations until budget is exhausted, then returns the
// root's most-visited child move (the "robust child" policy). Panics
// if the root is terminal: callers must check for game-over first.
func (t *Tree) Run(budget *Budget) game.Move {
	if t.arena[t.root].Terminal() {
		panic("mcts: Run called on a terminal position")
	}

	t.timer.Reset()
	if budget.timed {
		t.timer.Movetime(int(budget.Movetime.Milliseconds()))
	}

	var iterations uint32
	for !budget.done(iterations, t.timer) {
		t.iterate()
		iterations++
		if t.listener != nil {
			t.listener(t.stats(iterations))
		}
	}

	return t.BestMove()
}

// BestMove returns the current root's most-visited child move.
func (t *Tree) BestMove() game.Move {
	root := &t.arena[t.root]
	best := -1
	var bestVisits uint32
	for i, c := range root.children {
		if !c.has {
			continue
		}
		v := t.arena[c.child].visits
		if best == -1 || v > bestVisits {
			best = i
			bestVisits = v
		}
	}
	if best == -1 {
		panic("mcts: BestMove called before any child was expanded")
	}
	return root.children[best].move
}

func (t *Tree) stats(iterations uint32) SearchStats {
	root := &t.arena[t.root]
	best := -1
	var bestVisits uint32
	for i, c := range root.children {
		if c.has && (best == -1 || t.arena[c.child].visits > bestVisits) {
			best = i
			bestVisits = t.arena[c.child].visits
		}
	}
	s := SearchStats{Iterations: iterations, TreeSize: len(t.arena)}
	if best != -1 {
		s.BestMove = root.children[best].move
		s.BestMoveVisits = bestVisits
	}
	return s
}

// Advance replays action at the root: if it is already a materialized
// child, that child becomes the new root (its subtree, and therefore
// its accumulated search effort, is kept); otherwise a fresh
// unparented root is created for the resulting position.
func (t *Tree) Advance(action game.Move) {
	root := &t.arena[t.root]
	for _, c := range root.children {
		if c.move != action {
			continue
		}
		if c.has {
			t.adoptRoot(c.child)
			return
		}
		break
	}

	next := t.rootState.Clone()
	next.MakeMove(action)
	t.rootState = next
	t.arena = []Node{newNode(t.rootState, 0, false, game.Move{}, false)}
	t.root = 0
}

// adoptRoot makes id the tree's new root in place, without discarding
// the rest of the arena: the old root and any now-unreachable nodes
// stay allocated but are simply never visited again. This trades
// memory for avoiding an O(arena) compaction on every ply.
func (t *Tree) adoptRoot(id NodeID) {
	state := t.stateAt(id)
	t.rootState = state
	n := &t.arena[id]
	n.hasParent = false
	n.hasAction = false
	t.root = id
}

// stateAt reconstructs the game position at id by replaying the
// sequence of actions from the tree's root state.
func (t *Tree) stateAt(id NodeID) *game.Game {
	var actions []game.Move
	cur := id
	for t.arena[cur].hasAction {
		actions = append(actions, t.arena[cur].action)
		cur = t.arena[cur].parent
	}
	state := t.rootState.Clone()
	for i := len(actions) - 1; i >= 0; i-- {
		state.MakeMove(actions[i])
	}
	return state
}

// iterate runs one selection/expansion/rollout/backpropagation cycle.
func (t *Tree) iterate() {
	id := t.root
	state := t.rootState.Clone()

	for {
		n := &t.arena[id]
		if n.Terminal() {
			mover := state.CurrentPlayer().Other()
			t.backprop(id, rewardFor(mover, state.Winner()))
			return
		}
		if !n.FullyExpanded() {
			t.expand(id, state)
			return
		}
		idx := t.selectChild(id)
		slot := n.children[idx]
		id = slot.child
		state.MakeMove(slot.move)
	}
}

// expand materializes one not-yet-visited child of id chosen
// uniformly at random, rolls it out, and backpropagates the result.
func (t *Tree) expand(id NodeID, state *game.Game) {
	n := &t.arena[id]
	var unexpanded []int
	for i, c := range n.children {
		if !c.has {
			unexpanded = append(unexpanded, i)
		}
	}
	idx := unexpanded[t.rng.Intn(len(unexpanded))]
	move := n.children[idx].move

	childState := state.Clone()
	childState.MakeMove(move)
	childMover := childState.CurrentPlayer().Other()

	childID := NodeID(len(t.arena))
	t.arena = append(t.arena, newNode(childState, id, true, move, true))
	// n was taken by pointer into t.arena before the append above may
	// have reallocated the backing array; re-fetch before writing.
	t.arena[id].children[idx].child = childID
	t.arena[id].children[idx].has = true

	winner := t.rollout(childState.Clone())
	t.backprop(childID, rewardFor(childMover, winner))
}

// rollout plays uniformly random legal moves from state until the
// game ends, returning the winner (MarkNone for a draw).
func (t *Tree) rollout(state *game.Game) game.Mark {
	for !state.IsOver() {
		moves := state.ValidMoves()
		state.MakeMove(moves[t.rng.Intn(len(moves))])
	}
	return state.Winner()
}

// rewardFor reports the rollout result from mover's perspective: 1 a
// win for mover, 0 a loss, 0.5 a draw.
func rewardFor(mover game.Mark, winner game.Mark) Result {
	switch winner {
	case game.MarkNone:
		return 0.5
	case mover:
		return 1
	default:
		return 0
	}
}

// backprop walks id up to the root, recording reward at each node and
// inverting it once per step: a node's stored reward is always from
// the perspective of the player who moved to reach it, which
// alternates with its parent.
func (t *Tree) backprop(id NodeID, reward Result) {
	for {
		n := &t.arena[id]
		n.visits++
		n.reward += reward
		if !n.hasParent {
			return
		}
		reward = 1 - reward
		id = n.parent
	}
}

// selectChild returns the index, within arena[id].children, of the
// child maximizing the UCT score.
func (t *Tree) selectChild(id NodeID) int {
	n := &t.arena[id]
	logParent := math.Log(float64(n.visits))

	best := 0
	bestScore := math.Inf(-1)
	for i, c := range n.children {
		child := &t.arena[c.child]
		exploit := child.reward / float64(child.visits)
		explore := ExplorationParam * math.Sqrt(logParent/float64(child.visits))
		score := exploit + explore
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}
