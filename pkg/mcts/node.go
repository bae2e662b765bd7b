package mcts

import "github.com/Carbon225/uttt-mcts/pkg/game"

// NodeID indexes a Node within a Tree's append-only arena.
type NodeID int32

// childSlot is one of a Node's children: the move it represents, and
// the arena ID of the materialized child, once expansion has reached
// it.
type childSlot struct {
	move  game.Move
	child NodeID
	has   bool
}

// Node is a single MCTS tree node, stored by value in the Tree's
// arena. parent/action are present for every node except the current
// root (hasParent/hasAction false there, cleared on root advancement).
// children is fixed at construction from the node's legal moves, in
// game.Game.ValidMoves order, one slot per move; a materialized child
// ID is stable for the node's lifetime.
type Node struct {
	hasParent bool
	parent    NodeID
	hasAction bool
	action    game.Move

	children []childSlot

	visits uint32
	reward Result
}

func newNode(state *game.Game, parent NodeID, hasParent bool, action game.Move, hasAction bool) Node {
	moves := state.ValidMoves()
	children := make([]childSlot, len(moves))
	for i, m := range moves {
		children[i] = childSlot{move: m}
	}
	return Node{
		hasParent: hasParent,
		parent:    parent,
		hasAction: hasAction,
		action:    action,
		children:  children,
	}
}

// Terminal reports whether this node's state has no legal moves, i.e.
// the game was over when this node was created.
func (n *Node) Terminal() bool {
	return len(n.children) == 0
}

// FullyExpanded reports whether every child slot has been materialized.
func (n *Node) FullyExpanded() bool {
	for i := range n.children {
		if !n.children[i].has {
			return false
		}
	}
	return true
}

// Visits returns the node's visit count.
func (n *Node) Visits() uint32 {
	return n.visits
}

// Reward returns the node's accumulated reward.
func (n *Node) Reward() Result {
	return n.reward
}

// Children exposes the node's child slots (move, materialized ID if
// any) for callers that want to inspect the tree, e.g. to report the
// per-move visit distribution.
func (n *Node) Children() []ChildInfo {
	out := make([]ChildInfo, len(n.children))
	for i, c := range n.children {
		out[i] = ChildInfo{Move: c.move, Materialized: c.has, Child: c.child}
	}
	return out
}

// ChildInfo is the read-only view of a Node's child slot exposed to
// callers outside the package.
type ChildInfo struct {
	Move         game.Move
	Materialized bool
	Child        NodeID
}
