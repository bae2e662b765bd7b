package game

// Game owns a BigBoard, the player to move, and the last move played.
type Game struct {
	board       BigBoard
	toMove      Mark
	lastMove    Move
	hasLastMove bool
}

// NewGame returns a fresh game with First to move.
func NewGame() *Game {
	return &Game{toMove: MarkFirst}
}

// Clone returns a deep copy. BigBoard and SmallBoard are plain value
// types (arrays, not slices), so a struct copy already has no shared
// memory with the original.
func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}

// CurrentPlayer returns the mark to move.
func (g *Game) CurrentPlayer() Mark {
	return g.toMove
}

// Winner returns the BigBoard meta-winner, or MarkNone.
func (g *Game) Winner() Mark {
	return g.board.Winner()
}

// IsOver reports whether the BigBoard has a winner, is full, or has no
// subboard left that is not over.
func (g *Game) IsOver() bool {
	return g.board.IsOver()
}

// Board projects the BigBoard to a 9x9 mark grid, flattened in outer
// row, inner row, outer col, inner col order — the order the
// observation encoder (pkg/utttenv) relies on.
func (g *Game) Board() [9][9]Mark {
	var out [9][9]Mark
	for or := 0; or < 3; or++ {
		for ir := 0; ir < 3; ir++ {
			row := or*3 + ir
			for oc := 0; oc < 3; oc++ {
				for ic := 0; ic < 3; ic++ {
					col := oc*3 + ic
					out[row][col] = g.board.At(Coord{or, oc}).At(Coord{ir, ic})
				}
			}
		}
	}
	return out
}

// MoveValid reports whether m is legal in the current position: the
// game must not be over, the target cell must be empty, and it must
// respect the sent-to-subboard constraint (on a free move, the target
// subboard must not be over).
func (g *Game) MoveValid(m Move) bool {
	if g.IsOver() {
		return false
	}
	if g.board.At(m.Outer).At(m.Inner) != MarkNone {
		return false
	}
	if !g.hasLastMove {
		return true
	}
	sent := g.board.At(g.lastMove.Inner)
	if sent.IsOver() {
		return !g.board.At(m.Outer).IsOver()
	}
	return g.lastMove.Inner == m.Outer
}

// MakeMove plays m. Precondition: MoveValid(m); violating it is a
// caller bug and not defended against here.
func (g *Game) MakeMove(m Move) {
	g.board.Place(g.toMove, m)
	g.toMove = g.toMove.Other()
	g.lastMove = m
	g.hasLastMove = true
}

// ValidMoves returns every legal move in outer-major, inner-major
// order. Consumers (action encoding, MCTS child slots) rely on this
// order being stable and exhaustive.
func (g *Game) ValidMoves() []Move {
	if g.IsOver() {
		return nil
	}

	moves := make([]Move, 0, NumActions)

	if !g.hasLastMove {
		for or := 0; or < 3; or++ {
			for oc := 0; oc < 3; oc++ {
				for ir := 0; ir < 3; ir++ {
					for ic := 0; ic < 3; ic++ {
						moves = append(moves, Move{Outer: Coord{or, oc}, Inner: Coord{ir, ic}})
					}
				}
			}
		}
		return moves
	}

	sent := g.lastMove.Inner
	if g.board.At(sent).IsOver() {
		for or := 0; or < 3; or++ {
			for oc := 0; oc < 3; oc++ {
				outer := Coord{or, oc}
				sub := g.board.At(outer)
				if sub.IsOver() {
					continue
				}
				for ir := 0; ir < 3; ir++ {
					for ic := 0; ic < 3; ic++ {
						inner := Coord{ir, ic}
						if sub.At(inner) == MarkNone {
							moves = append(moves, Move{Outer: outer, Inner: inner})
						}
					}
				}
			}
		}
		return moves
	}

	sub := g.board.At(sent)
	for ir := 0; ir < 3; ir++ {
		for ic := 0; ic < 3; ic++ {
			inner := Coord{ir, ic}
			if sub.At(inner) == MarkNone {
				moves = append(moves, Move{Outer: sent, Inner: inner})
			}
		}
	}
	return moves
}
