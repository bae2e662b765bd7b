package game

import "fmt"

// Coord is a (row, col) pair within a 3x3 grid, row,col in [0,3).
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is a move in the 9x9 board: Outer selects a SmallBoard, Inner
// selects a cell within it.
type Move struct {
	Outer, Inner Coord
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.Outer, m.Inner)
}

// NumActions is the number of encodable actions: 3x3x3x3.
const NumActions = 81

// allMoves is the canonical outer-major, inner-major traversal of every
// encodable move, precomputed once.
var allMoves = func() [NumActions]Move {
	var moves [NumActions]Move
	i := 0
	for or := 0; or < 3; or++ {
		for oc := 0; oc < 3; oc++ {
			for ir := 0; ir < 3; ir++ {
				for ic := 0; ic < 3; ic++ {
					moves[i] = Move{Outer: Coord{or, oc}, Inner: Coord{ir, ic}}
					i++
				}
			}
		}
	}
	return moves
}()

// MoveToAction encodes a move as action = outer.row*27 + outer.col*9 +
// inner.row*3 + inner.col.
func MoveToAction(m Move) int {
	return m.Outer.Row*27 + m.Outer.Col*9 + m.Inner.Row*3 + m.Inner.Col
}

// ActionToMove decodes an action in [0,81) back to its move, via the
// precomputed table shared by every caller.
func ActionToMove(action int) Move {
	return allMoves[action]
}
