package game

// BigBoard is the 3x3 grid of SmallBoards, with its own cached
// meta-winner recomputed from subboard winners after every placement.
type BigBoard struct {
	boards [3][3]SmallBoard
	placed int
	winner Mark
}

// At returns the subboard at outer.
func (b *BigBoard) At(outer Coord) *SmallBoard {
	return &b.boards[outer.Row][outer.Col]
}

// Winner returns the cached meta-winner, or MarkNone.
func (b *BigBoard) Winner() Mark {
	return b.winner
}

// IsFull reports whether all 81 cells are occupied.
func (b *BigBoard) IsFull() bool {
	return b.placed == 81
}

// IsOver reports whether the big board has a meta-winner, is full, or
// has every subboard over (no cell is left that may be played).
func (b *BigBoard) IsOver() bool {
	if b.winner != MarkNone || b.IsFull() {
		return true
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !b.boards[r][c].IsOver() {
				return false
			}
		}
	}
	return true
}

func (b *BigBoard) subWinners() [3][3]Mark {
	var grid [3][3]Mark
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			grid[r][c] = b.boards[r][c].Winner()
		}
	}
	return grid
}

// Place routes mark to the SmallBoard at m.Outer, increments the
// placement count, and recomputes the meta-winner from the grid of
// subboard winners.
func (b *BigBoard) Place(mark Mark, m Move) {
	b.boards[m.Outer.Row][m.Outer.Col].Place(mark, m.Inner)
	b.placed++
	b.winner = winnerOf(b.subWinners())
}
