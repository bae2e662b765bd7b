package game

// SmallBoard is a single 3x3 subgame, tracking its own placement count
// and a cached winner so IsOver/Winner are O(1).
type SmallBoard struct {
	cells  [3][3]Mark
	placed int
	winner Mark
}

// At returns the mark at c, or MarkNone if the cell is empty.
func (b *SmallBoard) At(c Coord) Mark {
	return b.cells[c.Row][c.Col]
}

// Winner returns the cached subboard winner, or MarkNone.
func (b *SmallBoard) Winner() Mark {
	return b.winner
}

// IsFull reports whether every cell is occupied.
func (b *SmallBoard) IsFull() bool {
	return b.placed == 9
}

// IsOver reports whether the subboard has a winner or is full.
func (b *SmallBoard) IsOver() bool {
	return b.winner != MarkNone || b.IsFull()
}

// Place records mark at c. Precondition: c is empty and the board is
// not over; violating it is a caller bug, not defended against here.
func (b *SmallBoard) Place(mark Mark, c Coord) {
	b.cells[c.Row][c.Col] = mark
	b.placed++
	if b.placed >= 3 {
		b.winner = winnerOf(b.cells)
	}
}
