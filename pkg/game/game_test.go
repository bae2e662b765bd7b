package game

import "testing"

func TestActionRoundTrip(t *testing.T) {
	for a := 0; a < NumActions; a++ {
		m := ActionToMove(a)
		if got := MoveToAction(m); got != a {
			t.Errorf("MoveToAction(ActionToMove(%d)) = %d, want %d", a, got, a)
		}
	}
}

func TestMoveToActionBijection(t *testing.T) {
	seen := make(map[int]Move)
	for or := 0; or < 3; or++ {
		for oc := 0; oc < 3; oc++ {
			for ir := 0; ir < 3; ir++ {
				for ic := 0; ic < 3; ic++ {
					m := Move{Outer: Coord{or, oc}, Inner: Coord{ir, ic}}
					a := MoveToAction(m)
					if a < 0 || a >= NumActions {
						t.Fatalf("action %d out of range for move %v", a, m)
					}
					if prev, ok := seen[a]; ok {
						t.Fatalf("action %d produced by both %v and %v", a, prev, m)
					}
					seen[a] = m
				}
			}
		}
	}
	if len(seen) != NumActions {
		t.Fatalf("got %d distinct actions, want %d", len(seen), NumActions)
	}
}

// Straight subboard row win, no meta-winner yet. Placed directly on
// the board since this sequence doesn't itself respect the sent-to
// constraint — it's a component-level fixture, not a legal game
// transcript.
func TestSubboardRowWin(t *testing.T) {
	g := NewGame()
	g.board.Place(MarkFirst, Move{Outer: Coord{0, 0}, Inner: Coord{0, 0}})
	g.board.Place(MarkSecond, Move{Outer: Coord{0, 0}, Inner: Coord{1, 0}})
	g.board.Place(MarkFirst, Move{Outer: Coord{0, 0}, Inner: Coord{0, 1}})
	g.board.Place(MarkSecond, Move{Outer: Coord{0, 1}, Inner: Coord{1, 0}})
	g.board.Place(MarkFirst, Move{Outer: Coord{0, 0}, Inner: Coord{0, 2}})

	sub := g.board.At(Coord{0, 0})
	if sub.Winner() != MarkFirst {
		t.Fatalf("subboard (0,0) winner = %v, want First", sub.Winner())
	}
	if g.Winner() != MarkNone {
		t.Fatalf("meta winner = %v, want None", g.Winner())
	}
	if g.IsOver() {
		t.Fatal("game should not be over yet")
	}
}

// The sent-to constraint restricts the next mover to one subboard.
func TestSentToConstraint(t *testing.T) {
	g := NewGame()
	g.MakeMove(Move{Outer: Coord{1, 1}, Inner: Coord{0, 2}})

	moves := g.ValidMoves()
	if len(moves) != 9 {
		t.Fatalf("got %d valid moves, want 9", len(moves))
	}
	for _, m := range moves {
		if m.Outer != (Coord{0, 2}) {
			t.Fatalf("move %v has outer != (0,2)", m)
		}
	}
}

// Once the sent subboard is already over, the free-move rule spans
// every non-terminal subboard's empty cells.
func TestFreeMoveRelease(t *testing.T) {
	g := NewGame()
	g.board.Place(MarkFirst, Move{Outer: Coord{0, 0}, Inner: Coord{0, 0}})
	g.board.Place(MarkFirst, Move{Outer: Coord{0, 0}, Inner: Coord{0, 1}})
	g.board.Place(MarkFirst, Move{Outer: Coord{0, 0}, Inner: Coord{0, 2}})
	g.lastMove = Move{Outer: Coord{1, 1}, Inner: Coord{0, 0}} // sends to subboard (0,0), now over
	g.hasLastMove = true
	g.toMove = MarkSecond

	if g.board.At(Coord{0, 0}).Winner() != MarkFirst {
		t.Fatal("setup failed: subboard (0,0) should be won")
	}

	moves := g.ValidMoves()
	for _, m := range moves {
		if m.Outer == (Coord{0, 0}) {
			t.Fatalf("free-move set should exclude terminal subboard (0,0), got %v", m)
		}
	}

	count := 0
	for or := 0; or < 3; or++ {
		for oc := 0; oc < 3; oc++ {
			outer := Coord{or, oc}
			sub := g.board.At(outer)
			if sub.IsOver() {
				continue
			}
			for ir := 0; ir < 3; ir++ {
				for ic := 0; ic < 3; ic++ {
					if sub.At(Coord{ir, ic}) == MarkNone {
						count++
					}
				}
			}
		}
	}
	if len(moves) != count {
		t.Fatalf("got %d valid moves, want %d", len(moves), count)
	}
	for _, m := range moves {
		if !g.MoveValid(m) {
			t.Fatalf("ValidMoves produced %v which MoveValid rejects", m)
		}
	}
}

func TestValidMovesSubsetOfMoveValid(t *testing.T) {
	g := NewGame()
	rng := newTestRand(7)
	for i := 0; i < 40 && !g.IsOver(); i++ {
		moves := g.ValidMoves()
		for _, m := range moves {
			if !g.MoveValid(m) {
				t.Fatalf("ValidMoves produced %v which MoveValid rejects", m)
			}
		}
		if len(moves) == 0 {
			break
		}
		g.MakeMove(moves[rng.Intn(len(moves))])
	}
}

func TestPlayerParity(t *testing.T) {
	g := NewGame()
	rng := newTestRand(11)
	for ply := 0; !g.IsOver(); ply++ {
		want := MarkFirst
		if ply%2 == 1 {
			want = MarkSecond
		}
		if g.CurrentPlayer() != want {
			t.Fatalf("ply %d: current player = %v, want %v", ply, g.CurrentPlayer(), want)
		}
		moves := g.ValidMoves()
		if len(moves) == 0 {
			break
		}
		g.MakeMove(moves[rng.Intn(len(moves))])
	}
}

func TestTerminalDetection(t *testing.T) {
	g := NewGame()
	rng := newTestRand(3)
	plies := 0
	for !g.IsOver() && plies < 200 {
		moves := g.ValidMoves()
		if len(moves) == 0 {
			if !g.IsOver() {
				t.Fatal("no valid moves but game not over")
			}
			break
		}
		g.MakeMove(moves[rng.Intn(len(moves))])
		plies++
	}
	if !g.IsOver() {
		t.Fatal("game did not terminate within 200 plies")
	}
}

func TestCloneIndependence(t *testing.T) {
	g := NewGame()
	g.MakeMove(Move{Outer: Coord{0, 0}, Inner: Coord{0, 0}})
	clone := g.Clone()
	clone.MakeMove(Move{Outer: Coord{0, 0}, Inner: Coord{1, 1}})

	if g.board.At(Coord{0, 0}).At(Coord{1, 1}) != MarkNone {
		t.Fatal("mutating clone affected the original")
	}
}
