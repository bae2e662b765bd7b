package game

import "testing"

func TestWinnerOf(t *testing.T) {
	x, o, n := MarkFirst, MarkSecond, MarkNone

	cases := []struct {
		name string
		grid [3][3]Mark
		want Mark
	}{
		{"empty", [3][3]Mark{}, n},
		{"row0", [3][3]Mark{{x, x, x}, {n, o, n}, {n, n, o}}, x},
		{"row2", [3][3]Mark{{n, n, n}, {n, n, n}, {o, o, o}}, o},
		{"col1", [3][3]Mark{{n, x, n}, {n, x, n}, {o, x, n}}, x},
		{"mainDiag", [3][3]Mark{{o, n, n}, {n, o, n}, {n, n, o}}, o},
		{"antiDiag", [3][3]Mark{{n, n, x}, {n, x, n}, {x, n, n}}, x},
		{"noLine", [3][3]Mark{{x, o, x}, {x, o, o}, {o, x, x}}, n},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := winnerOf(c.grid); got != c.want {
				t.Errorf("winnerOf(%v) = %v, want %v", c.grid, got, c.want)
			}
		})
	}
}

func TestWinnerOfRotationSymmetry(t *testing.T) {
	x, o, n := MarkFirst, MarkSecond, MarkNone
	grid := [3][3]Mark{{x, x, x}, {o, n, o}, {n, o, n}}

	rotate := func(g [3][3]Mark) [3][3]Mark {
		var r [3][3]Mark
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				r[j][2-i] = g[i][j]
			}
		}
		return r
	}

	want := winnerOf(grid)
	for i := 0; i < 3; i++ {
		grid = rotate(grid)
		if got := winnerOf(grid); got != want {
			t.Errorf("rotation %d: winnerOf = %v, want %v", i+1, got, want)
		}
	}
}
