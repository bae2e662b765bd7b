package game

import "strings"

// Styler colorizes a single rendered glyph. The demo CLI supplies an
// implementation backed by github.com/muesli/termenv; Render itself
// stays dependency-free so pkg/game remains a plain value-object
// library.
type Styler interface {
	Style(mark Mark, sent bool) string
}

// Render returns a human-readable 9x9 ASCII grid, subboards separated
// by blank columns and by dashed separator rows. styler may be nil for
// plain text.
func (g *Game) Render(styler Styler) string {
	board := g.Board()
	sentOuter, hasSent := g.sentOuter()

	var out strings.Builder
	for or := 0; or < 3; or++ {
		for ir := 0; ir < 3; ir++ {
			row := or*3 + ir
			for oc := 0; oc < 3; oc++ {
				if oc > 0 {
					out.WriteString("   ")
				}
				sent := hasSent && sentOuter == (Coord{or, oc})
				for ic := 0; ic < 3; ic++ {
					col := oc*3 + ic
					if ic > 0 {
						out.WriteString(" | ")
					}
					mark := board[row][col]
					if styler != nil {
						out.WriteString(styler.Style(mark, sent))
					} else {
						out.WriteString(mark.String())
					}
				}
			}
			out.WriteByte('\n')
		}
		if or < 2 {
			out.WriteString(strings.Repeat("-", 33))
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// sentOuter returns the subboard the next mover is sent to, if any.
func (g *Game) sentOuter() (Coord, bool) {
	if !g.hasLastMove {
		return Coord{}, false
	}
	sent := g.lastMove.Inner
	if g.board.At(sent).IsOver() {
		return Coord{}, false
	}
	return sent, true
}
