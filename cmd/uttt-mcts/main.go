/*
This is a demo CLI for the Ultimate Tic Tac Toe MCTS engine.
If you don't know the rules, see: https://en.wikipedia.org/wiki/Ultimate_tic-tac-toe

All of the game logic lives in pkg/game, with pkg/utttenv wrapping it
into an action/observation environment and pkg/mcts/pkg/pmcts
providing the two search engines. This program plays First with tree
search (pkg/mcts) against Second with flat rollouts (pkg/pmcts) and
prints the board after every ply.
*/
package main

import (
	"fmt"
	"time"

	"github.com/muesli/termenv"

	"github.com/Carbon225/uttt-mcts/pkg/game"
	"github.com/Carbon225/uttt-mcts/pkg/mcts"
	"github.com/Carbon225/uttt-mcts/pkg/pmcts"
	"github.com/Carbon225/uttt-mcts/pkg/utttenv"
)

// termStyler colorizes a rendered glyph with termenv.
type termStyler struct {
	profile termenv.Profile
}

func (s termStyler) Style(mark game.Mark, sent bool) string {
	str := termenv.String(mark.String()).Foreground(s.profile.Color(colorFor(mark)))
	if sent {
		str = str.Underline()
	}
	return str.String()
}

func colorFor(mark game.Mark) string {
	switch mark {
	case game.MarkFirst:
		return "#5FD7FF"
	case game.MarkSecond:
		return "#FF5F87"
	default:
		return "#808080"
	}
}

func main() {
	fmt.Println("Ultimate Tic Tac Toe: MCTS (First) vs PMCTS (Second)")

	styler := termStyler{profile: termenv.ColorProfile()}
	env := utttenv.New()
	tree := mcts.NewTree(env.Game())

	ply := 0
	for !env.Done() {
		var move game.Move
		if env.CurrentPlayer() == 0 {
			move = tree.Run(mcts.DefaultBudget().SetMovetime(500 * time.Millisecond))
		} else {
			move = pmcts.NewSearch(env.Game()).Run(pmcts.DefaultBudget().SetMovetime(500 * time.Millisecond))
		}

		action := game.MoveToAction(move)
		_, reward, done := env.Step(action)
		tree.Advance(move)
		ply++

		fmt.Printf("ply %d: %s plays %s\n", ply, playerName(env), move)
		fmt.Println(env.Render(styler))

		if done {
			fmt.Printf("game over, reward=%.1f, tree size=%d\n", reward, tree.TreeSize())
		}
	}
}

func playerName(e *utttenv.Environment) string {
	// the player who just moved is the opposite of whoever is to move now
	if e.CurrentPlayer() == 0 {
		return "Second"
	}
	return "First"
}
