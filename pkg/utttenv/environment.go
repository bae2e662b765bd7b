// Package utttenv wraps pkg/game's rule engine into a small
// value-object API: action encoding, tensor observation, and a
// step/reset/reward loop an external harness can drive.
package utttenv

import "github.com/Carbon225/uttt-mcts/pkg/game"

// Observation is a 3x9x9 tensor of {0,1} bytes: plane 0 marks the
// current player's pieces, plane 1 the opponent's, plane 2 is
// uniformly 1 iff the current player is First. Flattening matches
// game.Game.Board.
type Observation [3][9][9]uint8

// Environment owns a Game and exposes the reset/step/reward loop.
type Environment struct {
	game *game.Game
}

// New returns an Environment wrapping a fresh Game.
func New() *Environment {
	return &Environment{game: game.NewGame()}
}

// Game returns the underlying game state, for callers (MCTS, PMCTS)
// that need direct access rather than going through action encoding.
func (e *Environment) Game() *game.Game {
	return e.game
}

// Reset installs a fresh Game.
func (e *Environment) Reset() {
	e.game = game.NewGame()
}

// ValidActions maps the current legal moves to their action encodings.
func (e *Environment) ValidActions() []int {
	moves := e.game.ValidMoves()
	actions := make([]int, len(moves))
	for i, m := range moves {
		actions[i] = game.MoveToAction(m)
	}
	return actions
}

// Step decodes action and plays it if legal; otherwise it silently
// substitutes the first legal action in canonical order rather than
// failing. Returns the resulting observation, reward, and done flag.
func (e *Environment) Step(action int) (Observation, float32, bool) {
	m := game.ActionToMove(action)
	if !e.game.MoveValid(m) {
		for a := 0; a < game.NumActions; a++ {
			candidate := game.ActionToMove(a)
			if e.game.MoveValid(candidate) {
				m = candidate
				break
			}
		}
	}
	e.game.MakeMove(m)
	return e.Observation(), e.Reward(), e.Done()
}

// CurrentPlayer returns 0 for First, 1 for Second.
func (e *Environment) CurrentPlayer() int {
	if e.game.CurrentPlayer() == game.MarkFirst {
		return 0
	}
	return 1
}

// Done reports whether the game is over.
func (e *Environment) Done() bool {
	return e.game.IsOver()
}

// Reward returns +1 if First has won, -1 if Second has won, 0 otherwise
// (mid-game or draw).
func (e *Environment) Reward() float32 {
	switch e.game.Winner() {
	case game.MarkFirst:
		return 1
	case game.MarkSecond:
		return -1
	default:
		return 0
	}
}

// Observation returns the current 3x9x9 tensor encoding.
func (e *Environment) Observation() Observation {
	var obs Observation
	board := e.game.Board()
	current := e.game.CurrentPlayer()

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			switch board[r][c] {
			case current:
				obs[0][r][c] = 1
			case game.MarkNone:
				// no mark on this cell
			default:
				obs[1][r][c] = 1
			}
		}
	}

	if current == game.MarkFirst {
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				obs[2][r][c] = 1
			}
		}
	}

	return obs
}

// Render returns a human-readable rendering of the board.
func (e *Environment) Render(styler game.Styler) string {
	return e.game.Render(styler)
}

// Clone returns a deep copy of the environment.
func (e *Environment) Clone() *Environment {
	return &Environment{game: e.game.Clone()}
}
