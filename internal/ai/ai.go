// Package ai provides throwaway move pickers for self-play and testing.
// There is no evaluation or search; both pickers work directly off the
// legal move list.
package ai

import (
	"math/rand/v2"

	"github.com/monistowl/enoch/internal/board"
	"github.com/monistowl/enoch/internal/game"
)

// RandomMove picks a uniformly random legal move for the army. The second
// return is false when the army has no legal move.
func RandomMove(g *game.Game, army board.Army) (game.Move, bool) {
	moves := g.LegalMoves(army)
	if moves.Len() == 0 {
		return game.NoMove, false
	}
	return moves.Get(rand.IntN(moves.Len())), true
}

// CapturePreferringMove picks a random capture when one exists, otherwise a
// random quiet move. Captures are recognized by the destination square being
// occupied; there is no exchange evaluation.
func CapturePreferringMove(g *game.Game, army board.Army) (game.Move, bool) {
	moves := g.LegalMoves(army)
	if moves.Len() == 0 {
		return game.NoMove, false
	}

	var captures []game.Move
	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		if !g.Board.IsEmpty(mv.To()) {
			captures = append(captures, mv)
		}
	}
	if len(captures) > 0 {
		return captures[rand.IntN(len(captures))], true
	}
	return moves.Get(rand.IntN(moves.Len())), true
}
