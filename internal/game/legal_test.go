package game_test

import (
	"errors"
	"testing"

	"github.com/monistowl/enoch/internal/board"
	"github.com/monistowl/enoch/internal/game"
	"github.com/monistowl/enoch/internal/testutil"
)

func TestForcedKingMove(t *testing.T) {
	g := customGame(t, []board.Placement{
		{Army: board.Blue, Kind: board.King, Mask: board.SquareBB(board.E1)},
		{Army: board.Blue, Kind: board.Rook, Mask: board.SquareBB(board.A3)},
		{Army: board.Red, Kind: board.King, Mask: board.SquareBB(board.H8)},
		{Army: board.Red, Kind: board.Rook, Mask: board.SquareBB(board.E8)},
		{Army: board.Yellow, Kind: board.King, Mask: board.SquareBB(board.H4)},
		{Army: board.Black, Kind: board.King, Mask: board.SquareBB(board.A8)},
	})

	testutil.AssertTrue(t, g.KingInCheck(board.Blue), "rook on e8 should check e1")
	testutil.AssertTrue(t, g.MustMoveKing(board.Blue), "checked king with escapes must move")

	moves := g.LegalMoves(board.Blue)
	testutil.AssertTrue(t, moves.Len() > 0, "no escapes found")
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).From() != board.E1 {
			t.Errorf("non-king move %v surfaced while the king must move", moves.Get(i))
		}
	}

	// Blocking the check with the rook is refused while the king can flee.
	_, err := g.ApplyMove(board.Blue, board.A3, board.E3, board.NoPieceKind)
	if !errors.Is(err, game.ErrKingMustMove) {
		t.Errorf("rook block: got %v, want ErrKingMustMove", err)
	}

	// Stepping off the e-file is accepted.
	mustApply(t, g, board.Blue, board.E1, board.D1)
	testutil.AssertFalse(t, g.KingInCheck(board.Blue), "king still in check after fleeing")
}

func TestPinnedPieceCannotExposeKing(t *testing.T) {
	g := customGame(t, []board.Placement{
		{Army: board.Blue, Kind: board.King, Mask: board.SquareBB(board.E1)},
		{Army: board.Blue, Kind: board.Rook, Mask: board.SquareBB(board.E4)},
		{Army: board.Red, Kind: board.King, Mask: board.SquareBB(board.H8)},
		{Army: board.Red, Kind: board.Rook, Mask: board.SquareBB(board.E8)},
	})

	// The blue rook shields its king; no check, no forced king move.
	testutil.AssertFalse(t, g.KingInCheck(board.Blue), "shielded king counted in check")

	moves := g.LegalMoves(board.Blue)
	testutil.AssertFalse(t, moves.Contains(board.E4, board.A4),
		"pinned rook allowed to leave the file")
	testutil.AssertTrue(t, moves.Contains(board.E4, board.E8),
		"pinned rook should still capture along the pin")
	testutil.AssertTrue(t, moves.Contains(board.E4, board.E6),
		"pinned rook should slide along the pin")
}

func TestAttackQueries(t *testing.T) {
	g := customGame(t, []board.Placement{
		{Army: board.Blue, Kind: board.King, Mask: board.SquareBB(board.E1)},
		{Army: board.Blue, Kind: board.Queen, Mask: board.SquareBB(board.C3)},
		{Army: board.Blue, Kind: board.Knight, Mask: board.SquareBB(board.D4)},
		{Army: board.Red, Kind: board.King, Mask: board.SquareBB(board.E8)},
		{Army: board.Red, Kind: board.Pawn, Mask: board.SquareBB(board.E5)},
	})

	// Queen leaps from c3 reach a5, c5, e5, e3, a1, a3, c1 and e1 (own king).
	testutil.AssertTrue(t, g.IsSquareAttackedByArmy(board.E5, board.Blue),
		"queen leap attack missing")
	testutil.AssertFalse(t, g.IsSquareAttackedByArmy(board.D4, board.Blue),
		"queen cannot attack an adjacent square")
	testutil.AssertTrue(t, g.IsSquareAttackedByTeam(board.D4, board.Earth),
		"red pawn should cover the blue knight on d4")
}
