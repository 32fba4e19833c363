package game_test

import (
	"testing"

	"github.com/monistowl/enoch/internal/board"
	"github.com/monistowl/enoch/internal/game"
	"github.com/monistowl/enoch/internal/testutil"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := game.NewDefault()
	mustApply(t, g, board.Blue, board.E2, board.E3)
	mustApply(t, g, board.Red, board.D7, board.D6)

	data, err := g.ToJSON()
	testutil.AssertNoError(t, err)

	restored, err := game.FromJSON(data)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, restored.Board.ByArmyKind, g.Board.ByArmyKind)
	testutil.AssertEqual(t, restored.CurrentArmy(), g.CurrentArmy())
	testutil.AssertEqual(t, restored.Config.TurnOrder, g.Config.TurnOrder)

	// Re-serializing the restored game yields identical bytes.
	again, err := restored.ToJSON()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(again), string(data))
}

func TestSnapshotRebuildsDerivedState(t *testing.T) {
	g := game.NewDefault()
	mustApply(t, g, board.Blue, board.E2, board.E3)

	data, err := g.ToJSON()
	testutil.AssertNoError(t, err)
	restored, err := game.FromJSON(data)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, restored.Board.AllOccupied, g.Board.AllOccupied)
	testutil.AssertEqual(t, restored.Board.Free, g.Board.Free)
	for _, army := range board.Armies {
		testutil.AssertEqual(t, restored.State.KingSquare(army), g.State.KingSquare(army),
			"%s king cache", army)
	}
}

func TestSnapshotPreservesFrozenAndStalemate(t *testing.T) {
	g := customGame(t, []board.Placement{
		{Army: board.Blue, Kind: board.King, Mask: board.SquareBB(board.E1)},
		{Army: board.Black, Kind: board.King, Mask: board.SquareBB(board.A5)},
		{Army: board.Red, Kind: board.King, Mask: board.SquareBB(board.E8)},
		{Army: board.Red, Kind: board.Rook, Mask: board.SquareBB(board.H7)},
		{Army: board.Yellow, Kind: board.King, Mask: board.SquareBB(board.H5)},
	})
	g.CaptureKing(board.Red)
	g.UpdateAllStalemates()

	data, err := g.ToJSON()
	testutil.AssertNoError(t, err)
	restored, err := game.FromJSON(data)
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, restored.ArmyIsFrozen(board.Red), "frozen flag lost")
	testutil.AssertEqual(t, restored.State.KingSquare(board.Red), board.NoSquare)
	testutil.AssertEqual(t, restored.LegalMoves(board.Red).Len(), 0)
}
