package board

import (
	"strings"
	"testing"
)

func testPlacements() []Placement {
	return []Placement{
		{Army: Blue, Kind: King, Mask: SquareBB(E1)},
		{Army: Blue, Kind: Queen, Mask: SquareBB(C1)},
		{Army: Blue, Kind: Pawn, Mask: bbOf(D2, E2)},
		{Army: Black, Kind: King, Mask: SquareBB(A5)},
		{Army: Red, Kind: King, Mask: SquareBB(E8)},
		{Army: Red, Kind: Rook, Mask: SquareBB(B8)},
		{Army: Yellow, Kind: King, Mask: SquareBB(H5)},
	}
}

func TestOccupancyDerivation(t *testing.T) {
	b := New(testPlacements())

	if got := b.AllOccupied.PopCount(); got != 7 {
		t.Fatalf("AllOccupied: got %d pieces, want 7", got)
	}
	if b.Free != ^b.AllOccupied {
		t.Error("Free is not the complement of AllOccupied")
	}
	if got, want := b.OccupiedByTeam[Air], b.OccupiedByArmy[Blue]|b.OccupiedByArmy[Black]; got != want {
		t.Error("Air occupancy does not union its armies")
	}

	// Per-army masks are pairwise disjoint.
	for i, a := range Armies {
		for _, other := range Armies[i+1:] {
			if b.OccupiedByArmy[a]&b.OccupiedByArmy[other] != 0 {
				t.Errorf("%v and %v occupancy overlap", a, other)
			}
		}
	}
}

func TestPieceAt(t *testing.T) {
	b := New(testPlacements())

	army, kind, ok := b.PieceAt(E1)
	if !ok || army != Blue || kind != King {
		t.Errorf("e1: got (%v, %v, %v), want Blue King", army, kind, ok)
	}
	if _, _, ok := b.PieceAt(D4); ok {
		t.Error("d4 should be empty")
	}
	if !b.IsEmpty(D4) || b.IsEmpty(E1) {
		t.Error("IsEmpty disagrees with PieceAt")
	}
}

func TestMutators(t *testing.T) {
	b := New(testPlacements())

	b.MovePiece(Blue, Pawn, E2, E3)
	if _, kind, ok := b.PieceAt(E3); !ok || kind != Pawn {
		t.Fatal("pawn did not arrive on e3")
	}
	if !b.IsEmpty(E2) {
		t.Error("e2 still occupied after move")
	}

	b.RemovePiece(Red, Rook, B8)
	if !b.IsEmpty(B8) {
		t.Error("b8 still occupied after removal")
	}

	b.ClearSquare(E3)
	if !b.IsEmpty(E3) {
		t.Error("ClearSquare left e3 occupied")
	}
	if b.ByArmyKind[Blue][Pawn].PopCount() != 1 {
		t.Error("ClearSquare did not shrink the pawn mask")
	}
}

func TestDemoteToPawn(t *testing.T) {
	b := New(testPlacements())

	sq := b.DemoteToPawn(Blue, Queen)
	if sq != C1 {
		t.Fatalf("demoted square: got %v, want c1", sq)
	}
	if _, kind, _ := b.PieceAt(C1); kind != Pawn {
		t.Errorf("c1 after demotion: got %v, want Pawn", kind)
	}
	if b.ByArmyKind[Blue][Queen] != 0 {
		t.Error("queen mask not emptied")
	}

	if got := b.DemoteToPawn(Blue, Queen); got != NoSquare {
		t.Errorf("demoting an absent kind: got %v, want NoSquare", got)
	}
	if got := b.DemoteToPawn(Blue, Pawn); got != NoSquare {
		t.Errorf("demoting a pawn: got %v, want NoSquare", got)
	}
}

func TestKingSquare(t *testing.T) {
	b := New(testPlacements())

	if got := b.KingSquare(Yellow); got != H5 {
		t.Errorf("Yellow king: got %v, want h5", got)
	}
	b.ClearSquare(H5)
	if got := b.KingSquare(Yellow); got != NoSquare {
		t.Errorf("captured Yellow king: got %v, want NoSquare", got)
	}
}

func TestThroneOwner(t *testing.T) {
	b := New(testPlacements())

	if army, ok := b.ThroneOwner(A4); !ok || army != Black {
		t.Errorf("a4: got (%v, %v), want Black", army, ok)
	}
	if army, ok := b.ThroneOwner(E8); !ok || army != Red {
		t.Errorf("e8: got (%v, %v), want Red", army, ok)
	}
	if _, ok := b.ThroneOwner(C4); ok {
		t.Error("c4 is not a throne")
	}
}

func TestControllerAndFrozen(t *testing.T) {
	b := New(testPlacements())

	if b.Controller(Blue) != PlayerOne || b.Controller(Red) != PlayerTwo {
		t.Error("default controllers wrong")
	}
	b.SetController(Black, PlayerTwo)
	if b.Controller(Black) != PlayerTwo {
		t.Error("SetController did not stick")
	}

	if b.IsFrozen(Red) {
		t.Error("armies start unfrozen")
	}
	b.SetFrozen(Red, true)
	if !b.IsFrozen(Red) {
		t.Error("SetFrozen did not stick")
	}
}

func TestPieceCounts(t *testing.T) {
	b := New(testPlacements())

	counts := b.PieceCounts(Blue)
	if counts[King] != 1 || counts[Queen] != 1 || counts[Pawn] != 2 || counts[Rook] != 0 {
		t.Errorf("Blue counts wrong: %v", counts)
	}
}

func TestAsciiRowsCase(t *testing.T) {
	b := New(testPlacements())
	rows := b.AsciiRows()
	if len(rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(rows))
	}
	// Air prints uppercase, Earth lowercase; rank 8 comes first.
	if !strings.Contains(rows[0], "k") {
		t.Errorf("rank 8 row missing lowercase red king: %q", rows[0])
	}
	if !strings.Contains(rows[7], "K") {
		t.Errorf("rank 1 row missing uppercase blue king: %q", rows[7])
	}
}
