package board

import "testing"

func bbOf(squares ...Square) Bitboard {
	mask := Empty
	for _, sq := range squares {
		mask = mask.Set(sq)
	}
	return mask
}

func TestQueenLeapsCenter(t *testing.T) {
	want := bbOf(E6, G6, G4, G2, E2, C2, C4, C6)
	if got := QueenLeaps(E4); got != want {
		t.Errorf("QueenLeaps(e4):\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestQueenLeapsEdge(t *testing.T) {
	// Off-board leaps simply vanish; an h-file queen keeps five targets.
	want := bbOf(H6, F6, F4, F2, H2)
	if got := QueenLeaps(H4); got != want {
		t.Errorf("QueenLeaps(h4):\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestKingAndKnightStepsCorner(t *testing.T) {
	if got, want := KingSteps(A1), bbOf(A2, B1, B2); got != want {
		t.Errorf("KingSteps(a1):\ngot:\n%v\nwant:\n%v", got, want)
	}
	if got, want := KnightSteps(A1), bbOf(B3, C2); got != want {
		t.Errorf("KnightSteps(a1):\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestPawnDirectionsPerArmy(t *testing.T) {
	cases := []struct {
		army    Army
		push    Square
		attacks Bitboard
	}{
		{Blue, E5, bbOf(D5, F5)},
		{Red, E3, bbOf(D3, F3)},
		{Black, F4, bbOf(F5, F3)},
		{Yellow, D4, bbOf(D5, D3)},
	}
	for _, tc := range cases {
		t.Run(tc.army.String(), func(t *testing.T) {
			if got, want := PawnPush(tc.army, E4), SquareBB(tc.push); got != want {
				t.Errorf("push from e4: got %v, want %v", got.Squares(), tc.push)
			}
			if got := PawnAttacks(tc.army, E4); got != tc.attacks {
				t.Errorf("attacks from e4: got %v, want %v", got.Squares(), tc.attacks.Squares())
			}
		})
	}
}

func TestPawnPushOffBoard(t *testing.T) {
	// A pawn standing on its promotion edge has no forward square left.
	if got := PawnPush(Blue, E8); got != Empty {
		t.Errorf("Blue push from e8: got %v, want empty", got.Squares())
	}
	if got := PawnPush(Yellow, A4); got != Empty {
		t.Errorf("Yellow push from a4: got %v, want empty", got.Squares())
	}
}

func TestRays(t *testing.T) {
	if got, want := Ray(A1, DirUp), FileA.Clear(A1); got != want {
		t.Errorf("Ray(a1, up):\ngot:\n%v\nwant:\n%v", got, want)
	}
	if got, want := Ray(E4, DirUpRight), bbOf(F5, G6, H7); got != want {
		t.Errorf("Ray(e4, up-right):\ngot:\n%v\nwant:\n%v", got, want)
	}
	if got := Ray(H1, DirRight); got != Empty {
		t.Errorf("Ray(h1, right): got %v, want empty", got.Squares())
	}
}

func TestDiagonalSystemsPartitionBoard(t *testing.T) {
	if AriesMask|CancerMask != Universe {
		t.Error("the two systems do not cover the board")
	}
	if AriesMask&CancerMask != Empty {
		t.Error("the two systems overlap")
	}
	if got := DiagonalSystemOf(B1); got != Aries {
		t.Errorf("b1: got %v, want Aries", got)
	}
	if got := DiagonalSystemOf(A1); got != Cancer {
		t.Errorf("a1: got %v, want Cancer", got)
	}
	// Diagonal neighbors stay in the same system.
	for _, sq := range []Square{C3, D6, F2, G7} {
		next := NewSquare(sq.File()+1, sq.Rank()+1)
		if DiagonalSystemOf(sq) != DiagonalSystemOf(next) {
			t.Errorf("diagonal step %v -> %v changes system", sq, next)
		}
	}
}

func TestRayUntilBlocker(t *testing.T) {
	t.Run("increasing direction", func(t *testing.T) {
		occupied := bbOf(D6)
		open, blocker := rayUntilBlocker(Ray(D4, DirUp), occupied, DirUp)
		if blocker != D6 {
			t.Errorf("blocker: got %v, want d6", blocker)
		}
		if want := bbOf(D5); open != want {
			t.Errorf("open: got %v, want %v", open.Squares(), want.Squares())
		}
	})
	t.Run("decreasing direction", func(t *testing.T) {
		occupied := bbOf(D2)
		open, blocker := rayUntilBlocker(Ray(D5, DirDown), occupied, DirDown)
		if blocker != D2 {
			t.Errorf("blocker: got %v, want d2", blocker)
		}
		if want := bbOf(D4, D3); open != want {
			t.Errorf("open: got %v, want %v", open.Squares(), want.Squares())
		}
	})
	t.Run("open ray", func(t *testing.T) {
		open, blocker := rayUntilBlocker(Ray(D4, DirLeft), Empty, DirLeft)
		if blocker != NoSquare {
			t.Errorf("blocker: got %v, want none", blocker)
		}
		if want := bbOf(C4, B4, A4); open != want {
			t.Errorf("open: got %v, want %v", open.Squares(), want.Squares())
		}
	})
}
