package board

// Direction indexes the eight ray directions, clockwise from north.
type Direction int

const (
	DirUp Direction = iota
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

// RookDirections and BishopDirections select the ray sets each slider uses.
var (
	RookDirections   = [4]Direction{DirUp, DirRight, DirDown, DirLeft}
	BishopDirections = [4]Direction{DirUpRight, DirDownRight, DirDownLeft, DirUpLeft}
)

var directionVectors = [8][2]int{
	{0, 1},   // up
	{1, 1},   // up-right
	{1, 0},   // right
	{1, -1},  // down-right
	{0, -1},  // down
	{-1, -1}, // down-left
	{-1, 0},  // left
	{-1, 1},  // up-left
}

// Pre-computed geometry tables, filled once at package init and never
// mutated afterward. Safe to share across any number of Game instances.
var (
	kingSteps   [64]Bitboard
	knightSteps [64]Bitboard
	queenLeaps  [64]Bitboard
	rays        [64][8]Bitboard

	pawnPushes  [NumArmies][64]Bitboard
	pawnAttacks [NumArmies][64]Bitboard
)

func init() {
	initKingSteps()
	initKnightSteps()
	initQueenLeaps()
	initRays()
	initPawnGeometry()
}

func initKingSteps() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		steps := bb.North() | bb.South()
		steps |= bb.East() | bb.West()
		steps |= bb.NorthEast() | bb.NorthWest()
		steps |= bb.SouthEast() | bb.SouthWest()

		kingSteps[sq] = steps
	}
}

func initKnightSteps() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// Knight moves: 2+1 or 1+2 in any direction
		steps := Empty

		// Up 2, left/right 1
		steps |= (bb << 17) & NotFileA // NNE
		steps |= (bb << 15) & NotFileH // NNW
		steps |= (bb >> 17) & NotFileH // SSW
		steps |= (bb >> 15) & NotFileA // SSE

		// Up 1, left/right 2
		steps |= (bb << 10) & NotFileAB // ENE
		steps |= (bb << 6) & NotFileGH  // WNW
		steps |= (bb >> 10) & NotFileGH // WSW
		steps |= (bb >> 6) & NotFileAB  // ESE

		knightSteps[sq] = steps
	}
}

func initQueenLeaps() {
	// The queen leaps exactly two squares orthogonally or diagonally, up to
	// eight fixed destinations per origin. It does not slide.
	leapVectors := [8][2]int{
		{0, 2}, {2, 2}, {2, 0}, {2, -2}, {0, -2}, {-2, -2}, {-2, 0}, {-2, 2},
	}

	for sq := A1; sq <= H8; sq++ {
		file, rank := sq.File(), sq.Rank()
		leaps := Empty
		for _, v := range leapVectors {
			f, r := file+v[0], rank+v[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				leaps = leaps.Set(NewSquare(f, r))
			}
		}
		queenLeaps[sq] = leaps
	}
}

func initRays() {
	for sq := A1; sq <= H8; sq++ {
		for dir := DirUp; dir <= DirUpLeft; dir++ {
			v := directionVectors[dir]
			ray := Empty
			f, r := sq.File()+v[0], sq.Rank()+v[1]
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				ray = ray.Set(NewSquare(f, r))
				f += v[0]
				r += v[1]
			}
			rays[sq][dir] = ray
		}
	}
}

func initPawnGeometry() {
	// Forward is army-specific: the four armies occupy the four board edges.
	// Blue advances north, Red south, Black east, Yellow west. Attacks are
	// the two forward diagonals.
	forward := [NumArmies][2]int{
		Blue:   {0, 1},
		Black:  {1, 0},
		Red:    {0, -1},
		Yellow: {-1, 0},
	}
	diagonals := [NumArmies][2][2]int{
		Blue:   {{-1, 1}, {1, 1}},
		Black:  {{1, 1}, {1, -1}},
		Red:    {{-1, -1}, {1, -1}},
		Yellow: {{-1, 1}, {-1, -1}},
	}

	for _, army := range Armies {
		for sq := A1; sq <= H8; sq++ {
			file, rank := sq.File(), sq.Rank()

			f, r := file+forward[army][0], rank+forward[army][1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				pawnPushes[army][sq] = SquareBB(NewSquare(f, r))
			}

			attacks := Empty
			for _, d := range diagonals[army] {
				f, r := file+d[0], rank+d[1]
				if f >= 0 && f < 8 && r >= 0 && r < 8 {
					attacks = attacks.Set(NewSquare(f, r))
				}
			}
			pawnAttacks[army][sq] = attacks
		}
	}
}

// KingSteps returns the king step bitboard for a square.
func KingSteps(sq Square) Bitboard {
	return kingSteps[sq]
}

// KnightSteps returns the knight step bitboard for a square.
func KnightSteps(sq Square) Bitboard {
	return knightSteps[sq]
}

// QueenLeaps returns the two-square leap destinations for a square.
func QueenLeaps(sq Square) Bitboard {
	return queenLeaps[sq]
}

// Ray returns the ray bitboard from a square in the given direction,
// excluding the origin square.
func Ray(sq Square, dir Direction) Bitboard {
	return rays[sq][dir]
}

// PawnPush returns the quiet forward target for a pawn of the army.
func PawnPush(army Army, sq Square) Bitboard {
	return pawnPushes[army][sq]
}

// PawnAttacks returns the forward-diagonal attack squares for a pawn of the army.
func PawnAttacks(army Army, sq Square) Bitboard {
	return pawnAttacks[army][sq]
}

// increasing reports whether squares along the direction grow in index, which
// decides whether the nearest blocker is found with a trailing-zero or a
// leading-zero scan.
func increasing(dir Direction) bool {
	switch dir {
	case DirUp, DirUpRight, DirRight, DirUpLeft:
		return true
	default:
		return false
	}
}

// rayUntilBlocker cuts the ray at the first occupied square in travel order.
// It returns the reachable empty squares and the blocker square (NoSquare if
// the ray is open).
func rayUntilBlocker(ray, occupied Bitboard, dir Direction) (Bitboard, Square) {
	blockers := ray & occupied
	if blockers == 0 {
		return ray, NoSquare
	}

	var blocker Square
	var open Bitboard
	if increasing(dir) {
		blocker = blockers.LSB()
		open = ray & (SquareBB(blocker) - 1)
	} else {
		blocker = blockers.MSB()
		open = ray &^ (SquareBB(blocker)<<1 - 1)
	}
	return open, blocker
}
