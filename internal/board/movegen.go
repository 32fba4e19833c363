package board

// Pseudo-legal move generation. Destination masks respect own-army blocking
// and the variant's capture restrictions but do not account for exposing
// the mover's king; the game layer filters for that.

// KingMovesFrom returns pseudo-legal king destinations from a square.
func KingMovesFrom(b *Board, army Army, from Square) Bitboard {
	return KingSteps(from) &^ b.OccupiedByArmy[army]
}

// KnightMovesFrom returns pseudo-legal knight destinations from a square.
func KnightMovesFrom(b *Board, army Army, from Square) Bitboard {
	return KnightSteps(from) &^ b.OccupiedByArmy[army]
}

// RookMovesFrom returns pseudo-legal rook destinations from a square. Each
// ray is cut at the nearest blocker; the blocker square is included only
// when it holds an enemy piece.
func RookMovesFrom(b *Board, army Army, from Square) Bitboard {
	moves := Empty
	for _, dir := range RookDirections {
		open, blocker := rayUntilBlocker(Ray(from, dir), b.AllOccupied, dir)
		moves |= open
		if blocker != NoSquare && !b.OccupiedByArmy[army].IsSet(blocker) {
			moves = moves.Set(blocker)
		}
	}
	return moves
}

// BishopMovesFrom returns pseudo-legal bishop destinations from a square.
// A bishop slides diagonally and stops at the first piece on each ray. It
// can never capture an enemy bishop, and it captures an enemy queen only
// when the queen shares its diagonal system; every other enemy piece is
// captured normally.
func BishopMovesFrom(b *Board, army Army, from Square) Bitboard {
	system := DiagonalSystemOf(from)
	moves := Empty
	for _, dir := range BishopDirections {
		open, blocker := rayUntilBlocker(Ray(from, dir), b.AllOccupied, dir)
		moves |= open
		if blocker == NoSquare {
			continue
		}
		targetArmy, targetKind, _ := b.PieceAt(blocker)
		if targetArmy == army {
			continue
		}
		switch targetKind {
		case Bishop:
			// ray stops without the capture
		case Queen:
			if DiagonalSystemOf(blocker) == system {
				moves = moves.Set(blocker)
			}
		default:
			moves = moves.Set(blocker)
		}
	}
	return moves
}

// QueenMovesFrom returns pseudo-legal queen destinations from a square. The
// queen leaps exactly two squares and is never blocked by intervening
// pieces. It cannot capture an enemy queen, and it captures an enemy bishop
// only when the bishop shares its diagonal system.
func QueenMovesFrom(b *Board, army Army, from Square) Bitboard {
	system := DiagonalSystemOf(from)
	moves := Empty

	targets := QueenLeaps(from) &^ b.OccupiedByArmy[army]
	for targets != 0 {
		dest := targets.PopLSB()
		targetArmy, targetKind, occupied := b.PieceAt(dest)
		if !occupied {
			moves = moves.Set(dest)
			continue
		}
		if targetArmy == army {
			continue
		}
		switch targetKind {
		case Queen:
			// queens never capture queens
		case Bishop:
			if DiagonalSystemOf(dest) == system {
				moves = moves.Set(dest)
			}
		default:
			moves = moves.Set(dest)
		}
	}
	return moves
}

// PawnMovesFrom returns the pseudo-legal quiet and attack masks for a pawn.
// The quiet move is one square forward into an empty square; the attack
// squares are the two forward diagonals, valid as moves only when they hold
// an enemy piece (the attack mask here excludes own pieces but not empty
// squares, so check detection can reuse it).
func PawnMovesFrom(b *Board, army Army, from Square) (quiet, attacks Bitboard) {
	quiet = PawnPush(army, from) & b.Free
	attacks = PawnAttacks(army, from) &^ b.OccupiedByArmy[army]
	return quiet, attacks
}

// forEachOfKind iterates the army's pieces of one kind.
func forEachOfKind(b *Board, army Army, kind PieceKind, f func(Square)) {
	pieces := b.ByArmyKind[army][kind]
	for pieces != 0 {
		f(pieces.PopLSB())
	}
}

// KingMoves returns the union of pseudo-legal king destinations for the army.
func KingMoves(b *Board, army Army) Bitboard {
	moves := Empty
	forEachOfKind(b, army, King, func(sq Square) {
		moves |= KingMovesFrom(b, army, sq)
	})
	return moves
}

// KnightMoves returns the union of pseudo-legal knight destinations.
func KnightMoves(b *Board, army Army) Bitboard {
	moves := Empty
	forEachOfKind(b, army, Knight, func(sq Square) {
		moves |= KnightMovesFrom(b, army, sq)
	})
	return moves
}

// RookMoves returns the union of pseudo-legal rook destinations.
func RookMoves(b *Board, army Army) Bitboard {
	moves := Empty
	forEachOfKind(b, army, Rook, func(sq Square) {
		moves |= RookMovesFrom(b, army, sq)
	})
	return moves
}

// BishopMoves returns the union of pseudo-legal bishop destinations.
func BishopMoves(b *Board, army Army) Bitboard {
	moves := Empty
	forEachOfKind(b, army, Bishop, func(sq Square) {
		moves |= BishopMovesFrom(b, army, sq)
	})
	return moves
}

// QueenMoves returns the union of pseudo-legal queen leap destinations.
func QueenMoves(b *Board, army Army) Bitboard {
	moves := Empty
	forEachOfKind(b, army, Queen, func(sq Square) {
		moves |= QueenMovesFrom(b, army, sq)
	})
	return moves
}

// PawnMoves returns the union of quiet and attack masks for the army's pawns.
func PawnMoves(b *Board, army Army) (quiet, attacks Bitboard) {
	forEachOfKind(b, army, Pawn, func(sq Square) {
		q, a := PawnMovesFrom(b, army, sq)
		quiet |= q
		attacks |= a
	})
	return quiet, attacks
}

// PieceMovesFrom dispatches to the per-kind generator for a single piece.
// For pawns the attack mask is restricted to enemy-occupied squares, so the
// result is a plain destination mask for every kind.
func PieceMovesFrom(b *Board, army Army, kind PieceKind, from Square) Bitboard {
	switch kind {
	case King:
		return KingMovesFrom(b, army, from)
	case Queen:
		return QueenMovesFrom(b, army, from)
	case Bishop:
		return BishopMovesFrom(b, army, from)
	case Knight:
		return KnightMovesFrom(b, army, from)
	case Rook:
		return RookMovesFrom(b, army, from)
	case Pawn:
		quiet, attacks := PawnMovesFrom(b, army, from)
		enemies := b.AllOccupied &^ b.OccupiedByArmy[army]
		return quiet | (attacks & enemies)
	default:
		return Empty
	}
}
