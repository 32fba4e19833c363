package game

import "github.com/monistowl/enoch/internal/board"

// Legal move filtering. Attack maps are recomputed per query rather than
// incrementally maintained; candidate moves are materialized on a
// disposable copy of board and state, then re-tested for king safety.

// attackedByArmy reports whether the army attacks the square on the given
// board. A frozen army attacks nothing.
func attackedByArmy(b *board.Board, s *State, sq board.Square, army board.Army) bool {
	if s.Frozen[army] {
		return false
	}
	mask := board.SquareBB(sq)

	enemies := b.AllOccupied &^ b.OccupiedByArmy[army]
	_, pawnAttacks := board.PawnMoves(b, army)
	if pawnAttacks&enemies&mask != 0 {
		return true
	}
	if board.KingMoves(b, army)&mask != 0 {
		return true
	}
	if board.KnightMoves(b, army)&mask != 0 {
		return true
	}
	if board.BishopMoves(b, army)&mask != 0 {
		return true
	}
	if board.RookMoves(b, army)&mask != 0 {
		return true
	}
	return board.QueenMoves(b, army)&mask != 0
}

// attackedByTeam reports whether either of the team's armies attacks the square.
func attackedByTeam(b *board.Board, s *State, sq board.Square, team board.Team) bool {
	for _, army := range team.Armies() {
		if attackedByArmy(b, s, sq, army) {
			return true
		}
	}
	return false
}

// kingInCheckOn reports whether the army's king is attacked by the
// opposing team on the given board. A captured king is never in check.
func kingInCheckOn(b *board.Board, s *State, army board.Army) bool {
	sq := s.KingSquares[army]
	if sq == board.NoSquare {
		return false
	}
	return attackedByTeam(b, s, sq, army.Team().Opponent())
}

// IsSquareAttackedByArmy reports whether the army attacks the square in the
// current position.
func (g *Game) IsSquareAttackedByArmy(sq board.Square, army board.Army) bool {
	return attackedByArmy(&g.Board, &g.State, sq, army)
}

// IsSquareAttackedByTeam reports whether the team attacks the square in the
// current position.
func (g *Game) IsSquareAttackedByTeam(sq board.Square, team board.Team) bool {
	return attackedByTeam(&g.Board, &g.State, sq, team)
}

// KingInCheck reports whether the army's king is currently attacked by the
// opposing team.
func (g *Game) KingInCheck(army board.Army) bool {
	return kingInCheckOn(&g.Board, &g.State, army)
}

// leavesKingSafe materializes the candidate move on a disposable copy of
// board and state and reports whether the mover's king survives unattacked.
// The copy applies capture removal, the relocation, and the king-square
// cache update; it never escapes this call.
func (g *Game) leavesKingSafe(army board.Army, kind board.PieceKind, from, to board.Square) bool {
	b := g.Board
	s := g.State

	if targetArmy, targetKind, occupied := b.PieceAt(to); occupied {
		if targetKind == board.King {
			// Capturing a king freezes its army even in the hypothetical,
			// otherwise its remaining pieces would still count as attackers.
			b.ClearSquare(to)
			b.SetFrozen(targetArmy, true)
			s.Frozen[targetArmy] = true
			s.KingSquares[targetArmy] = board.NoSquare
		} else {
			b.RemovePiece(targetArmy, targetKind, to)
		}
	}

	b.MovePiece(army, kind, from, to)
	if kind == board.King {
		s.KingSquares[army] = to
	}

	return !kingInCheckOn(&b, &s, army)
}

// appendLegalMoves adds every self-check-safe move for the army's pieces of
// one kind to the list.
func (g *Game) appendLegalMoves(ml *MoveList, army board.Army, kind board.PieceKind) {
	pieces := g.Board.ByArmyKind[army][kind]
	for pieces != 0 {
		from := pieces.PopLSB()
		dests := board.PieceMovesFrom(&g.Board, army, kind, from)
		for dests != 0 {
			to := dests.PopLSB()
			if g.leavesKingSafe(army, kind, from, to) {
				ml.Add(NewMove(from, to))
			}
		}
	}
}

// legalKingMoves returns the army's self-check-safe king moves.
func (g *Game) legalKingMoves(army board.Army) *MoveList {
	ml := NewMoveList()
	if g.State.Frozen[army] {
		return ml
	}
	g.appendLegalMoves(ml, army, board.King)
	return ml
}

// MustMoveKing reports whether the forced-king rule is in effect for the
// army: its king is in check and has at least one legal move. While it
// holds, only king moves are accepted.
func (g *Game) MustMoveKing(army board.Army) bool {
	return g.KingInCheck(army) && g.legalKingMoves(army).Len() > 0
}

// LegalMoves returns the army's legal moves. A frozen army has none. When
// the king is in check and can flee, only king moves are surfaced; other
// moves that would resolve the check are suppressed and reappear only when
// the king has no move of its own.
func (g *Game) LegalMoves(army board.Army) *MoveList {
	kingMoves := g.legalKingMoves(army)
	if g.State.Frozen[army] {
		return kingMoves // empty
	}
	if g.KingInCheck(army) && kingMoves.Len() > 0 {
		return kingMoves
	}

	ml := NewMoveList()
	for i := 0; i < kingMoves.Len(); i++ {
		ml.Add(kingMoves.Get(i))
	}
	for _, kind := range board.PieceKinds {
		if kind == board.King {
			continue
		}
		g.appendLegalMoves(ml, army, kind)
	}
	return ml
}
