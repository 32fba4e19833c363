package game

import (
	"fmt"

	"github.com/monistowl/enoch/internal/board"
)

// Move encodes a move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion kind (0=Queen, 1=Bishop, 2=Knight, 3=Rook)
// bit 14:     promotion flag
type Move uint16

const flagPromotion uint16 = 1 << 14

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a normal move.
func NewMove(from, to board.Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a move that carries an explicit promotion target.
// The target must be Queen, Bishop, Knight or Rook.
func NewPromotion(from, to board.Square, target board.PieceKind) Move {
	idx := target - board.Queen
	return Move(from) | Move(to)<<6 | Move(idx)<<12 | Move(flagPromotion)
}

// From returns the origin square.
func (m Move) From() board.Square {
	return board.Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() board.Square {
	return board.Square((m >> 6) & 0x3F)
}

// IsPromotion returns true if the move carries a promotion target.
func (m Move) IsPromotion() bool {
	return uint16(m)&flagPromotion != 0
}

// Promotion returns the promotion target, or NoPieceKind when the move
// carries none.
func (m Move) Promotion() board.PieceKind {
	if !m.IsPromotion() {
		return board.NoPieceKind
	}
	return board.PieceKind((m>>12)&3) + board.Queen
}

// String returns the move in coordinate form (e.g. "e2e3", "g7h7q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += fmt.Sprintf("%c", m.Promotion().Char()+'a'-'A')
	}
	return s
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list holds a move with the same origin and
// destination, ignoring any promotion payload.
func (ml *MoveList) Contains(from, to board.Square) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i].From() == from && ml.moves[i].To() == to {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
