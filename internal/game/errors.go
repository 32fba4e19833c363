// Package game implements the four-army game state machine: turns,
// freezing, throne control, promotion, stalemate and victory conditions.
package game

import "errors"

// Sentinel errors for move rejection. Every rejection leaves the game
// completely unchanged; callers branch with errors.Is.
var (
	ErrWrongTurn          = errors.New("not this army's turn")
	ErrArmyFrozen         = errors.New("army is frozen")
	ErrNoPieceAtSource    = errors.New("no piece on source square")
	ErrForeignPiece       = errors.New("source square does not belong to the army")
	ErrIllegalDestination = errors.New("destination is not a legal move")
	ErrSelfCapture        = errors.New("cannot capture own piece")
	ErrKingMustMove       = errors.New("king must move while in check")
	ErrInvalidPromotion   = errors.New("invalid promotion target")
)
