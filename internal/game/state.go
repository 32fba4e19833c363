package game

import "github.com/monistowl/enoch/internal/board"

// Config is the immutable per-game setup: the four armies, the order they
// move in (a permutation, not necessarily enumeration order) and the
// controlling side each army initially answers to.
type Config struct {
	Armies        [board.NumArmies]board.Army
	TurnOrder     [board.NumArmies]board.Army
	ControllerMap [board.NumArmies]board.PlayerID
}

// DefaultConfig returns the clockwise turn order with the Air armies under
// player one and the Earth armies under player two.
func DefaultConfig() Config {
	return Config{
		Armies:    board.Armies,
		TurnOrder: [board.NumArmies]board.Army{board.Blue, board.Red, board.Black, board.Yellow},
		ControllerMap: [board.NumArmies]board.PlayerID{
			board.Blue:   board.PlayerOne,
			board.Black:  board.PlayerOne,
			board.Red:    board.PlayerTwo,
			board.Yellow: board.PlayerTwo,
		},
	}
}

// State holds the transient per-army facts the state machine caches between
// moves: the turn pointer, frozen flags mirroring the board, king squares
// (NoSquare once captured) and stalemate flags. After any external mutation
// of the board the owner must call SyncWithBoard before trusting it.
type State struct {
	CurrentTurnIndex int
	Frozen           [board.NumArmies]bool
	KingSquares      [board.NumArmies]board.Square
	Stalemated       [board.NumArmies]bool
}

// NewState returns a state with no kings located and nothing frozen.
func NewState() State {
	s := State{}
	for _, army := range board.Armies {
		s.KingSquares[army] = board.NoSquare
	}
	return s
}

// SyncWithBoard rebuilds the cached king squares and frozen flags from the
// board. Stalemate flags are reset; the caller recomputes them when needed.
func (s *State) SyncWithBoard(b *board.Board) {
	for _, army := range board.Armies {
		s.Frozen[army] = b.IsFrozen(army)
		s.KingSquares[army] = b.KingSquare(army)
		s.Stalemated[army] = false
	}
}

// CurrentArmy returns the army the turn pointer rests on.
func (s *State) CurrentArmy(cfg *Config) board.Army {
	return cfg.TurnOrder[s.CurrentTurnIndex]
}

// AdvanceTurn moves the turn pointer one step through the turn order.
func (s *State) AdvanceTurn(cfg *Config) {
	s.CurrentTurnIndex = (s.CurrentTurnIndex + 1) % len(cfg.TurnOrder)
}

// KingSquare returns the cached king square for the army, NoSquare if the
// king is captured.
func (s *State) KingSquare(army board.Army) board.Square {
	return s.KingSquares[army]
}

// KingsAlive counts the team's armies whose king is still on the board.
func (s *State) KingsAlive(team board.Team) int {
	alive := 0
	for _, army := range team.Armies() {
		if s.KingSquares[army] != board.NoSquare {
			alive++
		}
	}
	return alive
}
