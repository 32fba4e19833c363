package game

import (
	"fmt"

	"github.com/monistowl/enoch/internal/arrays"
	"github.com/monistowl/enoch/internal/board"
)

// Game owns a board, a turn configuration and the transient state, and
// exposes the single mutating entry point ApplyMove plus the query surface.
// A Game is not safe for concurrent use; run concurrent games on
// independent instances.
type Game struct {
	Board  board.Board
	Config Config
	State  State
}

// New creates a game over the given board and configuration.
func New(b board.Board, cfg Config) *Game {
	g := &Game{Board: b, Config: cfg, State: NewState()}
	g.State.SyncWithBoard(&g.Board)
	return g
}

// NewDefault creates a game from the default starting array.
func NewDefault() *Game {
	return FromArraySpec(arrays.DefaultArray())
}

// FromArraySpec creates a game from a starting-array catalog entry. The
// spec's structure is trusted beyond bitmask consistency; domain validation
// of the catalog is the catalog's business.
func FromArraySpec(spec *arrays.ArraySpec) *Game {
	cfg := DefaultConfig()
	cfg.TurnOrder = spec.TurnOrder
	cfg.ControllerMap = spec.ControllerMap
	return New(spec.Board(), cfg)
}

// CurrentArmy returns the army whose turn it is.
func (g *Game) CurrentArmy() board.Army {
	return g.State.CurrentArmy(&g.Config)
}

// ArmyIsFrozen returns true if the army's king has been captured and the
// army not yet revived.
func (g *Game) ArmyIsFrozen(army board.Army) bool {
	return g.State.Frozen[army]
}

// ArmyInStalemate returns the army's cached stalemate flag.
func (g *Game) ArmyInStalemate(army board.Army) bool {
	return g.State.Stalemated[army]
}

// PieceCounts returns per-kind piece counts for the army.
func (g *Game) PieceCounts(army board.Army) [board.NumPieceKinds]int {
	return g.Board.PieceCounts(army)
}

// AsciiRows renders the current position, top rank first.
func (g *Game) AsciiRows() []string {
	return g.Board.AsciiRows()
}

// FreezeArmy marks the army frozen on both the board and the cached state.
func (g *Game) FreezeArmy(army board.Army) {
	g.Board.SetFrozen(army, true)
	g.State.Frozen[army] = true
}

// UnfreezeArmy clears the army's frozen flag on board and state.
func (g *Game) UnfreezeArmy(army board.Army) {
	g.Board.SetFrozen(army, false)
	g.State.Frozen[army] = false
}

// CaptureKing removes the army's king from the board and freezes the army.
// This is the administrative king-capture path; ApplyMove routes king
// captures through it as well.
func (g *Game) CaptureKing(army board.Army) {
	if sq := g.State.KingSquare(army); sq != board.NoSquare {
		g.Board.ClearSquare(sq)
	}
	g.FreezeArmy(army)
	g.State.KingSquares[army] = board.NoSquare
}

// seizeThroneAt transfers control of any ally whose throne pair contains
// the square to the moving army's controller, and revives the ally if it
// was frozen.
func (g *Game) seizeThroneAt(army board.Army, sq board.Square) {
	for _, ally := range army.Team().Armies() {
		if ally == army {
			continue
		}
		thrones := g.Board.Armies[ally].Thrones
		if thrones[0] != sq && thrones[1] != sq {
			continue
		}
		g.Board.SetController(ally, g.Board.Controller(army))
		g.UnfreezeArmy(ally)
	}
}

// WinningTeam returns the winner: a team with at least one living king
// whose opponent has none. The second return is false while the game is
// undecided.
func (g *Game) WinningTeam() (board.Team, bool) {
	airKings := g.State.KingsAlive(board.Air)
	earthKings := g.State.KingsAlive(board.Earth)
	if earthKings == 0 && airKings > 0 {
		return board.Air, true
	}
	if airKings == 0 && earthKings > 0 {
		return board.Earth, true
	}
	return board.Air, false
}

// DrawCondition returns true when neither team can win: both teams
// kingless, or one team holds both its kings while the other holds none.
func (g *Game) DrawCondition() bool {
	airKings := g.State.KingsAlive(board.Air)
	earthKings := g.State.KingsAlive(board.Earth)
	if airKings == 0 && earthKings == 0 {
		return true
	}
	if airKings == 0 && earthKings == 2 {
		return true
	}
	if earthKings == 0 && airKings == 2 {
		return true
	}
	return false
}

// IsPrivilegedPawn reports whether the army's pawns currently hold the
// privileged promotion right: the army has its king, at least one pawn, and
// at most one piece in total among queen, bishop, knight and rook. Two or
// more of those disqualify regardless of kind.
func (g *Game) IsPrivilegedPawn(army board.Army) bool {
	counts := g.Board.PieceCounts(army)
	if counts[board.King] == 0 || counts[board.Pawn] == 0 {
		return false
	}
	majors := counts[board.Queen] + counts[board.Bishop] + counts[board.Knight] + counts[board.Rook]
	return majors <= 1
}

// PromotionTargets lists the kinds the army's pawns may promote to right
// now: the full choice for a privileged pawn, queen only otherwise.
func (g *Game) PromotionTargets(army board.Army) []board.PieceKind {
	if g.IsPrivilegedPawn(army) {
		return []board.PieceKind{board.Queen, board.Rook, board.Bishop, board.Knight}
	}
	return []board.PieceKind{board.Queen}
}

// CanPromoteAt returns true if the square lies in the army's promotion zone.
func (g *Game) CanPromoteAt(army board.Army, sq board.Square) bool {
	return g.Board.PromotionZones[army].IsSet(sq)
}

// resolvePromotion validates a promotion request and returns the effective
// target kind. A non-privileged pawn promotes to queen regardless of the
// request; promotion to pawn or king is rejected.
func (g *Game) resolvePromotion(army board.Army, requested board.PieceKind) (board.PieceKind, error) {
	target := board.Queen
	if g.IsPrivilegedPawn(army) && requested != board.NoPieceKind {
		target = requested
	}
	if target == board.Pawn || target == board.King {
		return board.NoPieceKind, fmt.Errorf("%w: %s", ErrInvalidPromotion, requested)
	}
	return target, nil
}

// promotePawn converts a pawn in the promotion zone into the target kind.
// If the army already has a piece of that kind, the existing piece is
// demoted to a pawn first to free the slot.
func (g *Game) promotePawn(army board.Army, pawnSq board.Square, target board.PieceKind) {
	if g.Board.ByArmyKind[army][target] != 0 {
		g.Board.DemoteToPawn(army, target)
	}
	g.Board.RemovePiece(army, board.Pawn, pawnSq)
	g.Board.PlacePiece(army, target, pawnSq)
}

// updateStalemate recomputes the army's stalemate flag: not frozen, king
// not in check, and no legal move available.
func (g *Game) updateStalemate(army board.Army) {
	if g.State.Frozen[army] || g.KingInCheck(army) {
		g.State.Stalemated[army] = false
		return
	}
	g.State.Stalemated[army] = g.LegalMoves(army).Len() == 0
}

// UpdateAllStalemates recomputes stalemate flags for all four armies. A
// move by one army can stalemate another, so ApplyMove runs this after
// every accepted move.
func (g *Game) UpdateAllStalemates() {
	for _, army := range board.Armies {
		g.updateStalemate(army)
	}
}

// AdvanceTurn moves the turn pointer to the next army that is neither
// frozen nor stalemated, wrapping through the turn order at most once.
func (g *Game) AdvanceTurn() {
	for range g.Config.TurnOrder {
		g.State.AdvanceTurn(&g.Config)
		candidate := g.State.CurrentArmy(&g.Config)
		if !g.State.Frozen[candidate] && !g.State.Stalemated[candidate] {
			break
		}
	}
}

// restoreKingToThrone places the army's king back on its first throne
// square, clearing whatever occupies it, and unfreezes the army.
func (g *Game) restoreKingToThrone(army board.Army) {
	throne := g.Board.Armies[army].Thrones[0]
	g.Board.ClearSquare(throne)
	g.Board.PlacePiece(army, board.King, throne)
	g.State.KingSquares[army] = throne
	g.UnfreezeArmy(army)
}

// ExchangePrisoners simultaneously restores the kings of two kingless
// armies to their first throne squares and unfreezes both. If either army
// still has its king the exchange is refused and nothing changes.
func (g *Game) ExchangePrisoners(a, b board.Army) bool {
	if g.State.KingSquare(a) != board.NoSquare || g.State.KingSquare(b) != board.NoSquare {
		return false
	}
	g.restoreKingToThrone(a)
	g.restoreKingToThrone(b)
	g.State.Stalemated[a] = false
	g.State.Stalemated[b] = false
	return true
}

// ApplyMove validates and applies a move for the army. It is the single
// state-changing entry point: king capture, throne seizure, promotion,
// stalemate recomputation and turn advancement all happen here. A rejected
// move leaves the game completely unchanged.
func (g *Game) ApplyMove(army board.Army, from, to board.Square, promotion board.PieceKind) (string, error) {
	if g.ArmyIsFrozen(army) {
		return "", fmt.Errorf("%w: %s", ErrArmyFrozen, army)
	}
	if army != g.CurrentArmy() {
		return "", fmt.Errorf("%w: it is %s's turn", ErrWrongTurn, g.CurrentArmy())
	}

	pieceArmy, pieceKind, occupied := g.Board.PieceAt(from)
	if !occupied {
		return "", fmt.Errorf("%w: %s", ErrNoPieceAtSource, from)
	}
	if pieceArmy != army {
		return "", fmt.Errorf("%w: %s holds %s", ErrForeignPiece, from, pieceArmy)
	}

	if targetArmy, _, targetOccupied := g.Board.PieceAt(to); targetOccupied && targetArmy == army {
		return "", fmt.Errorf("%w: %s", ErrSelfCapture, to)
	}

	if g.MustMoveKing(army) && pieceKind != board.King {
		return "", fmt.Errorf("%w", ErrKingMustMove)
	}

	if !g.LegalMoves(army).Contains(from, to) {
		return "", fmt.Errorf("%w: %s to %s", ErrIllegalDestination, from, to)
	}

	// Validate the promotion before any mutation so a rejected move never
	// reaches the commit step.
	promotes := pieceKind == board.Pawn && g.CanPromoteAt(army, to)
	var promoTarget board.PieceKind
	if promotes {
		var err error
		promoTarget, err = g.resolvePromotion(army, promotion)
		if err != nil {
			return "", err
		}
	}

	// Commit.
	if targetArmy, targetKind, targetOccupied := g.Board.PieceAt(to); targetOccupied {
		if targetKind == board.King {
			g.CaptureKing(targetArmy)
		} else {
			g.Board.RemovePiece(targetArmy, targetKind, to)
		}
	}

	g.Board.MovePiece(army, pieceKind, from, to)
	if pieceKind == board.King {
		g.State.KingSquares[army] = to
		g.seizeThroneAt(army, to)
	}

	if promotes {
		g.promotePawn(army, to, promoTarget)
	}

	g.State.SyncWithBoard(&g.Board)
	g.UpdateAllStalemates()
	g.AdvanceTurn()

	return fmt.Sprintf("%s moved %s to %s", army, pieceKind, to), nil
}
