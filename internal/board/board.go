package board

import "fmt"

// ArmyStatus holds the per-army metadata that travels with the position:
// the two throne squares, the controlling player, and the frozen flag set
// when the army's king has been captured.
type ArmyStatus struct {
	Thrones    [2]Square
	Controller PlayerID
	Frozen     bool
}

// Placement describes a set of same-kind pieces for one army.
type Placement struct {
	Army Army
	Kind PieceKind
	Mask Bitboard
}

// Board is the canonical position. ByArmyKind is the source of truth; the
// occupancy fields are caches and must be refreshed after any direct
// mutation of ByArmyKind (the mutating methods do this themselves).
type Board struct {
	ByArmyKind [NumArmies][NumPieceKinds]Bitboard

	// Derived occupancy caches
	OccupiedByArmy [NumArmies]Bitboard
	OccupiedByTeam [NumTeams]Bitboard
	AllOccupied    Bitboard
	Free           Bitboard

	Armies         [NumArmies]ArmyStatus
	PromotionZones [NumArmies]Bitboard
}

// DefaultThrones are the home square pairs of the four armies, one pair per
// board edge.
var DefaultThrones = [NumArmies][2]Square{
	Blue:   {D1, E1},
	Black:  {A4, A5},
	Red:    {D8, E8},
	Yellow: {H4, H5},
}

// DefaultPromotionZones are the per-army promotion edges, rotated by
// movement direction.
var DefaultPromotionZones = [NumArmies]Bitboard{
	Blue:   Rank8, // Blue marches north
	Black:  FileH, // Black moves east
	Red:    Rank1, // Red marches south
	Yellow: FileA, // Yellow moves west
}

// DefaultArmyStatuses pairs each army with its default thrones and the
// default controller split (Air to player one, Earth to player two).
func DefaultArmyStatuses() [NumArmies]ArmyStatus {
	var statuses [NumArmies]ArmyStatus
	for _, army := range Armies {
		controller := PlayerOne
		if army.Team() == Earth {
			controller = PlayerTwo
		}
		statuses[army] = ArmyStatus{Thrones: DefaultThrones[army], Controller: controller}
	}
	return statuses
}

// New creates a board from initial placements with default army metadata.
func New(placements []Placement) Board {
	return WithStatus(placements, DefaultArmyStatuses(), DefaultPromotionZones)
}

// WithStatus creates a board from placements, army metadata and promotion
// zones. Placements of the same (army, kind) are ORed together.
func WithStatus(placements []Placement, statuses [NumArmies]ArmyStatus, zones [NumArmies]Bitboard) Board {
	b := Board{Armies: statuses, PromotionZones: zones}
	for _, p := range placements {
		b.ByArmyKind[p.Army][p.Kind] |= p.Mask
	}
	b.RefreshOccupancy()
	return b
}

// RefreshOccupancy recomputes every derived occupancy field from
// ByArmyKind. Must run after any direct mask mutation before derived
// occupancy is read.
func (b *Board) RefreshOccupancy() {
	b.AllOccupied = 0
	b.OccupiedByTeam = [NumTeams]Bitboard{}
	for _, army := range Armies {
		occ := Empty
		for _, kind := range PieceKinds {
			occ |= b.ByArmyKind[army][kind]
		}
		b.OccupiedByArmy[army] = occ
		b.OccupiedByTeam[army.Team()] |= occ
		b.AllOccupied |= occ
	}
	b.Free = ^b.AllOccupied
}

// PieceAt returns the occupant of the square. Masks are disjoint, so the
// first match is the only match.
func (b *Board) PieceAt(sq Square) (Army, PieceKind, bool) {
	mask := SquareBB(sq)
	for _, army := range Armies {
		if b.OccupiedByArmy[army]&mask == 0 {
			continue
		}
		for _, kind := range PieceKinds {
			if b.ByArmyKind[army][kind]&mask != 0 {
				return army, kind, true
			}
		}
	}
	return NoArmy, NoPieceKind, false
}

// IsEmpty returns true if the square has no occupant.
func (b *Board) IsEmpty(sq Square) bool {
	return b.AllOccupied&SquareBB(sq) == 0
}

// PlacePiece puts a piece of the army and kind on the square.
func (b *Board) PlacePiece(army Army, kind PieceKind, sq Square) {
	b.ByArmyKind[army][kind] |= SquareBB(sq)
	b.RefreshOccupancy()
}

// RemovePiece removes a piece of the army and kind from the square.
func (b *Board) RemovePiece(army Army, kind PieceKind, sq Square) {
	b.ByArmyKind[army][kind] &^= SquareBB(sq)
	b.RefreshOccupancy()
}

// MovePiece relocates a piece of the army and kind.
func (b *Board) MovePiece(army Army, kind PieceKind, from, to Square) {
	b.ByArmyKind[army][kind] &^= SquareBB(from)
	b.ByArmyKind[army][kind] |= SquareBB(to)
	b.RefreshOccupancy()
}

// ClearSquare removes whatever occupies the square, regardless of owner.
func (b *Board) ClearSquare(sq Square) {
	mask := SquareBB(sq)
	for _, army := range Armies {
		for _, kind := range PieceKinds {
			b.ByArmyKind[army][kind] &^= mask
		}
	}
	b.RefreshOccupancy()
}

// DemoteToPawn converts the first piece of the given kind for the army into
// a pawn in place, freeing the kind's slot for a promotion. Returns the
// affected square, or NoSquare if the kind is absent or is already Pawn.
func (b *Board) DemoteToPawn(army Army, kind PieceKind) Square {
	if kind == Pawn {
		return NoSquare
	}
	mask := b.ByArmyKind[army][kind]
	if mask == 0 {
		return NoSquare
	}
	sq := mask.LSB()
	bit := SquareBB(sq)
	b.ByArmyKind[army][kind] &^= bit
	b.ByArmyKind[army][Pawn] |= bit
	b.RefreshOccupancy()
	return sq
}

// KingSquare returns the army's king square, or NoSquare if captured.
func (b *Board) KingSquare(army Army) Square {
	mask := b.ByArmyKind[army][King]
	if mask == 0 {
		return NoSquare
	}
	return mask.LSB()
}

// ThroneOwner returns the army whose throne pair contains the square.
func (b *Board) ThroneOwner(sq Square) (Army, bool) {
	for _, army := range Armies {
		thrones := b.Armies[army].Thrones
		if thrones[0] == sq || thrones[1] == sq {
			return army, true
		}
	}
	return NoArmy, false
}

// SetFrozen sets the army's frozen flag.
func (b *Board) SetFrozen(army Army, frozen bool) {
	b.Armies[army].Frozen = frozen
}

// IsFrozen returns the army's frozen flag.
func (b *Board) IsFrozen(army Army) bool {
	return b.Armies[army].Frozen
}

// SetController reassigns the army to a controlling player.
func (b *Board) SetController(army Army, controller PlayerID) {
	b.Armies[army].Controller = controller
}

// Controller returns the player currently commanding the army.
func (b *Board) Controller(army Army) PlayerID {
	return b.Armies[army].Controller
}

// PieceCounts returns per-kind piece counts for the army.
func (b *Board) PieceCounts(army Army) [NumPieceKinds]int {
	var counts [NumPieceKinds]int
	for _, kind := range PieceKinds {
		counts[kind] = b.ByArmyKind[army][kind].PopCount()
	}
	return counts
}

// pieceChar renders a piece for the ASCII board. Air armies print in
// uppercase, Earth armies in lowercase.
func pieceChar(army Army, kind PieceKind) byte {
	c := kind.Char()
	if army.Team() == Earth {
		c += 'a' - 'A'
	}
	return c
}

// AsciiRows renders the position as one string per rank, top rank first.
func (b *Board) AsciiRows() []string {
	rows := make([]string, 0, 8)
	for rank := 7; rank >= 0; rank-- {
		line := fmt.Sprintf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			ch := byte('.')
			if army, kind, ok := b.PieceAt(sq); ok {
				ch = pieceChar(army, kind)
			}
			line += string(ch) + " "
		}
		rows = append(rows, line[:len(line)-1])
	}
	return rows
}
