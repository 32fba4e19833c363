// Package arrays is the declarative starting-position catalog. Each entry
// describes one tablet: turn order, controller assignment, throne squares,
// promotion zones and the initial piece placements per army. The catalog is
// data consumed by the game core, never produced by it.
package arrays

import (
	"strings"

	"github.com/monistowl/enoch/internal/board"
)

// ArraySpec is one catalog entry.
type ArraySpec struct {
	Name        string
	Description string

	TurnOrder      [board.NumArmies]board.Army
	ControllerMap  [board.NumArmies]board.PlayerID
	ThroneSquares  [board.NumArmies][2]board.Square
	PromotionZones [board.NumArmies]board.Bitboard
	Placements     []board.Placement
}

// Board builds a board from the spec's placements and metadata.
func (s *ArraySpec) Board() board.Board {
	return board.WithStatus(s.Placements, s.ArmyStatuses(), s.PromotionZones)
}

// ArmyStatuses pairs each army with its throne squares and initial controller.
func (s *ArraySpec) ArmyStatuses() [board.NumArmies]board.ArmyStatus {
	var statuses [board.NumArmies]board.ArmyStatus
	for _, army := range board.Armies {
		statuses[army] = board.ArmyStatus{
			Thrones:    s.ThroneSquares[army],
			Controller: s.ControllerMap[army],
		}
	}
	return statuses
}

func bb(squares ...board.Square) board.Bitboard {
	mask := board.Empty
	for _, sq := range squares {
		mask = mask.Set(sq)
	}
	return mask
}

// Each army fields nine pieces: king, queen, bishop, knight, rook and four
// pawns, arranged along its home edge. The four layouts are exact 90-degree
// rotations of each other, so the masks stay pairwise disjoint.
var tabletOfFirePlacements = []board.Placement{
	// Blue, south edge, marching north
	{Army: board.Blue, Kind: board.Rook, Mask: bb(board.B1)},
	{Army: board.Blue, Kind: board.Queen, Mask: bb(board.C1)},
	{Army: board.Blue, Kind: board.Bishop, Mask: bb(board.D1)},
	{Army: board.Blue, Kind: board.King, Mask: bb(board.E1)},
	{Army: board.Blue, Kind: board.Knight, Mask: bb(board.F1)},
	{Army: board.Blue, Kind: board.Pawn, Mask: bb(board.C2, board.D2, board.E2, board.F2)},

	// Black, west edge, marching east
	{Army: board.Black, Kind: board.Rook, Mask: bb(board.A2)},
	{Army: board.Black, Kind: board.Queen, Mask: bb(board.A3)},
	{Army: board.Black, Kind: board.Bishop, Mask: bb(board.A4)},
	{Army: board.Black, Kind: board.King, Mask: bb(board.A5)},
	{Army: board.Black, Kind: board.Knight, Mask: bb(board.A6)},
	{Army: board.Black, Kind: board.Pawn, Mask: bb(board.B3, board.B4, board.B5, board.B6)},

	// Red, north edge, marching south
	{Army: board.Red, Kind: board.Rook, Mask: bb(board.B8)},
	{Army: board.Red, Kind: board.Queen, Mask: bb(board.C8)},
	{Army: board.Red, Kind: board.Bishop, Mask: bb(board.D8)},
	{Army: board.Red, Kind: board.King, Mask: bb(board.E8)},
	{Army: board.Red, Kind: board.Knight, Mask: bb(board.F8)},
	{Army: board.Red, Kind: board.Pawn, Mask: bb(board.C7, board.D7, board.E7, board.F7)},

	// Yellow, east edge, marching west
	{Army: board.Yellow, Kind: board.Rook, Mask: bb(board.H2)},
	{Army: board.Yellow, Kind: board.Queen, Mask: bb(board.H3)},
	{Army: board.Yellow, Kind: board.Bishop, Mask: bb(board.H4)},
	{Army: board.Yellow, Kind: board.King, Mask: bb(board.H5)},
	{Army: board.Yellow, Kind: board.Knight, Mask: bb(board.H6)},
	{Army: board.Yellow, Kind: board.Pawn, Mask: bb(board.G3, board.G4, board.G5, board.G6)},
}

// TabletOfFire is the playable prototype array.
var TabletOfFire = ArraySpec{
	Name:        "Tablet of Fire",
	Description: "The Zalewski Tablet of Fire array: clockwise turn order, kings on the edge thrones.",
	TurnOrder:   [board.NumArmies]board.Army{board.Blue, board.Red, board.Black, board.Yellow},
	ControllerMap: [board.NumArmies]board.PlayerID{
		board.Blue:   board.PlayerOne,
		board.Black:  board.PlayerOne,
		board.Red:    board.PlayerTwo,
		board.Yellow: board.PlayerTwo,
	},
	ThroneSquares:  board.DefaultThrones,
	PromotionZones: board.DefaultPromotionZones,
	Placements:     tabletOfFirePlacements,
}

// TabletOfWater is a placeholder: turn order transcribed, diagram to follow.
var TabletOfWater = ArraySpec{
	Name:        "Tablet of Water",
	Description: "Turn order: Blue, Black, Yellow, Red. Actual diagram to follow.",
	TurnOrder:   [board.NumArmies]board.Army{board.Blue, board.Black, board.Yellow, board.Red},
	ControllerMap: [board.NumArmies]board.PlayerID{
		board.Blue:   board.PlayerOne,
		board.Black:  board.PlayerOne,
		board.Red:    board.PlayerTwo,
		board.Yellow: board.PlayerTwo,
	},
	ThroneSquares:  board.DefaultThrones,
	PromotionZones: board.DefaultPromotionZones,
}

// TabletOfAir is a placeholder with the rotated turn order.
var TabletOfAir = ArraySpec{
	Name:        "Tablet of Air",
	Description: "Rotated turn order (Red, Yellow, Black, Blue). Piece layout TBD.",
	TurnOrder:   [board.NumArmies]board.Army{board.Red, board.Yellow, board.Black, board.Blue},
	ControllerMap: [board.NumArmies]board.PlayerID{
		board.Blue:   board.PlayerOne,
		board.Black:  board.PlayerOne,
		board.Red:    board.PlayerTwo,
		board.Yellow: board.PlayerTwo,
	},
	ThroneSquares:  board.DefaultThrones,
	PromotionZones: board.DefaultPromotionZones,
}

// TabletOfEarth is a placeholder with the counter-clockwise turn order.
var TabletOfEarth = ArraySpec{
	Name:        "Tablet of Earth",
	Description: "Counter-clockwise order (Yellow, Blue, Red, Black); layout pending.",
	TurnOrder:   [board.NumArmies]board.Army{board.Yellow, board.Blue, board.Red, board.Black},
	ControllerMap: [board.NumArmies]board.PlayerID{
		board.Blue:   board.PlayerOne,
		board.Black:  board.PlayerOne,
		board.Red:    board.PlayerTwo,
		board.Yellow: board.PlayerTwo,
	},
	ThroneSquares:  board.DefaultThrones,
	PromotionZones: board.DefaultPromotionZones,
}

var allArrays = []*ArraySpec{&TabletOfFire, &TabletOfWater, &TabletOfAir, &TabletOfEarth}

// AvailableArrays lists every catalog entry.
func AvailableArrays() []*ArraySpec {
	return allArrays
}

// FindArrayByName looks an entry up case-insensitively.
func FindArrayByName(name string) (*ArraySpec, bool) {
	for _, spec := range allArrays {
		if strings.EqualFold(spec.Name, name) {
			return spec, true
		}
	}
	return nil, false
}

// DefaultArray returns the playable default entry.
func DefaultArray() *ArraySpec {
	return &TabletOfFire
}
