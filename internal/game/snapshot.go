package game

import (
	"encoding/json"

	"github.com/monistowl/enoch/internal/board"
)

// Snapshot is the flat persistence form of a game. Only authoritative
// fields are carried: the per-army-per-kind masks, the per-army metadata,
// the turn configuration and the transient flags. Derived occupancy and
// cached king squares are rebuilt on restore and never serialized.
type Snapshot struct {
	ByArmyKind     [board.NumArmies][board.NumPieceKinds]board.Bitboard `json:"by_army_kind"`
	Thrones        [board.NumArmies][2]board.Square                     `json:"thrones"`
	Controllers    [board.NumArmies]board.PlayerID                      `json:"controllers"`
	Frozen         [board.NumArmies]bool                                `json:"frozen"`
	PromotionZones [board.NumArmies]board.Bitboard                      `json:"promotion_zones"`

	TurnOrder     [board.NumArmies]board.Army     `json:"turn_order"`
	ControllerMap [board.NumArmies]board.PlayerID `json:"controller_map"`

	CurrentTurnIndex int                        `json:"current_turn_index"`
	Stalemated       [board.NumArmies]bool      `json:"stalemated"`
}

// Snapshot captures the game's authoritative fields.
func (g *Game) Snapshot() *Snapshot {
	snap := &Snapshot{
		ByArmyKind:       g.Board.ByArmyKind,
		PromotionZones:   g.Board.PromotionZones,
		TurnOrder:        g.Config.TurnOrder,
		ControllerMap:    g.Config.ControllerMap,
		CurrentTurnIndex: g.State.CurrentTurnIndex,
		Stalemated:       g.State.Stalemated,
	}
	for _, army := range board.Armies {
		snap.Thrones[army] = g.Board.Armies[army].Thrones
		snap.Controllers[army] = g.Board.Armies[army].Controller
		snap.Frozen[army] = g.Board.Armies[army].Frozen
	}
	return snap
}

// RefreshDerived rebuilds every derived field from the authoritative ones:
// occupancy aggregates, king squares and frozen flags. It must run after
// any external mutation of the board (deserialization included) before the
// game is queried or mutated.
func (g *Game) RefreshDerived() {
	g.Board.RefreshOccupancy()
	g.State.SyncWithBoard(&g.Board)
}

// Restore rebuilds a game from a snapshot, running the explicit
// refresh-derived step before handing the game back.
func Restore(snap *Snapshot) *Game {
	var b board.Board
	b.ByArmyKind = snap.ByArmyKind
	b.PromotionZones = snap.PromotionZones
	for _, army := range board.Armies {
		b.Armies[army] = board.ArmyStatus{
			Thrones:    snap.Thrones[army],
			Controller: snap.Controllers[army],
			Frozen:     snap.Frozen[army],
		}
	}

	cfg := DefaultConfig()
	cfg.TurnOrder = snap.TurnOrder
	cfg.ControllerMap = snap.ControllerMap

	g := &Game{Board: b, Config: cfg, State: NewState()}
	g.RefreshDerived()
	g.State.CurrentTurnIndex = snap.CurrentTurnIndex
	g.State.Stalemated = snap.Stalemated
	return g
}

// ToJSON serializes the game's snapshot.
func (g *Game) ToJSON() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}

// FromJSON deserializes a snapshot and restores a game from it.
func FromJSON(data []byte) (*Game, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return Restore(&snap), nil
}
