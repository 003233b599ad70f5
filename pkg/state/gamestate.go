package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/dungeon"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
)

// InventoryCapacity is the maximum number of carried items; inventory
// slots are letter-addressable (a-z).
const InventoryCapacity = 26

// GameState is the session state for one dungeon run: the tile map,
// the message log, the player's inventory, and the depth counter. The
// live entity collection travels alongside it (see engine.Engine and
// storage.SavedGame) rather than inside it, because entities are
// regenerated wholesale on level transitions.
type GameState struct {
	ID           uuid.UUID    `json:"id"`
	Map          *dungeon.Map `json:"map"`
	Log          Messages     `json:"log"`
	Inventory    entity.List  `json:"inventory"`
	DungeonLevel int          `json:"dungeon_level"`
	UpdatedAt    time.Time    `json:"updated_at,omitempty"`
}

// New returns an empty session at dungeon level 1. The map is filled
// in by the caller once generation has run.
func New() *GameState {
	return &GameState{
		ID:           uuid.New(),
		Log:          make(Messages, 0),
		Inventory:    make(entity.List, 0),
		DungeonLevel: 1,
	}
}
