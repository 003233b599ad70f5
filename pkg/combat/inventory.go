package combat

import (
	"fmt"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

// PickUpItem moves the entity at objectIndex from the dungeon floor
// into the inventory. A full inventory refuses the pickup and leaves
// the item on the ground. Wearables auto-equip when their slot is
// free.
func PickUpItem(objectIndex int, entities *entity.List, gs *state.GameState) {
	if len(gs.Inventory) >= state.InventoryCapacity {
		gs.Log.Add(fmt.Sprintf("Your inventory is full, cannot pick up %s",
			(*entities)[objectIndex].Name), entity.ColorRed)
		return
	}

	item := (*entities)[objectIndex]
	*entities = append((*entities)[:objectIndex], (*entities)[objectIndex+1:]...)

	gs.Log.Add(fmt.Sprintf("You picked up a %s!", item.Name), entity.ColorGreen)

	gs.Inventory = append(gs.Inventory, item)

	if eq := item.Equipment; eq != nil {
		if entity.EquippedInSlot(eq.Slot, gs.Inventory[:len(gs.Inventory)-1]) < 0 {
			equip(&gs.Inventory[len(gs.Inventory)-1], &gs.Log)
		}
	}
}

// DropItem removes the item at invIndex from the inventory, unequips
// it if worn, and places it back into the dungeon at the player's
// position.
func DropItem(invIndex int, entities *entity.List, gs *state.GameState) {
	item := gs.Inventory[invIndex]
	gs.Inventory = append(gs.Inventory[:invIndex], gs.Inventory[invIndex+1:]...)

	// The dropped copy is detached from the inventory; unequip it
	// directly so the log reflects the change.
	if item.Equipment != nil && item.Equipment.Equipped {
		dequip(&item, &gs.Log)
	}

	player := entities.Player()
	item.SetPos(player.X, player.Y)

	gs.Log.Add(fmt.Sprintf("You dropped a %s", item.Name), entity.ColorYellow)

	*entities = append(*entities, item)
}
