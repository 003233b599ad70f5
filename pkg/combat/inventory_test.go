package combat

import (
	"testing"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

func TestPickUpItem(t *testing.T) {
	gs := state.New()
	potion := healPotion()
	potion.SetPos(5, 5)
	entities := entity.List{newTestPlayer(5, 5), potion}

	PickUpItem(1, &entities, gs)

	if len(entities) != 1 {
		t.Errorf("expected the item removed from the floor, %d entities remain", len(entities))
	}
	if len(gs.Inventory) != 1 || gs.Inventory[0].Name != "Healing Potion" {
		t.Error("expected the potion in the inventory")
	}
	if !logContains(gs.Log, "You picked up a Healing Potion!") {
		t.Error("expected the pickup message")
	}
}

func TestPickUpItemFullInventory(t *testing.T) {
	gs := state.New()
	for i := 0; i < state.InventoryCapacity; i++ {
		gs.Inventory = append(gs.Inventory, healPotion())
	}

	potion := healPotion()
	potion.SetPos(5, 5)
	entities := entity.List{newTestPlayer(5, 5), potion}

	PickUpItem(1, &entities, gs)

	if len(entities) != 2 {
		t.Error("a refused item must stay on the floor")
	}
	if len(gs.Inventory) != state.InventoryCapacity {
		t.Errorf("inventory grew past capacity: %d", len(gs.Inventory))
	}
	if !logContains(gs.Log, "inventory is full") {
		t.Error("expected the refusal message")
	}
}

func TestPickUpAutoEquipsFreeSlot(t *testing.T) {
	gs := state.New()
	sword := entity.New(5, 5, '/', "Sword", entity.ColorSky, false)
	sword.Item = entity.ItemSword
	sword.Equipment = &entity.Equipment{Slot: entity.SlotRightHand, PowerBonus: 3}
	entities := entity.List{newTestPlayer(5, 5), sword}

	PickUpItem(1, &entities, gs)

	if !gs.Inventory[0].Equipment.Equipped {
		t.Error("a wearable picked up into a free slot must auto-equip")
	}
}

func TestPickUpDoesNotDisplaceEquipped(t *testing.T) {
	gs := state.New()
	worn := entity.New(0, 0, '/', "Sword", entity.ColorSky, false)
	worn.Item = entity.ItemSword
	worn.Equipment = &entity.Equipment{Slot: entity.SlotRightHand, Equipped: true, PowerBonus: 3}
	gs.Inventory = entity.List{worn}

	spare := entity.New(5, 5, '/', "Sword", entity.ColorSky, false)
	spare.Item = entity.ItemSword
	spare.Equipment = &entity.Equipment{Slot: entity.SlotRightHand, PowerBonus: 3}
	entities := entity.List{newTestPlayer(5, 5), spare}

	PickUpItem(1, &entities, gs)

	if !gs.Inventory[0].Equipment.Equipped {
		t.Error("the worn sword must stay equipped")
	}
	if gs.Inventory[1].Equipment.Equipped {
		t.Error("a pickup into an occupied slot must not auto-equip")
	}
}

func TestDropItem(t *testing.T) {
	gs := state.New()
	worn := entity.New(0, 0, '/', "Sword", entity.ColorSky, false)
	worn.Item = entity.ItemSword
	worn.Equipment = &entity.Equipment{Slot: entity.SlotRightHand, Equipped: true, PowerBonus: 3}
	gs.Inventory = entity.List{worn}

	entities := entity.List{newTestPlayer(7, 9)}

	DropItem(0, &entities, gs)

	if len(gs.Inventory) != 0 {
		t.Error("expected the inventory emptied")
	}
	if len(entities) != 2 {
		t.Fatal("expected the item back on the floor")
	}

	dropped := &entities[1]
	if dropped.X != 7 || dropped.Y != 9 {
		t.Errorf("expected the drop at the player's feet, got (%d, %d)", dropped.X, dropped.Y)
	}
	if dropped.Equipment.Equipped {
		t.Error("a dropped wearable must be unequipped")
	}
}
