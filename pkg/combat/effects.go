package combat

import (
	"fmt"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

// Effect magnitudes and ranges.
const (
	HealAmount = 40

	LightningDamage = 40
	LightningRange  = 5

	ConfuseRange = 8
	ConfuseTurns = 10

	FireballRadius = 3
	FireballDamage = 25
)

// UseResult is the outcome of using an inventory item.
type UseResult string

const (
	// UsedUp consumes the item.
	UsedUp UseResult = "used_up"
	// UsedAndKept leaves the item in the inventory (wearables).
	UsedAndKept UseResult = "used_and_kept"
	// Cancelled rolls back to "item not consumed".
	Cancelled UseResult = "cancelled"
)

// NeedsTarget reports whether using this item kind requires the
// interactive targeting loop, so frontends can enter a targeting mode
// before invoking UseItem.
func NeedsTarget(kind entity.ItemKind) bool {
	return kind == entity.ItemConfuse || kind == entity.ItemFireball
}

// UseItem dispatches an inventory item's effect by kind and consumes
// the item when the effect reports UsedUp. The kind set is closed; no
// registry.
func UseItem(invIndex int, entities entity.List, gs *state.GameState, fov FOV, ui TargetUI) UseResult {
	item := &gs.Inventory[invIndex]
	if !item.IsItem() {
		gs.Log.Add(fmt.Sprintf("The %s cannot be used.", item.Name), entity.ColorWhite)
		return Cancelled
	}

	var result UseResult
	switch item.Item {
	case entity.ItemHeal:
		result = CastHeal(entities, gs)
	case entity.ItemLightning:
		result = CastLightning(entities, gs, fov)
	case entity.ItemConfuse:
		result = CastConfuse(entities, gs, fov, ui)
	case entity.ItemFireball:
		result = CastFireball(entities, gs, fov, ui)
	case entity.ItemSword, entity.ItemShield:
		result = ToggleEquipment(invIndex, gs)
	default:
		result = Cancelled
	}

	switch result {
	case UsedUp:
		gs.Inventory = append(gs.Inventory[:invIndex], gs.Inventory[invIndex+1:]...)
	case Cancelled:
		gs.Log.Add("Cancelled", entity.ColorWhite)
	}
	return result
}

// CastHeal restores a fixed amount of the player's HP, clamped to the
// effective maximum. Cancelled when already at full health.
func CastHeal(entities entity.List, gs *state.GameState) UseResult {
	player := entities.Player()
	if player.Fighter == nil {
		return Cancelled
	}
	if player.Fighter.HP == player.MaxHP(gs.Inventory) {
		gs.Log.Add("You are already at full health.", entity.ColorRed)
		return Cancelled
	}

	gs.Log.Add("Your wounds start to close up!", entity.ColorLightViolet)
	player.Heal(HealAmount, gs.Inventory)
	return UsedUp
}

// CastLightning strikes the nearest visible hostile within range for
// fixed direct damage. Cancelled when no enemy is in range.
func CastLightning(entities entity.List, gs *state.GameState, fov FOV) UseResult {
	idx, ok := ClosestMonster(LightningRange, entities, fov)
	if !ok {
		gs.Log.Add("No enemy is close enough to strike.", entity.ColorRed)
		return Cancelled
	}

	target := &entities[idx]
	gs.Log.Add(fmt.Sprintf(
		"A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
		target.Name, LightningDamage), entity.ColorLightBlue)

	if xp, killed := TakeDamage(target, LightningDamage, gs); killed {
		entities.Player().Fighter.XP += xp
	}
	return UsedUp
}

// CastConfuse asks for a monster target within range and wraps its AI
// in a confusion state for a fixed number of turns.
func CastConfuse(entities entity.List, gs *state.GameState, fov FOV, ui TargetUI) UseResult {
	gs.Log.Add("Left-click an enemy to confuse it, or right-click to cancel.",
		entity.ColorLightCyan)

	idx, ok := TargetMonster(entities, gs, fov, ui, ConfuseRange)
	if !ok {
		gs.Log.Add("No enemy is close enough to strike.", entity.ColorRed)
		return Cancelled
	}

	target := &entities[idx]
	prev := target.AI
	if prev == nil {
		prev = entity.BasicAI()
	}
	target.AI = entity.ConfusedAI(prev, ConfuseTurns)

	gs.Log.Add(fmt.Sprintf(
		"The eyes of the %s look vacant, as it starts to stumble around!",
		target.Name), entity.ColorLightGreen)
	return UsedUp
}

// CastFireball asks for a target tile anywhere in view and damages
// every fightered entity within the blast radius, the player included.
// XP from monster kills is accumulated during the sweep and credited
// to the player once, after the damage loop.
func CastFireball(entities entity.List, gs *state.GameState, fov FOV, ui TargetUI) UseResult {
	gs.Log.Add("Left-click a target tile for the fireball, or right-click to cancel.",
		entity.ColorLightCyan)

	x, y, ok := TargetTile(entities, gs, fov, ui, 0)
	if !ok {
		return Cancelled
	}

	gs.Log.Add(fmt.Sprintf("The fireball explodes, burning everything within %d tiles!",
		FireballRadius), entity.ColorOrange)

	xpToGain := 0
	for i := range entities {
		e := &entities[i]
		if e.Fighter == nil || e.Distance(x, y) > FireballRadius {
			continue
		}
		gs.Log.Add(fmt.Sprintf("The %s gets burned for %d hit points.",
			e.Name, FireballDamage), entity.ColorOrange)

		if xp, killed := TakeDamage(e, FireballDamage, gs); killed {
			// The player earns nothing for blowing themselves up.
			if i != entity.PlayerIndex {
				xpToGain += xp
			}
		}
	}
	entities.Player().Fighter.XP += xpToGain

	return UsedUp
}

// ToggleEquipment equips a wearable inventory item, unequipping any
// current occupant of its slot first, or unequips it when already
// worn. Wearables are never consumed.
func ToggleEquipment(invIndex int, gs *state.GameState) UseResult {
	eq := gs.Inventory[invIndex].Equipment
	if eq == nil {
		return Cancelled
	}

	if eq.Equipped {
		dequip(&gs.Inventory[invIndex], &gs.Log)
	} else {
		if prev := entity.EquippedInSlot(eq.Slot, gs.Inventory); prev >= 0 {
			dequip(&gs.Inventory[prev], &gs.Log)
		}
		equip(&gs.Inventory[invIndex], &gs.Log)
	}
	return UsedAndKept
}

func equip(item *entity.Entity, log *state.Messages) {
	if item.Equipment == nil || item.Equipment.Equipped {
		return
	}
	item.Equipment.Equipped = true
	log.Add(fmt.Sprintf("Equipped %s on %s.", item.Name, item.Equipment.Slot),
		entity.ColorLightGreen)
}

func dequip(item *entity.Entity, log *state.Messages) {
	if item.Equipment == nil || !item.Equipment.Equipped {
		return
	}
	item.Equipment.Equipped = false
	log.Add(fmt.Sprintf("Dequipped %s from %s.", item.Name, item.Equipment.Slot),
		entity.ColorLightYellow)
}
