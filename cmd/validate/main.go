package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/TheFirstLairron/Rusty-Rogues/internal/storage"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <save.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &SaveValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Save file is valid!")
}

type SaveValidator struct {
	errors []string
}

func (v *SaveValidator) errorf(format string, args ...interface{}) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *SaveValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var save storage.SavedGame
	if err := json.Unmarshal(data, &save); err != nil {
		return fmt.Errorf("file %s failed JSON unmarshaling: %w", filename, err)
	}

	v.validateSave(&save)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *SaveValidator) validateSave(save *storage.SavedGame) {
	if save.State == nil {
		v.errorf("missing game state")
		return
	}
	if len(save.Entities) == 0 {
		v.errorf("no entities in save")
		return
	}

	v.validatePlayer(save)
	v.validateMap(save.State)
	v.validateInventory(save.State)

	if save.State.DungeonLevel < 1 {
		v.errorf("dungeon level must be at least 1, got %d", save.State.DungeonLevel)
	}
}

func (v *SaveValidator) validatePlayer(save *storage.SavedGame) {
	player := &save.Entities[entity.PlayerIndex]

	if player.Alive {
		if player.Name != entity.PlayerName {
			v.errorf("entity 0 must be the player, got %q", player.Name)
		}
		if player.Fighter == nil {
			v.errorf("living player has no fighter stats")
			return
		}
		if hp, maxHP := player.Fighter.HP, player.MaxHP(save.State.Inventory); hp > maxHP {
			v.errorf("player HP %d exceeds maximum %d", hp, maxHP)
		}
	}

	for i := range save.Entities {
		e := &save.Entities[i]
		if i != entity.PlayerIndex && e.Name == entity.PlayerName {
			v.errorf("duplicate player entity at index %d", i)
		}
	}
}

func (v *SaveValidator) validateMap(gs *state.GameState) {
	if gs.Map == nil {
		v.errorf("missing map")
		return
	}
	if gs.Map.Width <= 0 || gs.Map.Height <= 0 {
		v.errorf("invalid map dimensions %dx%d", gs.Map.Width, gs.Map.Height)
		return
	}
	if len(gs.Map.Tiles) != gs.Map.Width {
		v.errorf("tile columns %d do not match width %d", len(gs.Map.Tiles), gs.Map.Width)
		return
	}
	for x := range gs.Map.Tiles {
		if len(gs.Map.Tiles[x]) != gs.Map.Height {
			v.errorf("tile column %d has %d rows, expected %d", x, len(gs.Map.Tiles[x]), gs.Map.Height)
			return
		}
	}
}

func (v *SaveValidator) validateInventory(gs *state.GameState) {
	if len(gs.Inventory) > state.InventoryCapacity {
		v.errorf("inventory holds %d items, capacity is %d", len(gs.Inventory), state.InventoryCapacity)
	}

	// At most one equipped item per slot.
	equipped := make(map[entity.Slot]int)
	for i := range gs.Inventory {
		it := &gs.Inventory[i]
		if it.Equipment != nil && it.Equipment.Equipped {
			equipped[it.Equipment.Slot]++
		}
	}
	for slot, count := range equipped {
		if count > 1 {
			v.errorf("slot %q has %d equipped items", slot, count)
		}
	}
}
