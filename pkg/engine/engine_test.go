package engine

import (
	"testing"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/combat"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/dungeon"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
)

type allVisible struct{}

func (allVisible) IsVisible(x, y int) bool { return true }

func newTestEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	eng, err := NewGame(seed)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	eng.FOV = allVisible{}
	eng.UI = combat.SingleShot(combat.InputEvent{Kind: combat.EventCancel})
	return eng
}

func TestNewGameInvariants(t *testing.T) {
	eng := newTestEngine(t, 1)

	player := eng.Player()
	if player.Name != entity.PlayerName {
		t.Errorf("expected the player at index 0, got %q", player.Name)
	}
	if !player.Alive || player.Fighter == nil {
		t.Fatal("expected a living, fightered player")
	}
	if player.Fighter.HP != 100 || player.Fighter.BasePower != 2 || player.Fighter.BaseDefense != 1 {
		t.Error("unexpected starting stats")
	}

	if len(eng.GS.Inventory) != 1 || eng.GS.Inventory[0].Name != "Dagger" {
		t.Fatal("expected the starting dagger in the inventory")
	}
	if !eng.GS.Inventory[0].Equipment.Equipped {
		t.Error("the dagger must start equipped")
	}
	// Dagger bonus included.
	if got := player.Power(eng.GS.Inventory); got != 4 {
		t.Errorf("expected effective power 4, got %d", got)
	}

	if eng.GS.DungeonLevel != 1 {
		t.Errorf("expected dungeon level 1, got %d", eng.GS.DungeonLevel)
	}
	if len(eng.GS.Log) == 0 {
		t.Error("expected the welcome message")
	}
}

func TestWaitTriggersMonsterPhase(t *testing.T) {
	eng := newTestEngine(t, 1)

	// Drop a hostile next to the player; one wait must let it attack.
	px, py := eng.Player().Pos()
	orc := entity.New(px+1, py, 'o', "Orc", entity.ColorDesatGreen, true)
	orc.Alive = true
	orc.Fighter = &entity.Fighter{
		BaseMaxHP: 20, HP: 20, BasePower: 4, OnDeath: entity.MonsterPolicy,
	}
	orc.AI = entity.BasicAI()

	// Disarm the generated monsters so only our orc acts this turn.
	for i := range eng.Entities {
		eng.Entities[i].AI = nil
	}
	eng.Entities = append(eng.Entities, orc)

	before := eng.Player().Fighter.HP
	if result := eng.Step(Action{Kind: ActionWait}); result != TurnTaken {
		t.Fatalf("expected TurnTaken, got %q", result)
	}

	// 4 power against 1 defense (the dagger adds no defense).
	if got := eng.Player().Fighter.HP; got != before-3 {
		t.Errorf("expected the orc to attack for 3, HP went %d -> %d", before, got)
	}
}

func TestDeadPlayerTakesNoTurns(t *testing.T) {
	eng := newTestEngine(t, 1)
	eng.Player().Alive = false

	if result := eng.Step(Action{Kind: ActionMove, DX: 1}); result != NoTurnTaken {
		t.Errorf("expected NoTurnTaken for a dead player, got %q", result)
	}
	if result := eng.Step(Action{Kind: ActionWait}); result != NoTurnTaken {
		t.Errorf("expected NoTurnTaken for a dead player, got %q", result)
	}
}

func TestQuitExitsSession(t *testing.T) {
	eng := newTestEngine(t, 1)

	if result := eng.Step(Action{Kind: ActionQuit}); result != SessionExit {
		t.Errorf("expected SessionExit, got %q", result)
	}
}

func TestDescendRequiresStairs(t *testing.T) {
	eng := newTestEngine(t, 1)

	// Move the player off the stairs if generation put them together.
	stairsIdx := eng.Entities.At(func(e *entity.Entity) bool {
		return e.Name == dungeon.StairsName
	})
	if stairsIdx < 0 {
		t.Fatal("no stairs generated")
	}

	px, py := eng.Player().Pos()
	sx, sy := eng.Entities[stairsIdx].Pos()
	if px == sx && py == sy {
		t.Skip("player generated on the stairs")
	}

	before := eng.GS.DungeonLevel
	eng.Step(Action{Kind: ActionDescend})
	if eng.GS.DungeonLevel != before {
		t.Error("descending away from the stairs must do nothing")
	}
}

func TestNextLevelRestHeal(t *testing.T) {
	eng := newTestEngine(t, 1)
	eng.Player().Fighter.HP = 10

	if err := eng.NextLevel(); err != nil {
		t.Fatalf("NextLevel failed: %v", err)
	}

	if eng.GS.DungeonLevel != 2 {
		t.Errorf("expected dungeon level 2, got %d", eng.GS.DungeonLevel)
	}
	// Half of effective max HP (100) on top of the remaining 10.
	if got := eng.Player().Fighter.HP; got != 60 {
		t.Errorf("expected HP 60 after resting, got %d", got)
	}

	// The old level's monsters are gone; the player keeps index 0.
	if eng.Player().Name != entity.PlayerName {
		t.Error("player must survive the level transition at index 0")
	}
}
