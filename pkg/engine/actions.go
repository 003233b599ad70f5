package engine

import (
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/ai"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/combat"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/dungeon"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
)

// ActionKind is the closed set of player actions a frontend can issue.
type ActionKind string

const (
	ActionMove    ActionKind = "move"
	ActionWait    ActionKind = "wait"
	ActionPickup  ActionKind = "pickup"
	ActionUse     ActionKind = "use"
	ActionDrop    ActionKind = "drop"
	ActionDescend ActionKind = "descend"
	ActionQuit    ActionKind = "quit"
)

// Action is one player command. DX/DY apply to moves, Index addresses
// an inventory slot for use/drop.
type Action struct {
	Kind  ActionKind `json:"action"`
	DX    int        `json:"dx,omitempty"`
	DY    int        `json:"dy,omitempty"`
	Index int        `json:"index,omitempty"`
}

// ActionResult tells the frontend whether the action consumed a game
// turn or ended the session.
type ActionResult string

const (
	TurnTaken   ActionResult = "turn_taken"
	NoTurnTaken ActionResult = "no_turn"
	SessionExit ActionResult = "session_exit"
)

// Step applies one player action. When the action consumed a turn and
// the player still lives, every AI-bearing entity advances once in
// ascending index order.
func (e *Engine) Step(a Action) ActionResult {
	result := e.handleAction(a)

	if result == TurnTaken && e.Player().Alive {
		e.monsterPhase()
	}
	return result
}

func (e *Engine) handleAction(a Action) ActionResult {
	playerAlive := e.Player().Alive

	switch a.Kind {
	case ActionMove:
		if !playerAlive {
			return NoTurnTaken
		}
		e.moveOrAttack(a.DX, a.DY)
		return TurnTaken

	case ActionWait:
		if !playerAlive {
			return NoTurnTaken
		}
		// Let the monsters come to you.
		return TurnTaken

	case ActionPickup:
		if !playerAlive {
			return NoTurnTaken
		}
		px, py := e.Player().Pos()
		idx := e.Entities.At(func(o *entity.Entity) bool {
			return o.X == px && o.Y == py && o.IsItem()
		})
		if idx >= 0 {
			combat.PickUpItem(idx, &e.Entities, e.GS)
		}
		return NoTurnTaken

	case ActionUse:
		if !playerAlive || a.Index < 0 || a.Index >= len(e.GS.Inventory) {
			return NoTurnTaken
		}
		combat.UseItem(a.Index, e.Entities, e.GS, e.FOV, e.UI)
		return NoTurnTaken

	case ActionDrop:
		if !playerAlive || a.Index < 0 || a.Index >= len(e.GS.Inventory) {
			return NoTurnTaken
		}
		combat.DropItem(a.Index, &e.Entities, e.GS)
		return NoTurnTaken

	case ActionDescend:
		if !playerAlive {
			return NoTurnTaken
		}
		px, py := e.Player().Pos()
		onStairs := e.Entities.At(func(o *entity.Entity) bool {
			return o.X == px && o.Y == py && o.Name == dungeon.StairsName
		}) >= 0
		if onStairs {
			if err := e.NextLevel(); err != nil {
				e.GS.Log.Add("The way down is blocked by rubble.", entity.ColorRed)
			}
		}
		return NoTurnTaken

	case ActionQuit:
		return SessionExit
	}

	return NoTurnTaken
}

// moveOrAttack steps the player, or attacks when a fightered entity
// occupies the destination cell.
func (e *Engine) moveOrAttack(dx, dy int) {
	x := e.Player().X + dx
	y := e.Player().Y + dy

	targetIdx := e.Entities.At(func(o *entity.Entity) bool {
		return o.Fighter != nil && o.X == x && o.Y == y
	})

	if targetIdx > entity.PlayerIndex {
		player, target := e.Entities.MutTwo(entity.PlayerIndex, targetIdx)
		combat.Attack(player, target, e.GS)
	} else {
		ai.MoveBy(entity.PlayerIndex, dx, dy, e.Entities, e.GS)
	}
}

// monsterPhase advances every AI-bearing entity exactly once.
func (e *Engine) monsterPhase() {
	for id := range e.Entities {
		if e.Entities[id].AI != nil {
			ai.TakeTurn(id, e.Entities, e.GS, e.FOV, e.rng)
		}
	}
}
