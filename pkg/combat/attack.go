package combat

import (
	"fmt"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

const (
	corpseGlyph = '%'
	// PlayerCorpseName is the player's name after death; stat
	// aggregation stops matching it, so equipment bonuses lapse with
	// the corpse.
	PlayerCorpseName = "Corpse of player"
)

// Attack resolves one melee attack. Damage is deterministic:
// attacker's effective power minus defender's effective defense. A
// kill awards the defender's XP to the attacker's fighter (only
// meaningful for the player, but applied unconditionally).
func Attack(attacker, defender *entity.Entity, gs *state.GameState) {
	damage := attacker.Power(gs.Inventory) - defender.Defense(gs.Inventory)

	if damage <= 0 {
		gs.Log.Add(fmt.Sprintf("%s attacks %s but it has no effect!",
			attacker.Name, defender.Name), entity.ColorWhite)
		return
	}

	gs.Log.Add(fmt.Sprintf("%s attacks %s for %d hit points",
		attacker.Name, defender.Name, damage), entity.ColorWhite)
	if xp, killed := TakeDamage(defender, damage, gs); killed {
		if attacker.Fighter != nil {
			attacker.Fighter.XP += xp
		}
	}
}

// TakeDamage applies damage to a fightered entity and fires its death
// policy when HP drops to zero or below. It returns the victim's XP
// value and whether this call killed it. Death fires at most once: a
// dead entity is never "re-killed".
func TakeDamage(e *entity.Entity, damage int, gs *state.GameState) (int, bool) {
	if e.Fighter == nil {
		return 0, false
	}
	if damage > 0 {
		e.Fighter.HP -= damage
	}
	if e.Fighter.HP <= 0 && e.Alive {
		xp := e.Fighter.XP
		e.Alive = false
		switch e.Fighter.OnDeath {
		case entity.PlayerPolicy:
			playerDeath(e, gs)
		case entity.MonsterPolicy:
			monsterDeath(e, gs)
		}
		return xp, true
	}
	return 0, false
}

// playerDeath ends the session: the player becomes a corpse but keeps
// its slot at index 0.
func playerDeath(player *entity.Entity, gs *state.GameState) {
	gs.Log.Add("You died!", entity.ColorRed)

	player.Glyph = corpseGlyph
	player.Color = entity.ColorDarkRed
	player.Name = PlayerCorpseName
}

// monsterDeath turns the monster into inert scenery: no blocking, no
// fighter, no AI.
func monsterDeath(monster *entity.Entity, gs *state.GameState) {
	gs.Log.Add(fmt.Sprintf("%s is dead! You gain %d experience points.",
		monster.Name, monster.Fighter.XP), entity.ColorOrange)

	monster.Glyph = corpseGlyph
	monster.Color = entity.ColorDarkRed
	monster.Blocks = false
	monster.Fighter = nil
	monster.AI = nil
	monster.Name = "Remains of " + monster.Name
}
