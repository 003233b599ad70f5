// Package ai advances the per-monster state machine once per game
// turn: Basic chases and attacks the player while visible, Confused
// stumbles randomly until its timer expires and then restores the
// wrapped state.
package ai

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/combat"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

// TakeTurn advances the AI of the entity at idx by one step. Entities
// without an AI state are skipped.
func TakeTurn(idx int, entities entity.List, gs *state.GameState, fov combat.FOV, rng *rand.Rand) {
	aiState := entities[idx].AI
	if aiState == nil {
		return
	}
	// Take the state out, compute the successor, put it back. The
	// Confused arm moves ownership of the wrapped state.
	entities[idx].AI = nil

	var next *entity.AIState
	switch aiState.Kind {
	case entity.AIBasic:
		next = basicTurn(idx, entities, gs, fov)
	case entity.AIConfused:
		next = confusedTurn(idx, entities, gs, aiState, rng)
	default:
		next = aiState
	}

	entities[idx].AI = next
}

// basicTurn chases the player while the monster's tile is visible:
// step closer when at distance >= 2, attack when adjacent and the
// player still stands. Basic is terminal-stable.
func basicTurn(idx int, entities entity.List, gs *state.GameState, fov combat.FOV) *entity.AIState {
	monster := &entities[idx]
	if fov.IsVisible(monster.X, monster.Y) {
		player := entities.Player()
		if monster.DistanceTo(player) >= 2.0 {
			moveTowards(idx, player.X, player.Y, entities, gs)
		} else if player.Fighter != nil && player.Fighter.HP > 0 {
			attacker, defender := entities.MutTwo(idx, entity.PlayerIndex)
			combat.Attack(attacker, defender, gs)
		}
	}
	return entity.BasicAI()
}

// confusedTurn moves one random step per turn until the counter goes
// negative, then restores the wrapped previous state.
func confusedTurn(idx int, entities entity.List, gs *state.GameState, ai *entity.AIState, rng *rand.Rand) *entity.AIState {
	if ai.TurnsRemaining >= 0 {
		MoveBy(idx, rng.IntN(3)-1, rng.IntN(3)-1, entities, gs)
		ai.TurnsRemaining--
		return ai
	}

	gs.Log.Add(fmt.Sprintf("The %s is no longer confused!", entities[idx].Name),
		entity.ColorRed)
	return ai.Previous
}

// moveTowards takes one grid step toward the target: the vector to the
// target is normalized and each axis rounded to the nearest step in
// {-1, 0, 1}.
func moveTowards(idx, targetX, targetY int, entities entity.List, gs *state.GameState) {
	e := &entities[idx]
	dx := float64(targetX - e.X)
	dy := float64(targetY - e.Y)
	dist := math.Sqrt(dx*dx + dy*dy)

	stepX := int(math.Round(dx / dist))
	stepY := int(math.Round(dy / dist))
	MoveBy(idx, stepX, stepY, entities, gs)
}

// MoveBy moves the entity at idx by (dx, dy) unless the destination is
// blocked by terrain or a blocking entity; a blocked move is silently
// skipped.
func MoveBy(idx, dx, dy int, entities entity.List, gs *state.GameState) {
	x, y := entities[idx].Pos()
	if !gs.Map.IsBlocked(x+dx, y+dy, entities) {
		entities[idx].SetPos(x+dx, y+dy)
	}
}
