// Package engine owns the strictly turn-synchronous session loop: one
// player action per external input event; when the action consumes a
// turn, every AI-bearing entity advances exactly once, in ascending
// index order, before control returns to the frontend.
package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/combat"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/dungeon"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

const welcomeMessage = "Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings."

// Engine binds the live entity collection and session state to the
// oracles supplied by the frontend. There is exactly one logical
// thread of control; nothing here is safe for concurrent use.
type Engine struct {
	Entities entity.List
	GS       *state.GameState

	// FOV is the external visibility oracle; the frontend must keep it
	// current before every turn.
	FOV combat.FOV
	// UI drives the interactive targeting loops for confuse/fireball.
	UI combat.TargetUI

	rng *rand.Rand
}

// NewGame builds a fresh session: player at index 0, starting dagger
// equipped, level-1 dungeon generated and populated.
func NewGame(seed uint64) (*Engine, error) {
	player := entity.New(0, 0, '@', entity.PlayerName, entity.ColorWhite, true)
	player.Alive = true
	player.Fighter = &entity.Fighter{
		BaseMaxHP:   100,
		HP:          100,
		BaseDefense: 1,
		BasePower:   2,
		OnDeath:     entity.PlayerPolicy,
	}

	e := &Engine{
		Entities: entity.List{player},
		GS:       state.New(),
		rng:      rand.New(rand.NewPCG(seed, seed)),
	}

	m, err := dungeon.Generate(&e.Entities, e.GS.DungeonLevel, e.rng)
	if err != nil {
		return nil, fmt.Errorf("engine: new game: %w", err)
	}
	e.GS.Map = m

	e.GS.Inventory = append(e.GS.Inventory, dungeon.NewDagger())

	e.GS.Log.Add(welcomeMessage, entity.ColorRed)
	return e, nil
}

// Resume rebuilds an engine around a loaded entity set and session.
func Resume(entities entity.List, gs *state.GameState, seed uint64) *Engine {
	return &Engine{
		Entities: entities,
		GS:       gs,
		rng:      rand.New(rand.NewPCG(seed, seed)),
	}
}

// Player returns the player entity.
func (e *Engine) Player() *entity.Entity {
	return e.Entities.Player()
}

// NextLevel advances the session one dungeon level deeper: the player
// rests for half their effective max HP, the depth counter increments,
// and a fresh map replaces the old one wholesale.
func (e *Engine) NextLevel() error {
	e.GS.Log.Add("You take a moment to rest and recover your strength.",
		entity.ColorViolet)
	player := e.Player()
	player.Heal(player.MaxHP(e.GS.Inventory)/2, e.GS.Inventory)

	e.GS.Log.Add("After a rare moment of peace, you descend deeper into the heart of the dungeon.",
		entity.ColorRed)
	e.GS.DungeonLevel++

	m, err := dungeon.Generate(&e.Entities, e.GS.DungeonLevel, e.rng)
	if err != nil {
		return fmt.Errorf("engine: next level: %w", err)
	}
	e.GS.Map = m
	return nil
}
