package engine

import (
	"errors"
	"fmt"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
)

// XP thresholds: the player levels up at 200 + 150 per current level.
const (
	LevelUpBase   = 200
	LevelUpFactor = 150
)

// Level-up gains.
const (
	LevelUpHPGain      = 20
	LevelUpPowerGain   = 1
	LevelUpDefenseGain = 1
)

// Improvement is the stat raised on level-up.
type Improvement string

const (
	ImproveHP      Improvement = "hp"
	ImprovePower   Improvement = "power"
	ImproveDefense Improvement = "defense"
)

// ErrInvalidImprovement rejects a level-up choice outside the three
// options; callers re-prompt.
var ErrInvalidImprovement = errors.New("engine: invalid level-up choice")

// Chooser supplies the blocking three-option level-up choice. An
// invalid return is re-prompted until one of the three options comes
// back.
type Chooser interface {
	ChooseImprovement(f entity.Fighter, level int) Improvement
}

// LevelUpThreshold returns the XP required for the player's next
// level.
func (e *Engine) LevelUpThreshold() int {
	return LevelUpBase + e.Player().Level*LevelUpFactor
}

// NeedsLevelUp reports whether the player has banked enough XP to
// level up. Frontends that cannot block (the HTTP API) surface this as
// a pending choice instead of passing a Chooser.
func (e *Engine) NeedsLevelUp() bool {
	player := e.Player()
	return player.Fighter != nil && player.Fighter.XP >= e.LevelUpThreshold()
}

// RunLevelUp resolves a pending level-up with the given chooser,
// re-prompting until a valid improvement is returned. No-op when no
// level-up is pending.
func (e *Engine) RunLevelUp(chooser Chooser) {
	for e.NeedsLevelUp() {
		player := e.Player()
		choice := chooser.ChooseImprovement(*player.Fighter, player.Level)
		if err := e.ApplyLevelUp(choice); err != nil {
			continue
		}
	}
}

// ApplyLevelUp consumes the pending threshold and applies exactly one
// of the three improvements. It fails without mutating anything when
// no level-up is pending or the choice is invalid.
func (e *Engine) ApplyLevelUp(choice Improvement) error {
	if !e.NeedsLevelUp() {
		return errors.New("engine: no level-up pending")
	}

	player := e.Player()
	fighter := player.Fighter

	switch choice {
	case ImproveHP:
		fighter.BaseMaxHP += LevelUpHPGain
		fighter.HP += LevelUpHPGain
	case ImprovePower:
		fighter.BasePower += LevelUpPowerGain
	case ImproveDefense:
		fighter.BaseDefense += LevelUpDefenseGain
	default:
		return ErrInvalidImprovement
	}

	fighter.XP -= e.LevelUpThreshold()
	player.Level++
	e.GS.Log.Add(fmt.Sprintf("Your battle skills grow stronger! You reached level %d",
		player.Level), entity.ColorYellow)
	return nil
}
