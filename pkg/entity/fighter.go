package entity

// DeathPolicy selects what happens when a fighter's HP reaches zero.
type DeathPolicy string

const (
	// PlayerPolicy is terminal for the session: the player becomes a
	// corpse but keeps its slot at index 0.
	PlayerPolicy DeathPolicy = "player"
	// MonsterPolicy turns the monster into inert scenery.
	MonsterPolicy DeathPolicy = "monster"
)

// Fighter is the combat-capable component of an entity.
type Fighter struct {
	BaseMaxHP   int         `json:"base_max_hp"`
	HP          int         `json:"hp"`
	BaseDefense int         `json:"base_defense"`
	BasePower   int         `json:"base_power"`
	XP          int         `json:"xp"`
	OnDeath     DeathPolicy `json:"on_death"`
}

// Power returns the entity's effective attack power: the base fighter
// value plus bonuses from equipped items in inv. Only the player
// aggregates inventory bonuses; equipment on monsters is inert.
func (e *Entity) Power(inv List) int {
	base := 0
	if e.Fighter != nil {
		base = e.Fighter.BasePower
	}
	for _, eq := range e.allEquipped(inv) {
		base += eq.PowerBonus
	}
	return base
}

// Defense returns the entity's effective defense.
func (e *Entity) Defense(inv List) int {
	base := 0
	if e.Fighter != nil {
		base = e.Fighter.BaseDefense
	}
	for _, eq := range e.allEquipped(inv) {
		base += eq.DefenseBonus
	}
	return base
}

// MaxHP returns the entity's effective maximum HP.
func (e *Entity) MaxHP(inv List) int {
	base := 0
	if e.Fighter != nil {
		base = e.Fighter.BaseMaxHP
	}
	for _, eq := range e.allEquipped(inv) {
		base += eq.HPBonus
	}
	return base
}

// Heal restores HP, clamped to the effective maximum.
func (e *Entity) Heal(amount int, inv List) {
	if e.Fighter == nil {
		return
	}
	max := e.MaxHP(inv)
	e.Fighter.HP += amount
	if e.Fighter.HP > max {
		e.Fighter.HP = max
	}
}

func (e *Entity) allEquipped(inv List) []Equipment {
	if !e.IsPlayer() {
		return nil
	}
	var out []Equipment
	for i := range inv {
		if eq := inv[i].Equipment; eq != nil && eq.Equipped {
			out = append(out, *eq)
		}
	}
	return out
}
