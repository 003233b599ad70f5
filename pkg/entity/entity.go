package entity

import (
	"fmt"
	"math"
)

// PlayerName is the display name of the player entity. Stat aggregation
// uses it to decide whether inventory bonuses apply.
const PlayerName = "Player"

// Entity is the mutable record for every interactive thing in the
// dungeon: the player, monsters, items on the floor, and terrain
// features like stairs. Optional components are nil when absent.
type Entity struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph rune   `json:"glyph"`
	Color string `json:"color"`
	Name  string `json:"name"`

	Blocks bool `json:"blocks"`
	Alive  bool `json:"alive"`

	Fighter   *Fighter   `json:"fighter,omitempty"`
	AI        *AIState   `json:"ai,omitempty"`
	Item      ItemKind   `json:"item,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`

	// AlwaysVisible entities render once their tile has been explored,
	// even outside the current field of view (stairs, dropped items).
	AlwaysVisible bool `json:"always_visible,omitempty"`

	// Level is only meaningful for the player (XP thresholds).
	Level int `json:"level,omitempty"`
}

// New creates an entity at the given position. It starts not-alive with
// no components attached.
func New(x, y int, glyph rune, name, color string, blocks bool) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
		Name:   name,
		Blocks: blocks,
		Level:  1,
	}
}

// Pos returns the entity's grid position.
func (e *Entity) Pos() (int, int) {
	return e.X, e.Y
}

// SetPos moves the entity to the given grid position.
func (e *Entity) SetPos(x, y int) {
	e.X = x
	e.Y = y
}

// Distance returns the Euclidean distance from the entity to a tile.
func (e *Entity) Distance(x, y int) float64 {
	dx := float64(x - e.X)
	dy := float64(y - e.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceTo returns the Euclidean distance between two entities.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Distance(other.X, other.Y)
}

// IsPlayer reports whether this entity is the player.
func (e *Entity) IsPlayer() bool {
	return e.Name == PlayerName
}

// List is the ordered entity collection for a dungeon level. Index 0 is
// always the player; that ordering is load-bearing for all downstream
// indexing.
type List []Entity

// Player returns the player entity.
func (l List) Player() *Entity {
	return &l[PlayerIndex]
}

// PlayerIndex is the fixed index of the player in a List.
const PlayerIndex = 0

// MutTwo returns mutable access to two distinct entities at once, as
// needed by attack resolution (attacker and defender live in the same
// collection). Equal indices are a programmer error.
func (l List) MutTwo(i, j int) (*Entity, *Entity) {
	if i == j {
		panic(fmt.Sprintf("entity: MutTwo called with equal indices %d", i))
	}
	return &l[i], &l[j]
}

// At returns the index of the first entity satisfying pred, or -1.
func (l List) At(pred func(*Entity) bool) int {
	for i := range l {
		if pred(&l[i]) {
			return i
		}
	}
	return -1
}
