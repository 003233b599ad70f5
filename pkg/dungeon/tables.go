package dungeon

import "math/rand/v2"

// Transition is one step of a fortune table: from Level onward the
// table yields Value, until a later transition overrides it.
type Transition struct {
	Level int
	Value int
}

// FromDungeonLevel resolves a fortune table for the current level: the
// value of the highest threshold at or below level, or zero when none
// match. Tables must be sorted by ascending level.
func FromDungeonLevel(table []Transition, level int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if level >= table[i].Level {
			return table[i].Value
		}
	}
	return 0
}

// Population tables. Deeper levels allow more spawns per room and shift
// the kind weights toward the nastier options.
var (
	maxMonstersTable = []Transition{{1, 2}, {4, 3}, {6, 5}}
	maxItemsTable    = []Transition{{1, 1}, {4, 2}}

	trollChanceTable    = []Transition{{3, 15}, {5, 30}, {7, 60}}
	lightningWeightable = []Transition{{4, 25}}
	fireballWeightable  = []Transition{{6, 25}}
	confuseWeightable   = []Transition{{2, 10}}
	swordWeightable     = []Transition{{4, 5}}
	shieldWeightable    = []Transition{{8, 15}}
)

const orcWeight = 80
const healWeight = 35

type weighted[T any] struct {
	weight int
	item   T
}

// pickWeighted draws one item with probability proportional to its
// weight. Zero-weight entries are never drawn; at least one entry must
// carry positive weight.
func pickWeighted[T any](rng *rand.Rand, choices []weighted[T]) T {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	n := rng.IntN(total)
	for _, c := range choices {
		if n < c.weight {
			return c.item
		}
		n -= c.weight
	}
	// Unreachable with a positive total.
	return choices[len(choices)-1].item
}
