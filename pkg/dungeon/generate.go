package dungeon

import (
	"errors"
	"math/rand/v2"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
)

// Room generation bounds.
const (
	MaxRooms    = 30
	RoomMinSize = 6
	RoomMaxSize = 10

	// A layout with zero accepted rooms is possible in principle
	// (pathological random failure); the whole layout is retried a
	// bounded number of times before giving up.
	maxLayoutRetries = 10

	// Spawn cells are resampled a bounded number of times before the
	// spawn is skipped, instead of looping forever on a full room.
	maxPlacementTries = 10
)

// ErrNoRooms is returned when repeated layout attempts never accept a
// single room.
var ErrNoRooms = errors.New("dungeon: no rooms could be placed")

// Generate builds the tile map for a dungeon level and populates it in
// place: everything but the player is discarded from entities, then
// monsters, items, and the stairs marker are appended. The player is
// moved to the center of the first accepted room.
func Generate(entities *entity.List, level int, rng *rand.Rand) (*Map, error) {
	for try := 0; try < maxLayoutRetries; try++ {
		if m, ok := layout(entities, level, rng); ok {
			return m, nil
		}
	}
	return nil, ErrNoRooms
}

func layout(entities *entity.List, level int, rng *rand.Rand) (*Map, bool) {
	m := NewMap(MapWidth, MapHeight)

	// The player must stay at index 0; everything else belongs to the
	// previous level.
	*entities = (*entities)[:1]

	var rooms []Rect
	for i := 0; i < MaxRooms; i++ {
		w := RoomMinSize + rng.IntN(RoomMaxSize-RoomMinSize+1)
		h := RoomMinSize + rng.IntN(RoomMaxSize-RoomMinSize+1)
		x := rng.IntN(MapWidth - w)
		y := rng.IntN(MapHeight - h)

		room := NewRect(x, y, w, h)
		overlaps := false
		for _, other := range rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			// Rejected candidates are skipped, not retried.
			continue
		}

		m.carveRoom(room)
		populateRoom(m, room, entities, level, rng)

		cx, cy := room.Center()
		if len(rooms) == 0 {
			entities.Player().SetPos(cx, cy)
		} else {
			px, py := rooms[len(rooms)-1].Center()
			if rng.IntN(2) == 0 {
				m.carveHTunnel(px, cx, py)
				m.carveVTunnel(py, cy, cx)
			} else {
				m.carveVTunnel(py, cy, px)
				m.carveHTunnel(px, cx, cy)
			}
		}
		rooms = append(rooms, room)
	}

	if len(rooms) == 0 {
		return nil, false
	}

	sx, sy := rooms[len(rooms)-1].Center()
	stairs := entity.New(sx, sy, '<', StairsName, entity.ColorWhite, false)
	stairs.AlwaysVisible = true
	*entities = append(*entities, stairs)

	return m, true
}

// StairsName identifies the stairs-down marker entity.
const StairsName = "stairs"

func populateRoom(m *Map, room Rect, entities *entity.List, level int, rng *rand.Rand) {
	maxMonsters := FromDungeonLevel(maxMonstersTable, level)
	numMonsters := rng.IntN(maxMonsters + 1)

	monsterChances := []weighted[func(x, y int) entity.Entity]{
		{orcWeight, newOrc},
		{FromDungeonLevel(trollChanceTable, level), newTroll},
	}

	for i := 0; i < numMonsters; i++ {
		x, y, ok := freeSpot(m, room, *entities, rng)
		if !ok {
			continue
		}
		monster := pickWeighted(rng, monsterChances)(x, y)
		monster.Alive = true
		*entities = append(*entities, monster)
	}

	maxItems := FromDungeonLevel(maxItemsTable, level)
	numItems := rng.IntN(maxItems + 1)

	itemChances := []weighted[func(x, y int) entity.Entity]{
		{healWeight, newHealingPotion},
		{FromDungeonLevel(lightningWeightable, level), newLightningScroll},
		{FromDungeonLevel(fireballWeightable, level), newFireballScroll},
		{FromDungeonLevel(confuseWeightable, level), newConfusionScroll},
		{FromDungeonLevel(swordWeightable, level), newSword},
		{FromDungeonLevel(shieldWeightable, level), newShield},
	}

	for i := 0; i < numItems; i++ {
		x, y, ok := freeSpot(m, room, *entities, rng)
		if !ok {
			continue
		}
		item := pickWeighted(rng, itemChances)(x, y)
		item.AlwaysVisible = true
		*entities = append(*entities, item)
	}
}

// freeSpot samples interior cells until it finds one that is neither
// blocked nor occupied by any entity, or gives up after a bounded
// number of tries.
func freeSpot(m *Map, room Rect, entities entity.List, rng *rand.Rand) (int, int, bool) {
	for try := 0; try < maxPlacementTries; try++ {
		x := room.X1 + 1 + rng.IntN(room.X2-room.X1-1)
		y := room.Y1 + 1 + rng.IntN(room.Y2-room.Y1-1)
		if m.IsBlocked(x, y, entities) {
			continue
		}
		occupied := false
		for i := range entities {
			if entities[i].X == x && entities[i].Y == y {
				occupied = true
				break
			}
		}
		if !occupied {
			return x, y, true
		}
	}
	return 0, 0, false
}
