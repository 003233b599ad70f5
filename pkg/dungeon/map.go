package dungeon

import "github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"

// Default map dimensions, matching the console's map panel.
const (
	MapWidth  = 80
	MapHeight = 43
)

// Map is the tile grid for one dungeon level, indexed [x][y].
type Map struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"`
}

// NewMap returns a map of the given size filled with wall tiles.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = WallTile()
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether the tile coordinates lie on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsBlocked reports whether a destination cell cannot be entered:
// either the tile itself is blocked or a blocking entity occupies it.
func (m *Map) IsBlocked(x, y int, entities entity.List) bool {
	if !m.InBounds(x, y) || m.Tiles[x][y].Blocked {
		return true
	}
	for i := range entities {
		e := &entities[i]
		if e.Blocks && e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

func (m *Map) carveRoom(room Rect) {
	// Interior only; the 1-tile border stays wall.
	for x := room.X1 + 1; x < room.X2; x++ {
		for y := room.Y1 + 1; y < room.Y2; y++ {
			m.Tiles[x][y] = EmptyTile()
		}
	}
}

func (m *Map) carveHTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.Tiles[x][y] = EmptyTile()
	}
}

func (m *Map) carveVTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.Tiles[x][y] = EmptyTile()
	}
}
