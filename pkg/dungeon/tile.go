package dungeon

// Tile is one cell of the dungeon grid. Tiles start as walls and are
// carved to empty by room and corridor placement. Explored flips true
// the first time the tile enters the player's visibility set and never
// resets.
type Tile struct {
	Blocked     bool `json:"blocked"`
	BlocksSight bool `json:"blocks_sight"`
	Explored    bool `json:"explored"`
}

// WallTile returns a solid, sight-blocking tile.
func WallTile() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// EmptyTile returns a walkable, sight-passing tile.
func EmptyTile() Tile {
	return Tile{}
}
