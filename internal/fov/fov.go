// Package fov computes the player's field of view. The core engine
// treats visibility as a black-box oracle; this implementation backs
// that oracle for both the console client and the HTTP API using
// radius-limited line of sight.
package fov

import (
	"math"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/dungeon"
)

// TorchRadius is the player's sight radius in tiles.
const TorchRadius = 10

// Oracle holds the visibility set for the current player position. It
// satisfies combat.FOV.
type Oracle struct {
	width   int
	height  int
	visible []bool
}

// New returns an oracle for a map of the given dimensions with nothing
// visible yet.
func New(width, height int) *Oracle {
	return &Oracle{
		width:   width,
		height:  height,
		visible: make([]bool, width*height),
	}
}

// IsVisible reports whether the tile was visible at the last
// Recompute.
func (o *Oracle) IsVisible(x, y int) bool {
	if x < 0 || x >= o.width || y < 0 || y >= o.height {
		return false
	}
	return o.visible[y*o.width+x]
}

// Recompute rebuilds the visibility set around the player's position
// and marks every visible tile as explored. Explored never resets.
func (o *Oracle) Recompute(m *dungeon.Map, px, py, radius int) {
	clear(o.visible)

	for x := px - radius; x <= px+radius; x++ {
		for y := py - radius; y <= py+radius; y++ {
			if !m.InBounds(x, y) {
				continue
			}
			dx := float64(x - px)
			dy := float64(y - py)
			if math.Sqrt(dx*dx+dy*dy) > float64(radius) {
				continue
			}
			if lineOfSight(m, px, py, x, y) {
				o.visible[y*o.width+x] = true
				m.Tiles[x][y].Explored = true
			}
		}
	}
}

// lineOfSight walks a Bresenham line from the eye to the target tile;
// the target is visible unless a sight-blocking tile sits strictly
// between them. The target tile itself may block sight and still be
// seen (walls are visible).
func lineOfSight(m *dungeon.Map, x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			return true
		}
		if (x != x0 || y != y0) && m.Tiles[x][y].BlocksSight {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
