package dungeon

// Rect is a room's bounding rectangle. X2/Y2 are inclusive of the
// 1-tile wall border; only the interior is carved.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from a top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the rectangle's center tile.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether two rectangles overlap, bounds inclusive.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
