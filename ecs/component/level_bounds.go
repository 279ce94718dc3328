package component

// LevelBounds is the world-space size of the loaded map, anchored at the
// origin.
type LevelBounds struct {
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies within the bounds grown by margin on
// every side.
func (b LevelBounds) Contains(x, y, margin float64) bool {
	return x >= -margin && x <= b.Width+margin && y >= -margin && y <= b.Height+margin
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
