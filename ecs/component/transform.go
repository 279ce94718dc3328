package component

// Transform is the world-space center of an entity. The world is y-up and
// Rotation is in degrees, counter-clockwise.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
