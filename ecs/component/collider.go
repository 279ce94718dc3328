package component

// Collider is an axis-aligned box centered on the entity's Transform.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()
