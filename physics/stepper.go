package physics

import "github.com/jakecoffman/cp"

// Body is the kinematic state of a moving box. X and Y are the box center and
// VX, VY are per-tick displacements.
type Body struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64
}

// Box returns the body's bounding box.
func (b Body) Box() cp.BB {
	return Box(b.X, b.Y, b.Width, b.Height)
}

// Solid is a static collider. ID must stay stable for as long as the solid
// exists.
type Solid struct {
	ID  uint64
	Box cp.BB
}

// Stepper advances a body by one tick under gravity, resolving collisions with
// the given solids.
type Stepper interface {
	Step(body Body, solids []Solid) Body
}
