package system

import (
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/physics"
)

// PhysicsSystem moves the player through the stepper, with every platform
// passed in as a solid.
type PhysicsSystem struct {
	stepper physics.Stepper
	solids  []physics.Solid
}

func NewPhysicsSystem(stepper physics.Stepper) *PhysicsSystem {
	return &PhysicsSystem{stepper: stepper}
}

func (ps *PhysicsSystem) Stepper() physics.Stepper {
	return ps.stepper
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.stepper == nil || w == nil {
		return
	}

	player, ok := playerEntity(w)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	v, ok := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	c, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return
	}

	ps.solids = ps.solids[:0]
	platforms, boxes := boxesOf(w, component.PlatformComponent.Kind())
	for i, e := range platforms {
		ps.solids = append(ps.solids, physics.Solid{ID: uint64(e), Box: boxes[i]})
	}

	out := ps.stepper.Step(physics.Body{
		X: t.X, Y: t.Y,
		VX: v.X, VY: v.Y,
		Width: c.Width, Height: c.Height,
	}, ps.solids)

	t.X, t.Y = out.X, out.Y
	// horizontal speed belongs to the input handler
	v.Y = out.VY
}
