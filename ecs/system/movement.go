package system

import (
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

// MovementSystem applies velocity to every kinematic entity. The player is
// moved by PhysicsSystem instead.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			return
		}
		t.X += v.X
		t.Y += v.Y
	})
}
