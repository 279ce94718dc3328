package system

import (
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/physics"
)

// BulletCollisionSystem destroys each bullet together with the first platform
// it overlaps, and drops bullets that left the level.
type BulletCollisionSystem struct {
	// Margin is how far past the level bounds a bullet may travel.
	Margin float64
}

func NewBulletCollisionSystem(margin float64) *BulletCollisionSystem {
	return &BulletCollisionSystem{Margin: margin}
}

func (s *BulletCollisionSystem) Update(w *ecs.World) {
	platforms, boxes := boxesOf(w, component.PlatformComponent.Kind())
	bounds, hasBounds := sessionComponent(w, component.LevelBoundsComponent.Kind())

	for _, bullet := range w.Query(component.BulletComponent.Kind(), component.TransformComponent.Kind()) {
		bb, ok := boxOf(w, bullet)
		if !ok {
			continue
		}

		if i, hit := physics.FirstOverlap(bb, boxes); hit {
			block := platforms[i]
			ecs.DestroyEntity(w, bullet)
			ecs.DestroyEntity(w, block)
			w.Events().Push(ecs.Event{Type: ecs.EventBlockDestroyed, Data: block})

			platforms = append(platforms[:i], platforms[i+1:]...)
			boxes = append(boxes[:i], boxes[i+1:]...)
			continue
		}

		if hasBounds && s.outside(w, bullet, bounds) {
			ecs.DestroyEntity(w, bullet)
		}
	}
}

func (s *BulletCollisionSystem) outside(w *ecs.World, e ecs.Entity, b *component.LevelBounds) bool {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	return !b.Contains(t.X, t.Y, s.Margin)
}
