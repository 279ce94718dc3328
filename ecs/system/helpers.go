package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/physics"
)

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}

func sessionEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.SessionTagComponent.Kind())
}

// sessionComponent returns the kind stored on the session entity.
func sessionComponent[T any](w *ecs.World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := sessionEntity(w)
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, kind)
}

// boxOf returns the world-space collision box of e.
func boxOf(w *ecs.World, e ecs.Entity) (cp.BB, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	return physics.Box(t.X, t.Y, c.Width, c.Height), true
}

// boxesOf collects the boxes of every entity owning kind, in entity order.
func boxesOf[T any](w *ecs.World, kind component.ComponentKind[T]) ([]ecs.Entity, []cp.BB) {
	var ents []ecs.Entity
	var boxes []cp.BB
	for _, e := range w.Query(kind, component.TransformComponent.Kind(), component.ColliderComponent.Kind()) {
		bb, ok := boxOf(w, e)
		if !ok {
			continue
		}
		ents = append(ents, e)
		boxes = append(boxes, bb)
	}
	return ents, boxes
}
