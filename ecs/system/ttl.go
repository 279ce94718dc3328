package system

import (
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

// TTLSystem counts down entity lifetimes and destroys the entities whose
// count reaches zero. A TTL that starts at zero expires on the next tick.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	var expired []ecs.Entity
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames--
		if ttl.Frames <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		ecs.DestroyEntity(w, e)
	}
}
