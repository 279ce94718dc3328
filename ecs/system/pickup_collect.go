package system

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/physics"
)

// PickupCollected is the payload of EventPickupCollected.
type PickupCollected struct {
	Entity ecs.Entity
	Kind   component.PickupKind
	Value  int
}

// PickupCollectSystem collects the gold and coal the player overlaps.
type PickupCollectSystem struct {
	Script *ScoreScript
	// CoalRequiresGold collects coal only in frames where gold was collected.
	// Each coal is still collected at most once per frame.
	CoalRequiresGold bool
}

func NewPickupCollectSystem(script *ScoreScript, coalRequiresGold bool) *PickupCollectSystem {
	return &PickupCollectSystem{Script: script, CoalRequiresGold: coalRequiresGold}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := playerEntity(w)
	if !ok {
		return
	}
	pb, ok := boxOf(w, player)
	if !ok {
		return
	}

	gold := s.hits(w, pb, component.PickupGold)
	coal := s.hits(w, pb, component.PickupCoal)

	for _, e := range gold {
		s.collect(w, e)
		if s.CoalRequiresGold {
			for _, c := range coal {
				if w.IsAlive(c) {
					s.collect(w, c)
				}
			}
		}
	}

	if s.CoalRequiresGold {
		return
	}
	for _, e := range coal {
		s.collect(w, e)
	}
}

func (s *PickupCollectSystem) hits(w *ecs.World, pb cp.BB, kind component.PickupKind) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, p *component.Pickup) {
		if p.Kind != kind {
			return
		}
		if bb, ok := boxOf(w, e); ok && physics.Overlaps(pb, bb) {
			out = append(out, e)
		}
	})
	return out
}

func (s *PickupCollectSystem) collect(w *ecs.World, e ecs.Entity) {
	p, ok := ecs.Get(w, e, component.PickupComponent.Kind())
	if !ok {
		return
	}
	kind := p.Kind

	points := p.Points
	if !p.HasPoints {
		log.Warn("collected a pickup without a Points property", "kind", kind, "entity", e)
		points = 0
	}

	value, err := s.Script.Value(kind, points)
	if err != nil {
		log.Error("score script failed", "script", s.Script.Name(), "kind", kind, "err", err)
		value = points
	}
	// score never decreases
	if value < 0 {
		value = 0
	}
	if score, ok := sessionComponent(w, component.ScoreComponent.Kind()); ok {
		score.Value += value
	}

	ecs.DestroyEntity(w, e)
	if audio, ok := sessionComponent(w, component.AudioComponent.Kind()); ok {
		audio.Request(string(kind))
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPickupCollected, Data: PickupCollected{Entity: e, Kind: kind, Value: value}})
}
