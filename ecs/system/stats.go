package system

import (
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

// StatsSystem tallies the frame's events into the session Stats. It must run
// last so it sees every event before the scheduler flushes the queue.
type StatsSystem struct{}

func NewStatsSystem() *StatsSystem {
	return &StatsSystem{}
}

func (s *StatsSystem) Update(w *ecs.World) {
	stats, ok := sessionComponent(w, component.StatsComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range w.Events().Peek() {
		switch evt.Type {
		case ecs.EventBulletFired:
			stats.ShotsFired++
		case ecs.EventBlockDestroyed:
			stats.BlocksDestroyed++
		case ecs.EventPickupCollected:
			p, ok := evt.Data.(PickupCollected)
			if !ok {
				continue
			}
			switch p.Kind {
			case component.PickupGold:
				stats.GoldCollected++
			case component.PickupCoal:
				stats.CoalCollected++
			}
		}
	}
}
