package entity

import (
	"fmt"

	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/prefabs"
)

// NewSession creates the singleton entity holding score, stats, viewport,
// level bounds and sounds. The viewport starts at the origin.
func NewSession(w *ecs.World, vp prefabs.ViewportSpec, bounds component.LevelBounds, sounds *component.Audio) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	adds := []error{
		ecs.Add(w, e, component.SessionTagComponent.Kind(), &component.SessionTag{}),
		ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{}),
		ecs.Add(w, e, component.StatsComponent.Kind(), &component.Stats{}),
		ecs.Add(w, e, component.ViewportComponent.Kind(), &component.Viewport{
			Width:        vp.Width,
			Height:       vp.Height,
			MarginLeft:   vp.MarginLeft,
			MarginRight:  vp.MarginRight,
			MarginBottom: vp.MarginBottom,
			MarginTop:    vp.MarginTop,
		}),
		ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &bounds),
	}
	if sounds != nil {
		adds = append(adds, ecs.Add(w, e, component.AudioComponent.Kind(), sounds))
	}
	for _, err := range adds {
		if err != nil {
			return 0, fmt.Errorf("session: %w", err)
		}
	}
	return e, nil
}
