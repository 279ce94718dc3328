package entity

import (
	"fmt"

	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/prefabs"
)

// NewPlayerAt creates the player centered on (x, y), facing right and idle.
func NewPlayerAt(w *ecs.World, textures *component.TextureSet, spec prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}

	width, height := spec.Collider.Width, spec.Collider.Height
	if (width <= 0 || height <= 0) && textures != nil && textures.Idle[component.FacingRight] != nil {
		b := textures.Idle[component.FacingRight].Bounds()
		width, height = float64(b.Dx()), float64(b.Dy())
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("player: no collider size and no idle texture")
	}

	anim := &component.Animation{
		Textures: textures,
		Facing:   component.FacingRight,
		Frames:   spec.WalkFrames,
		Pose:     component.PoseIdle,
	}

	e := ecs.CreateEntity(w)
	adds := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed}),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: scale, ScaleY: scale}),
		ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: width * scale, Height: height * scale}),
		ecs.Add(w, e, component.AnimationComponent.Kind(), anim),
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: anim.Texture()}),
		ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer}),
	}
	for _, err := range adds {
		if err != nil {
			return 0, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}
