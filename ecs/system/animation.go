package system

import (
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, anim *component.Animation, vel *component.Velocity) {
		UpdateAnimation(anim, vel.X)
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Image = anim.Texture()
		}
	})
}

// UpdateAnimation turns the character towards its horizontal motion and picks
// the idle texture when standing still, or the next walk frame otherwise. The
// cycle advances whether or not textures are loaded.
func UpdateAnimation(anim *component.Animation, changeX float64) {
	if anim == nil {
		return
	}

	switch {
	case changeX < 0 && anim.Facing == component.FacingRight:
		anim.Facing = component.FacingLeft
	case changeX > 0 && anim.Facing == component.FacingLeft:
		anim.Facing = component.FacingRight
	}

	if changeX == 0 {
		anim.Pose = component.PoseIdle
		return
	}

	frames := anim.CycleLength()
	if frames == 0 {
		anim.Pose = component.PoseIdle
		return
	}

	anim.Frame = (anim.Frame + 1) % frames
	anim.Pose = component.PoseWalk
}
