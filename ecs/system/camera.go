package system

import (
	"math"

	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

// CameraSystem scrolls the viewport so the player stays inside its margins.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	vp, ok := sessionComponent(w, component.ViewportComponent.Kind())
	if !ok {
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

	changed := false

	if left := vp.Left + vp.MarginLeft; pb.L < left {
		vp.Left -= left - pb.L
		changed = true
	}
	if right := vp.Left + vp.Width - vp.MarginRight; pb.R > right {
		vp.Left += pb.R - right
		changed = true
	}
	if top := vp.Bottom + vp.Height - vp.MarginTop; pb.T > top {
		vp.Bottom += pb.T - top
		changed = true
	}
	if bottom := vp.Bottom + vp.MarginBottom; pb.B < bottom {
		vp.Bottom -= bottom - pb.B
		changed = true
	}

	if !changed {
		return
	}
	// whole pixels only, so tiles line up on screen
	vp.Left = math.Trunc(vp.Left)
	vp.Bottom = math.Trunc(vp.Bottom)
	w.Events().Push(ecs.Event{Type: ecs.EventViewportChanged, Data: *vp})
}
