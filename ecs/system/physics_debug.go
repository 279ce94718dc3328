package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/physics"
)

// DrawPhysicsDebug outlines the stepper's merged solids and the player body.
func DrawPhysicsDebug(stepper *physics.ChipmunkStepper, w *ecs.World, screen *ebiten.Image) {
	if stepper == nil || w == nil || screen == nil {
		return
	}

	var vp component.Viewport
	if v, ok := sessionComponent(w, component.ViewportComponent.Kind()); ok {
		vp = *v
	}
	if vp.Height == 0 {
		vp.Height = float64(screen.Bounds().Dy())
	}
	stepper.DrawDebug(screen, func(x, y float64) (float64, float64) {
		return ToScreen(vp, x, y)
	})
}

// DrawPlayerDebug prints the player's position and the session counters in
// the top-left corner.
func DrawPlayerDebug(stepper *physics.ChipmunkStepper, w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	facing := component.FacingRight
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		facing = anim.Facing
	}

	msg := fmt.Sprintf("pos: %.1f, %.1f  facing: %s\nTPS: %0.1f  FPS: %0.1f",
		t.X, t.Y, facing, ebiten.ActualTPS(), ebiten.ActualFPS())
	if stats, ok := sessionComponent(w, component.StatsComponent.Kind()); ok {
		msg += fmt.Sprintf("\nshots: %d  blocks: %d  gold: %d  coal: %d",
			stats.ShotsFired, stats.BlocksDestroyed, stats.GoldCollected, stats.CoalCollected)
	}
	if stepper != nil {
		msg += fmt.Sprintf("\nsolids: %d", stepper.StaticShapeCount())
	}
	ebitenutil.DebugPrint(screen, msg)
}
