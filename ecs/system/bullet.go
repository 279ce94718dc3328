package system

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

// BulletConfig describes the projectile fired on click. Width and Height are
// the collider size in world pixels.
type BulletConfig struct {
	Image      *ebiten.Image
	Speed      float64
	Scale      float64
	Width      float64
	Height     float64
	LifeFrames int
}

// SpawnBullet fires a bullet from the player's center towards the screen point
// (x, y), offset by the viewport into world space.
func SpawnBullet(w *ecs.World, cfg BulletConfig, x, y float64) (ecs.Entity, bool) {
	player, ok := playerEntity(w)
	if !ok {
		return 0, false
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}

	destX, destY := x, y
	if vp, ok := sessionComponent(w, component.ViewportComponent.Kind()); ok {
		destX += vp.Left
		destY += vp.Bottom
	}

	angle := math.Atan2(destY-pt.Y, destX-pt.X)
	degrees := angle * 180 / math.Pi
	log.Info("bullet fired", "angle", fmt.Sprintf("%.2f", degrees))

	scale := cfg.Scale
	if scale == 0 {
		scale = 1
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        pt.X,
		Y:        pt.Y,
		ScaleX:   scale,
		ScaleY:   scale,
		Rotation: degrees,
	})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{
		X: math.Cos(angle) * cfg.Speed,
		Y: math.Sin(angle) * cfg.Speed,
	})
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: cfg.Width, Height: cfg.Height})
	_ = ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Speed: cfg.Speed, Angle: degrees})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: cfg.Image})
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBullets})
	if cfg.LifeFrames > 0 {
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: cfg.LifeFrames})
	}

	w.Events().Push(ecs.Event{Type: ecs.EventBulletFired, Data: e})
	return e, true
}
