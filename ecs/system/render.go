package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var skyColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

// RenderSystem draws the world through the session viewport. The world is
// y-up; the screen is y-down.
type RenderSystem struct {
	face *text.GoXFace
	// ScoreScale enlarges the 13px bitmap face towards an 18pt label.
	ScoreScale float64
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		face:       text.NewGoXFace(basicfont.Face7x13),
		ScoreScale: 1.5,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(skyColor)

	var vp component.Viewport
	if v, ok := sessionComponent(w, component.ViewportComponent.Kind()); ok {
		vp = *v
	}
	if vp.Height == 0 {
		vp.Height = float64(screen.Bounds().Dy())
	}

	for _, e := range DrawOrder(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)
		op.GeoM.Scale(sx, sy)
		// counter-clockwise in a y-up world is clockwise on screen
		op.GeoM.Rotate(-t.Rotation * math.Pi / 180)
		op.GeoM.Translate(ToScreen(vp, t.X, t.Y))
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(img, op)
	}

	r.drawScore(w, screen, vp)
}

func (r *RenderSystem) drawScore(w *ecs.World, screen *ebiten.Image, vp component.Viewport) {
	score := 0
	if s, ok := sessionComponent(w, component.ScoreComponent.Kind()); ok {
		score = s.Value
	}

	// anchored at (10, 10) above the viewport's bottom-left corner
	x, y := ToScreen(vp, vp.Left+10, vp.Bottom+10)
	op := &text.DrawOptions{}
	op.GeoM.Scale(r.ScoreScale, r.ScoreScale)
	op.GeoM.Translate(x, y-r.face.Metrics().HAscent*r.ScoreScale)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, ScoreText(score), r.face, op)
}

// ScoreText is the label drawn in the bottom-left corner.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// ToScreen converts a world point to screen pixels for the viewport.
func ToScreen(vp component.Viewport, x, y float64) (float64, float64) {
	return x - vp.Left, vp.Height - (y - vp.Bottom)
}

// DrawOrder returns the drawable entities sorted by render layer, then by
// creation order within a layer.
func DrawOrder(w *ecs.World) []ecs.Entity {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return layer(entities[i]) < layer(entities[j])
	})
	return entities
}
