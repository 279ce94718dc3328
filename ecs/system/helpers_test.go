package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

type testScene struct {
	w       *ecs.World
	session ecs.Entity
	player  ecs.Entity
}

// newTestScene builds a session entity with a 1000x500 viewport and a 64x64
// player at (x, y) moving at 7 px per tick.
func newTestScene(t *testing.T, x, y float64) *testScene {
	t.Helper()
	w := ecs.NewWorld()

	session := ecs.CreateEntity(w)
	mustAdd(t, w, session, component.SessionTagComponent.Kind(), &component.SessionTag{})
	mustAdd(t, w, session, component.ScoreComponent.Kind(), &component.Score{})
	mustAdd(t, w, session, component.StatsComponent.Kind(), &component.Stats{})
	mustAdd(t, w, session, component.ViewportComponent.Kind(), &component.Viewport{
		Width: 1000, Height: 500,
		MarginLeft: 200, MarginRight: 200, MarginBottom: 150, MarginTop: 100,
	})
	mustAdd(t, w, session, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 5120, Height: 7680})
	mustAdd(t, w, session, component.AudioComponent.Kind(), &component.Audio{
		Names:   []string{"gold", "coal"},
		Voices:  [][]*audio.Player{make([]*audio.Player, 2), make([]*audio.Player, 2)},
		Volume:  []float64{1, 1},
		Pending: make([]int, 2),
		Next:    make([]int, 2),
	})

	player := ecs.CreateEntity(w)
	mustAdd(t, w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, player, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 7})
	mustAdd(t, w, player, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, player, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, player, component.ColliderComponent.Kind(), &component.Collider{Width: 64, Height: 64})
	mustAdd(t, w, player, component.SpriteComponent.Kind(), &component.Sprite{})
	mustAdd(t, w, player, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer})
	mustAdd(t, w, player, component.AnimationComponent.Kind(), &component.Animation{
		Textures: &component.TextureSet{Walk: make([]component.TexturePair, 8)},
	})

	return &testScene{w: w, session: session, player: player}
}

func (s *testScene) addPlatform(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(s.w)
	mustAdd(t, s.w, e, component.PlatformComponent.Kind(), &component.Platform{})
	mustAdd(t, s.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, s.w, e, component.ColliderComponent.Kind(), &component.Collider{Width: 128, Height: 128})
	mustAdd(t, s.w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	mustAdd(t, s.w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlatforms})
	return e
}

func (s *testScene) addPickup(t *testing.T, kind component.PickupKind, x, y float64, points int, hasPoints bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(s.w)
	mustAdd(t, s.w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: kind, Points: points, HasPoints: hasPoints})
	mustAdd(t, s.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, s.w, e, component.ColliderComponent.Kind(), &component.Collider{Width: 128, Height: 128})
	return e
}

func (s *testScene) score(t *testing.T) int {
	t.Helper()
	score, ok := ecs.Get(s.w, s.session, component.ScoreComponent.Kind())
	if !ok {
		t.Fatal("session has no score")
	}
	return score.Value
}

func (s *testScene) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(s.w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func (s *testScene) velocity(t *testing.T, e ecs.Entity) *component.Velocity {
	t.Helper()
	v, ok := ecs.Get(s.w, e, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no velocity", e)
	}
	return v
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
