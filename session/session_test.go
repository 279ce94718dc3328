package session

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/milk9111/digger/common"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/ecs/system"
	"github.com/milk9111/digger/prefabs"
	"github.com/milk9111/digger/storage"
)

type scriptedInput struct {
	frames []system.InputFrame
}

func (s *scriptedInput) Poll() system.InputFrame {
	if len(s.frames) == 0 {
		return system.InputFrame{}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

func (s *scriptedInput) push(f system.InputFrame) {
	s.frames = append(s.frames, f)
}

func testSpec(t *testing.T) *prefabs.GameSpec {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}
	// headless sessions have no texture to size the player from
	spec.Player.Collider = prefabs.ColliderSpec{Width: 128, Height: 128}
	return spec
}

func newTestSession(t *testing.T, opts Options) (*Session, *scriptedInput) {
	t.Helper()
	in := &scriptedInput{}
	opts.Headless = true
	opts.Input = in
	if opts.Spec == nil {
		opts.Spec = testSpec(t)
	}
	s, err := New(opts)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, in
}

func playerState(t *testing.T, s *Session) (*component.Transform, *component.Animation) {
	t.Helper()
	player, ok := s.Player()
	if !ok {
		t.Fatal("no player")
	}
	tr, _ := ecs.Get(s.World(), player, component.TransformComponent.Kind())
	anim, _ := ecs.Get(s.World(), player, component.AnimationComponent.Kind())
	return tr, anim
}

func run(t *testing.T, s *Session, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
}

func countPickups(s *Session, kind component.PickupKind) int {
	n := 0
	ecs.ForEach(s.World(), component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		if p.Kind == kind {
			n++
		}
	})
	return n
}

func TestNewSessionStartsAtSpawn(t *testing.T) {
	s, _ := newTestSession(t, Options{})

	tr, anim := playerState(t, s)
	if tr.X != common.PlayerStartX || tr.Y != common.PlayerStartY {
		t.Fatalf("expected start %v,%v, got %v,%v", common.PlayerStartX, common.PlayerStartY, tr.X, tr.Y)
	}
	if anim.Facing != component.FacingRight {
		t.Fatalf("expected facing right, got %v", anim.Facing)
	}
	if s.Score() != 0 {
		t.Fatalf("expected score 0, got %d", s.Score())
	}
	if vp := s.Viewport(); vp.Left != 0 || vp.Bottom != 0 {
		t.Fatalf("expected viewport at origin, got %v,%v", vp.Left, vp.Bottom)
	}
	if countPickups(s, component.PickupGold) == 0 || len(s.World().Query(component.PlatformComponent.Kind())) == 0 {
		t.Fatal("expected the map to populate platforms and gold")
	}
}

func TestWalkRightForOneSecond(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	gold := countPickups(s, component.PickupGold)

	if err := s.KeyDown(system.KeyRight); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 60; i++ {
		run(t, s, 1)
		// headless sessions still cycle the 8 walk frames
		if _, anim := playerState(t, s); anim.Pose != component.PoseWalk || anim.Frame != i%8 {
			t.Fatalf("frame %d: expected walk frame %d, got frame=%d pose=%v", i, i%8, anim.Frame, anim.Pose)
		}
	}

	tr, anim := playerState(t, s)
	if math.Abs(tr.X-996) > 0.01 {
		t.Fatalf("expected x≈996 after 60 frames at 7 px, got %v", tr.X)
	}
	if anim.Facing != component.FacingRight {
		t.Fatalf("expected facing right, got %v", anim.Facing)
	}
	if anim.Frame != 60%8 {
		t.Fatalf("expected walk frame 4 after 60 frames, got %d", anim.Frame)
	}
	// the first gold above the surface sits at x 896..1024
	if s.Score() != 50 || countPickups(s, component.PickupGold) != gold-1 {
		t.Fatalf("expected one gold collected for 50, got score %d", s.Score())
	}
	if vp := s.Viewport(); vp.Left <= 0 || vp.Left != math.Trunc(vp.Left) {
		t.Fatalf("expected a whole-pixel scroll to the right, got %v", vp.Left)
	}
}

func TestIdlePlayerLandsOnSurface(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	run(t, s, 60)

	tr, anim := playerState(t, s)
	// 80px tall player resting on the surface at y=6144
	if math.Abs(tr.Y-6184) > 1 {
		t.Fatalf("expected player resting at y≈6184, got %v", tr.Y)
	}
	if tr.X != common.PlayerStartX {
		t.Fatalf("idle player drifted to x=%v", tr.X)
	}
	if anim.Pose != component.PoseIdle {
		t.Fatalf("expected idle pose, got %v", anim.Pose)
	}
}

func TestShootBlockBelow(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	run(t, s, 60)

	platforms := len(s.World().Query(component.PlatformComponent.Kind()))
	tr, _ := playerState(t, s)
	vp := s.Viewport()

	bullet, ok := s.Click(tr.X-vp.Left, tr.Y-200-vp.Bottom)
	if !ok {
		t.Fatal("click did not fire")
	}
	run(t, s, 10)

	if s.World().IsAlive(bullet) {
		t.Fatal("bullet should have hit the block under the player")
	}
	if got := len(s.World().Query(component.PlatformComponent.Kind())); got != platforms-1 {
		t.Fatalf("expected exactly one block destroyed, %d -> %d", platforms, got)
	}
	if st := s.Stats(); st.ShotsFired != 1 || st.BlocksDestroyed != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestBulletExpires(t *testing.T) {
	spec := testSpec(t)
	spec.Bullet.LifeFrames = 5
	s, _ := newTestSession(t, Options{Spec: spec})
	run(t, s, 60)

	// straight up into open sky
	tr, _ := playerState(t, s)
	vp := s.Viewport()
	bullet, _ := s.Click(tr.X-vp.Left, tr.Y+100-vp.Bottom)
	run(t, s, 4)
	if !s.World().IsAlive(bullet) {
		t.Fatal("bullet expired early")
	}
	run(t, s, 1)
	if s.World().IsAlive(bullet) {
		t.Fatal("bullet outlived its life")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	s, in := newTestSession(t, Options{})
	in.push(system.InputFrame{Keys: []system.KeyEvent{{Key: system.KeyPause, Down: true}, {Key: system.KeyRight, Down: true}}})
	run(t, s, 10)

	if !s.Paused() {
		t.Fatal("expected paused")
	}
	tr, _ := playerState(t, s)
	if tr.X != common.PlayerStartX || tr.Y != common.PlayerStartY {
		t.Fatalf("world moved while paused: %v,%v", tr.X, tr.Y)
	}
	if _, ok := s.Click(10, 10); ok {
		t.Fatal("clicks must not fire while paused")
	}

	in.push(system.InputFrame{Keys: []system.KeyEvent{{Key: system.KeyPause, Down: true}}})
	run(t, s, 1)
	if s.Paused() {
		t.Fatal("expected resumed")
	}
	// right was held through the pause
	if tr, _ := playerState(t, s); tr.X != common.PlayerStartX+7 {
		t.Fatalf("expected one step right after resuming, got x=%v", tr.X)
	}
}

func TestRestartResetsWorld(t *testing.T) {
	s, in := newTestSession(t, Options{})
	gold := countPickups(s, component.PickupGold)
	_ = s.KeyDown(system.KeyRight)
	run(t, s, 60)
	if s.Score() == 0 {
		t.Fatal("expected a score before restarting")
	}

	in.push(system.InputFrame{Keys: []system.KeyEvent{{Key: system.KeyRestart, Down: true}}})
	run(t, s, 1)

	tr, anim := playerState(t, s)
	if tr.X != common.PlayerStartX || tr.Y != common.PlayerStartY || anim.Facing != component.FacingRight {
		t.Fatalf("player not reset: %+v %+v", tr, anim)
	}
	if s.Score() != 0 || countPickups(s, component.PickupGold) != gold {
		t.Fatalf("expected fresh score and pickups, got score %d", s.Score())
	}
	if vp := s.Viewport(); vp.Left != 0 || vp.Bottom != 0 {
		t.Fatalf("expected viewport at origin, got %v,%v", vp.Left, vp.Bottom)
	}
}

func TestResetSubmitsScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	s, _ := newTestSession(t, Options{Store: store})
	_ = s.KeyDown(system.KeyRight)
	run(t, s, 60)

	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	// a session that never scored is not stored
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}

	top, err := store.TopScores(s.MapName(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Score != 50 || top[0].GoldCollected != 1 {
		t.Fatalf("expected one stored result of 50, got %+v", top)
	}
}

func TestApplySpecUpdatesRunningWorld(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	_ = s.KeyDown(system.KeyRight)

	spec := testSpec(t)
	spec.Player.MoveSpeed = 14
	spec.Pickups.CoalRequiresGold = true
	spec.Viewport.MarginLeft = 300
	s.ApplySpec(spec)

	player, _ := s.Player()
	v, _ := ecs.Get(s.World(), player, component.VelocityComponent.Kind())
	if v.X != 14 {
		t.Fatalf("expected held key to move at the new speed, got %v", v.X)
	}
	if !s.pickups.CoalRequiresGold {
		t.Fatal("coal coupling flag not applied")
	}
	if vp := s.Viewport(); vp.MarginLeft != 300 {
		t.Fatalf("viewport margin not applied, got %v", vp.MarginLeft)
	}
}

func TestMissingMap(t *testing.T) {
	_, err := New(Options{Headless: true, Input: &scriptedInput{}, Spec: testSpec(t), MapName: "nope.tmx"})
	if err == nil {
		t.Fatal("expected an error for a missing map")
	}
}

func TestMapChangeAppliesOnReset(t *testing.T) {
	s, _ := newTestSession(t, Options{})

	spec := testSpec(t)
	spec.Level.Map = "tutorial.json"
	s.ApplySpec(spec)
	if s.MapName() != "map2.tmx" {
		t.Fatalf("map must not change before a restart, got %q", s.MapName())
	}

	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if s.MapName() != "tutorial.json" {
		t.Fatalf("expected tutorial.json after reset, got %q", s.MapName())
	}
	if len(s.World().Query(component.PlatformComponent.Kind())) == 0 {
		t.Fatal("expected platforms from the json map")
	}
}
