// Package session owns one play-through: the ECS world built from a map, the
// per-frame system order and the tuning loaded from prefabs.
package session

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/digger/assets"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/ecs/entity"
	"github.com/milk9111/digger/ecs/system"
	"github.com/milk9111/digger/levels"
	"github.com/milk9111/digger/physics"
	"github.com/milk9111/digger/prefabs"
	"github.com/milk9111/digger/storage"
)

type Options struct {
	// MapName overrides level.map from the game spec.
	MapName string
	// LevelsDir is read before the embedded levels when it exists.
	LevelsDir string
	Loader    levels.MapLoader
	// Spec replaces prefabs/game.yaml.
	Spec    *prefabs.GameSpec
	Input   system.InputSource
	Stepper physics.Stepper
	// Store receives the score of every session that scored. Nil disables it.
	Store *storage.Store
	// Headless skips textures and sound devices.
	Headless bool
	// Watch reloads prefabs edited on disk while running.
	Watch bool
	Debug bool
}

type Session struct {
	opts Options
	spec   *prefabs.GameSpec
	loader levels.MapLoader
	lvl    *levels.Map

	textures *component.TextureSet
	images   entity.ImageSource
	sounds   *component.Audio
	bullet   system.BulletConfig
	script   *system.ScoreScript
	watcher  *prefabs.Watcher

	stepper  physics.Stepper
	chipmunk *physics.ChipmunkStepper

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	pickups   *system.PickupCollectSystem
	render    *system.RenderSystem

	paused bool
	// submitted is set once the current world's score is stored.
	submitted bool
}

// New loads textures, sounds, the map and the prefab tuning, then starts a
// fresh session.
func New(opts Options) (*Session, error) {
	spec := opts.Spec
	if spec == nil {
		loaded, err := prefabs.LoadGameSpec()
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		spec = loaded
	}
	if opts.MapName != "" {
		spec.Level.Map = opts.MapName
	}

	s := &Session{opts: opts, spec: spec}

	s.loader = opts.Loader
	if s.loader == nil {
		s.loader = levels.NewLoader(opts.LevelsDir)
	}
	lvl, err := s.loader.Load(spec.Level.Map)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.lvl = lvl

	if err := s.loadMedia(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	if spec.Pickups.Script != "" {
		script, err := system.LoadScoreScript(spec.Pickups.Script)
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		s.script = script
	}

	input := opts.Input
	if input == nil {
		input = system.NewEbitenInput(spec.Viewport.Height)
	}
	s.input = system.NewInputSystem(input, s.bullet)
	s.pickups = system.NewPickupCollectSystem(s.script, spec.Pickups.CoalRequiresGold)

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Warn("prefab hot reload disabled", "dir", prefabs.Dir, "err", err)
		} else {
			s.watcher = w
		}
	}

	if err := s.Reset(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) loadMedia() error {
	loadAudio := entity.DefaultAudioLoader
	if s.opts.Headless {
		loadAudio = nil
	} else {
		textures, err := entity.LoadTextureSet(s.spec.Player.TexturePrefix, s.spec.Player.WalkFrames)
		if err != nil {
			return err
		}
		s.textures = textures
		s.images = assets.NewImageCache()
	}

	sounds, err := entity.BuildAudio(s.spec.Pickups.Audio, loadAudio)
	if err != nil {
		return err
	}
	s.sounds = sounds

	var bulletImg *ebiten.Image
	if !s.opts.Headless {
		img, err := assets.LoadImage(s.spec.Bullet.Texture)
		if err != nil {
			return err
		}
		bulletImg = img
	}
	s.bullet = bulletConfig(s.spec.Bullet, bulletImg)
	return nil
}

func bulletConfig(spec prefabs.BulletSpec, img *ebiten.Image) system.BulletConfig {
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	w, h := spec.Collider.Width, spec.Collider.Height
	if (w <= 0 || h <= 0) && img != nil {
		w, h = float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	}
	return system.BulletConfig{
		Image:      img,
		Speed:      spec.Speed,
		Scale:      scale,
		Width:      w * scale,
		Height:     h * scale,
		LifeFrames: spec.LifeFrames,
	}
}

// Reset submits the current score and rebuilds the world from the map: score
// and viewport back to zero, the player at the start position. A map renamed
// by a spec reload is loaded here.
func (s *Session) Reset() error {
	s.submitScore()

	if s.spec.Level.Map != s.lvl.Name {
		lvl, err := s.loader.Load(s.spec.Level.Map)
		if err != nil {
			return fmt.Errorf("session: reset: %w", err)
		}
		s.lvl = lvl
	}

	s.stepper = s.opts.Stepper
	s.chipmunk = nil
	if s.stepper == nil {
		s.chipmunk = physics.NewChipmunkStepper(s.spec.Physics.Gravity, s.spec.Physics.TPS)
		s.stepper = s.chipmunk
	}

	scale := s.spec.Level.TileScaling
	w := ecs.NewWorld()
	s.sounds.ClearRequests()
	bounds := component.LevelBounds{Width: s.lvl.PixelWidth() * scale, Height: s.lvl.PixelHeight() * scale}
	if _, err := entity.NewSession(w, s.spec.Viewport, bounds, s.sounds); err != nil {
		return fmt.Errorf("session: reset: %w", err)
	}
	if _, err := entity.NewPlayerAt(w, s.textures, s.spec.Player, s.spec.Level.StartX, s.spec.Level.StartY); err != nil {
		return fmt.Errorf("session: reset: %w", err)
	}
	counts, err := entity.LoadLevelToWorld(w, s.lvl, s.images, scale)
	if err != nil {
		return fmt.Errorf("session: reset: %w", err)
	}

	s.world = w
	s.paused = false
	s.submitted = false
	s.scheduler = ecs.NewScheduler(
		system.NewMovementSystem(),
		system.NewBulletCollisionSystem(float64(s.lvl.TileWidth)*scale),
		system.NewTTLSystem(),
		system.NewPhysicsSystem(s.stepper),
		system.NewAnimationSystem(),
		s.pickups,
		system.NewCameraSystem(),
		system.NewAudioSystem(),
		system.NewStatsSystem(),
	)
	if !s.opts.Headless {
		if s.render == nil {
			s.render = system.NewRenderSystem()
		}
		s.scheduler.AddDrawer(s.render)
		if s.opts.Debug {
			s.scheduler.AddDrawer(debugOverlay{stepper: s.chipmunk})
		}
	}

	log.Debug("session reset", "map", s.lvl.Name, "platforms", counts.Platforms, "gold", counts.Gold, "coal", counts.Coal)
	return nil
}

// Update advances one frame. Input is read every frame; the world only moves
// while the session is not paused.
func (s *Session) Update() error {
	s.reload()

	s.input.SetPaused(s.paused)
	s.input.Update(s.world)
	cmds := s.input.TakeCommands()
	if cmds.Restart {
		return s.Reset()
	}
	if cmds.TogglePause {
		s.paused = !s.paused
	}
	if s.paused {
		return nil
	}

	s.scheduler.Update(s.world)
	return nil
}

func (s *Session) Draw(screen *ebiten.Image) {
	s.scheduler.Draw(s.world, screen)
}

// debugOverlay draws the physics solids and player readout over the frame.
type debugOverlay struct {
	stepper *physics.ChipmunkStepper
}

func (d debugOverlay) Draw(w *ecs.World, screen *ebiten.Image) {
	system.DrawPhysicsDebug(d.stepper, w, screen)
	system.DrawPlayerDebug(d.stepper, w, screen)
}

// KeyDown handles a key press the same way a polled press is handled.
func (s *Session) KeyDown(key system.Key) error {
	switch key {
	case system.KeyPause:
		s.paused = !s.paused
	case system.KeyRestart:
		return s.Reset()
	default:
		system.ApplyKey(s.world, key, true)
	}
	return nil
}

func (s *Session) KeyUp(key system.Key) {
	system.ApplyKey(s.world, key, false)
}

// Click fires a bullet towards the y-up screen point (x, y).
func (s *Session) Click(x, y float64) (ecs.Entity, bool) {
	if s.paused {
		return 0, false
	}
	return system.SpawnBullet(s.world, s.bullet, x, y)
}

func (s *Session) Paused() bool { return s.paused }

func (s *Session) SetPaused(paused bool) { s.paused = paused }

func (s *Session) World() *ecs.World { return s.world }

func (s *Session) Spec() *prefabs.GameSpec { return s.spec }

func (s *Session) MapName() string { return s.lvl.Name }

func (s *Session) Score() int {
	if score, ok := sessionValue(s.world, component.ScoreComponent.Kind()); ok {
		return score.Value
	}
	return 0
}

func (s *Session) Stats() component.Stats {
	if stats, ok := sessionValue(s.world, component.StatsComponent.Kind()); ok {
		return *stats
	}
	return component.Stats{}
}

func (s *Session) Viewport() component.Viewport {
	if vp, ok := sessionValue(s.world, component.ViewportComponent.Kind()); ok {
		return *vp
	}
	return component.Viewport{}
}

// Player returns the player entity.
func (s *Session) Player() (ecs.Entity, bool) {
	return ecs.First(s.world, component.PlayerTagComponent.Kind())
}

// Close submits the running score and stops the prefab watcher.
func (s *Session) Close() error {
	s.submitScore()
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

func (s *Session) submitScore() {
	if s.opts.Store == nil || s.world == nil || s.submitted {
		return
	}
	score := s.Score()
	if score <= 0 {
		return
	}
	stats := s.Stats()
	_, err := s.opts.Store.SaveScore(storage.Result{
		Map:             s.lvl.Name,
		Score:           score,
		ShotsFired:      stats.ShotsFired,
		BlocksDestroyed: stats.BlocksDestroyed,
		GoldCollected:   stats.GoldCollected,
		CoalCollected:   stats.CoalCollected,
	})
	if err != nil {
		log.Error("could not save score", "score", score, "err", err)
		return
	}
	log.Info("score saved", "map", s.lvl.Name, "score", score)
	s.submitted = true
}

func sessionValue[T any](w *ecs.World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := ecs.First(w, component.SessionTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, kind)
}
