package session

import (
	"path"

	"github.com/charmbracelet/log"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/ecs/system"
	"github.com/milk9111/digger/prefabs"
)

// reload applies prefab files changed on disk. Bad files are logged and the
// running values kept.
func (s *Session) reload() {
	if s.watcher == nil {
		return
	}
	names, err := s.watcher.Poll()
	if err != nil {
		log.Warn("prefab watcher", "err", err)
	}
	for _, name := range names {
		switch {
		case name == prefabs.GameSpecFile:
			s.ReloadSpec()
		case path.Ext(name) == ".tengo":
			if name == path.Base(s.spec.Pickups.Script) {
				s.ReloadScript()
			}
		}
	}
}

// ReloadSpec re-reads game.yaml and applies the tuning that can change while
// playing. The map and textures only change on the next restart.
func (s *Session) ReloadSpec() bool {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Error("reload game spec", "err", err)
		return false
	}
	if s.opts.MapName != "" {
		spec.Level.Map = s.opts.MapName
	}
	if spec.Level.Map != s.spec.Level.Map {
		log.Info("level change takes effect on restart", "map", spec.Level.Map)
	}

	scriptChanged := spec.Pickups.Script != s.spec.Pickups.Script
	s.ApplySpec(spec)
	if scriptChanged {
		s.ReloadScript()
	}
	log.Info("game spec reloaded")
	return true
}

// ApplySpec swaps in new tuning and pushes it into the running world.
func (s *Session) ApplySpec(spec *prefabs.GameSpec) {
	s.spec = spec
	s.bullet = bulletConfig(spec.Bullet, s.bullet.Image)
	s.input.SetBullet(s.bullet)
	s.pickups.CoalRequiresGold = spec.Pickups.CoalRequiresGold
	if s.chipmunk != nil {
		s.chipmunk.SetGravity(spec.Physics.Gravity)
	}

	if player, ok := s.Player(); ok {
		if p, ok := ecs.Get(s.world, player, component.PlayerComponent.Kind()); ok {
			p.MoveSpeed = spec.Player.MoveSpeed
		}
		// re-derive change_x from the held keys at the new speed
		if in, ok := ecs.Get(s.world, player, component.InputComponent.Kind()); ok {
			if v, ok := ecs.Get(s.world, player, component.VelocityComponent.Kind()); ok {
				v.X = in.MoveX() * spec.Player.MoveSpeed
			}
		}
	}

	if vp, ok := sessionValue(s.world, component.ViewportComponent.Kind()); ok {
		vp.Width, vp.Height = spec.Viewport.Width, spec.Viewport.Height
		vp.MarginLeft, vp.MarginRight = spec.Viewport.MarginLeft, spec.Viewport.MarginRight
		vp.MarginBottom, vp.MarginTop = spec.Viewport.MarginBottom, spec.Viewport.MarginTop
	}
}

// ReloadScript recompiles the pickup score script.
func (s *Session) ReloadScript() bool {
	if s.spec.Pickups.Script == "" {
		s.script = nil
		s.pickups.Script = nil
		return true
	}
	script, err := system.LoadScoreScript(s.spec.Pickups.Script)
	if err != nil {
		log.Error("reload score script", "script", s.spec.Pickups.Script, "err", err)
		return false
	}
	s.script = script
	s.pickups.Script = script
	log.Info("score script reloaded", "script", script.Name())
	return true
}
