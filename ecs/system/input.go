package system

import (
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

// Key is a game action bound to one or more physical keys.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyPause
	KeyRestart
)

type KeyEvent struct {
	Key  Key
	Down bool
}

// Click is a mouse press in screen coordinates, y-up from the bottom-left of
// the window.
type Click struct {
	X, Y float64
}

// InputFrame is everything that happened on the input devices since the last
// poll.
type InputFrame struct {
	Keys   []KeyEvent
	Clicks []Click
}

type InputSource interface {
	Poll() InputFrame
}

// Commands are session-level requests raised by input.
type Commands struct {
	TogglePause bool
	Restart     bool
}

type InputSystem struct {
	source   InputSource
	bullet   BulletConfig
	paused   bool
	commands Commands
}

func NewInputSystem(source InputSource, bullet BulletConfig) *InputSystem {
	return &InputSystem{source: source, bullet: bullet}
}

func (s *InputSystem) SetBullet(cfg BulletConfig) {
	s.bullet = cfg
}

// SetPaused stops clicks from firing. Movement keys are still tracked so the
// flags match the keyboard when play resumes.
func (s *InputSystem) SetPaused(paused bool) {
	s.paused = paused
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || s.source == nil {
		return
	}

	frame := s.source.Poll()
	for _, ev := range frame.Keys {
		switch ev.Key {
		case KeyPause:
			if ev.Down {
				s.commands.TogglePause = true
			}
		case KeyRestart:
			if ev.Down {
				s.commands.Restart = true
			}
		default:
			ApplyKey(w, ev.Key, ev.Down)
		}
	}

	if s.paused {
		return
	}
	for _, c := range frame.Clicks {
		SpawnBullet(w, s.bullet, c.X, c.Y)
	}
}

// TakeCommands returns the commands raised since the last call and clears them.
func (s *InputSystem) TakeCommands() Commands {
	cmds := s.commands
	s.commands = Commands{}
	return cmds
}

// ApplyKey toggles the player's movement flag for key and recomputes the
// horizontal velocity. It reports false for keys that are not movement keys.
func ApplyKey(w *ecs.World, key Key, down bool) bool {
	player, ok := playerEntity(w)
	if !ok {
		return false
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return false
	}

	switch key {
	case KeyLeft:
		input.LeftPressed = down
	case KeyRight:
		input.RightPressed = down
	default:
		return false
	}

	speed := 0.0
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		speed = p.MoveSpeed
	}
	if vel, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		vel.X = input.MoveX() * speed
	}
	return true
}
