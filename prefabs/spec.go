package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/digger/common"
)

const GameSpecFile = "game.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the full tuning of a session.
type GameSpec struct {
	Name     string       `yaml:"name"`
	Level    LevelSpec    `yaml:"level"`
	Player   PlayerSpec   `yaml:"player"`
	Physics  PhysicsSpec  `yaml:"physics"`
	Bullet   BulletSpec   `yaml:"bullet"`
	Viewport ViewportSpec `yaml:"viewport"`
	Pickups  PickupsSpec  `yaml:"pickups"`
}

type LevelSpec struct {
	Map         string  `yaml:"map"`
	TileScaling float64 `yaml:"tile_scaling"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
}

type PlayerSpec struct {
	TexturePrefix string       `yaml:"texture_prefix"`
	WalkFrames    int          `yaml:"walk_frames"`
	MoveSpeed     float64      `yaml:"move_speed"`
	Scale         float64      `yaml:"scale"`
	Collider      ColliderSpec `yaml:"collider"`
}

// ColliderSpec sizes a box in unscaled texture pixels. Zero means use the
// texture bounds.
type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PhysicsSpec struct {
	Gravity float64 `yaml:"gravity"`
	TPS     float64 `yaml:"tps"`
}

type BulletSpec struct {
	Texture    string       `yaml:"texture"`
	Speed      float64      `yaml:"speed"`
	Scale      float64      `yaml:"scale"`
	LifeFrames int          `yaml:"life_frames"`
	Collider   ColliderSpec `yaml:"collider"`
}

type ViewportSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MarginLeft   float64 `yaml:"margin_left"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginBottom float64 `yaml:"margin_bottom"`
	MarginTop    float64 `yaml:"margin_top"`
}

type PickupsSpec struct {
	// CoalRequiresGold collects coal only in frames where gold was collected.
	CoalRequiresGold bool        `yaml:"coal_requires_gold"`
	Script           string      `yaml:"script"`
	Audio            []AudioSpec `yaml:"audio"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	// Voices is how many copies of the sound can play at once.
	Voices int `yaml:"voices"`
}

// DefaultGameSpec is the tuning used for any key game.yaml leaves out.
func DefaultGameSpec() *GameSpec {
	return &GameSpec{
		Name: "digger",
		Level: LevelSpec{
			Map:         "map2.tmx",
			TileScaling: common.TileScaling,
			StartX:      common.PlayerStartX,
			StartY:      common.PlayerStartY,
		},
		Player: PlayerSpec{
			TexturePrefix: "digger",
			WalkFrames:    common.WalkFrames,
			MoveSpeed:     common.PlayerMovementSpeed,
			Scale:         common.CharacterScaling,
		},
		Physics: PhysicsSpec{
			Gravity: common.Gravity,
			TPS:     common.TargetTPS,
		},
		Bullet: BulletSpec{
			Texture:    "laserBlue01.png",
			Speed:      common.BulletSpeed,
			Scale:      common.LaserScaling,
			LifeFrames: common.BulletLifeFrames,
		},
		Viewport: ViewportSpec{
			Width:        common.ScreenWidth,
			Height:       common.ScreenHeight,
			MarginLeft:   common.LeftViewportMargin,
			MarginRight:  common.RightViewportMargin,
			MarginBottom: common.BottomViewportMargin,
			MarginTop:    common.TopViewportMargin,
		},
	}
}

// LoadGameSpec loads game.yaml over DefaultGameSpec and validates the result.
func LoadGameSpec() (*GameSpec, error) {
	data, err := Load(GameSpecFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", GameSpecFile, err)
	}
	spec := DefaultGameSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", GameSpecFile, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", GameSpecFile, err)
	}
	return spec, nil
}

func (s *GameSpec) Validate() error {
	var errs []error
	if s.Level.Map == "" {
		errs = append(errs, errors.New("level.map is required"))
	}
	if s.Level.TileScaling <= 0 {
		errs = append(errs, errors.New("level.tile_scaling must be positive"))
	}
	if s.Player.TexturePrefix == "" {
		errs = append(errs, errors.New("player.texture_prefix is required"))
	}
	if s.Player.WalkFrames <= 0 {
		errs = append(errs, errors.New("player.walk_frames must be positive"))
	}
	if s.Player.MoveSpeed < 0 || s.Bullet.Speed < 0 {
		errs = append(errs, errors.New("speeds must not be negative"))
	}
	if s.Physics.TPS <= 0 {
		errs = append(errs, errors.New("physics.tps must be positive"))
	}
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		errs = append(errs, errors.New("viewport size must be positive"))
	}
	return errors.Join(errs...)
}

// Sound returns the audio entry with the given name.
func (p PickupsSpec) Sound(name string) (AudioSpec, bool) {
	for _, a := range p.Audio {
		if a.Name == name {
			return a, true
		}
	}
	return AudioSpec{}, false
}
