package component

import "github.com/hajimehoshi/ebiten/v2"

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// TexturePair holds a texture and its horizontal mirror, indexed by Facing.
type TexturePair [2]*ebiten.Image

// TextureSet is the full set of character textures.
type TextureSet struct {
	Idle TexturePair
	Fall TexturePair
	Walk []TexturePair
}

// Pose names the texture the animator picked for the current frame.
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk
	PoseFall
)

type Animation struct {
	Textures *TextureSet
	Facing   Facing
	// Frames is the walk-cycle length. Zero falls back to len(Textures.Walk).
	Frames int
	// Frame is the walk-cycle index, always within [0, CycleLength()).
	Frame int
	Pose  Pose
}

// CycleLength is the number of walk frames, known even when no textures are
// loaded.
func (a *Animation) CycleLength() int {
	if a == nil {
		return 0
	}
	if a.Frames > 0 {
		return a.Frames
	}
	if a.Textures != nil {
		return len(a.Textures.Walk)
	}
	return 0
}

// Texture returns the image for the current pose and facing, or nil when the
// set has no image loaded for it.
func (a *Animation) Texture() *ebiten.Image {
	if a == nil || a.Textures == nil {
		return nil
	}
	switch a.Pose {
	case PoseWalk:
		if a.Frame < 0 || a.Frame >= len(a.Textures.Walk) {
			return nil
		}
		return a.Textures.Walk[a.Frame][a.Facing]
	case PoseFall:
		return a.Textures.Fall[a.Facing]
	default:
		return a.Textures.Idle[a.Facing]
	}
}

var AnimationComponent = NewComponent[Animation]()
