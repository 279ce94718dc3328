package entity

import (
	"fmt"

	"github.com/milk9111/digger/assets"
	"github.com/milk9111/digger/ecs/component"
)

// LoadTextureSet loads <prefix>_idle.png, <prefix>_fall.png and
// <prefix>_walk0..N-1.png, each with its mirrored copy.
func LoadTextureSet(prefix string, walkFrames int) (*component.TextureSet, error) {
	set := &component.TextureSet{Walk: make([]component.TexturePair, 0, walkFrames)}

	idle, err := assets.LoadTexturePair(prefix + "_idle.png")
	if err != nil {
		return nil, fmt.Errorf("textures %s: %w", prefix, err)
	}
	set.Idle = idle

	fall, err := assets.LoadTexturePair(prefix + "_fall.png")
	if err != nil {
		return nil, fmt.Errorf("textures %s: %w", prefix, err)
	}
	set.Fall = fall

	for i := 0; i < walkFrames; i++ {
		pair, err := assets.LoadTexturePair(fmt.Sprintf("%s_walk%d.png", prefix, i))
		if err != nil {
			return nil, fmt.Errorf("textures %s: %w", prefix, err)
		}
		set.Walk = append(set.Walk, pair)
	}
	return set, nil
}
