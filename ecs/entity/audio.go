package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/digger/assets"
	"github.com/milk9111/digger/common"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/prefabs"
)

// AudioLoader creates a player for a sound file.
type AudioLoader func(file string) (*audio.Player, error)

// BuildAudio loads every clip into a pool of players. A nil loader
// leaves the voices empty, which keeps requests working without an audio
// device.
func BuildAudio(specs []prefabs.AudioSpec, load AudioLoader) (*component.Audio, error) {
	n := len(specs)
	a := &component.Audio{
		Names:   make([]string, 0, n),
		Voices:  make([][]*audio.Player, 0, n),
		Volume:  make([]float64, 0, n),
		Pending: make([]int, n),
		Next:    make([]int, n),
	}

	for i, clip := range specs {
		count := clip.Voices
		if count <= 0 {
			count = common.SoundVoices
		}
		voices := make([]*audio.Player, count)
		if load != nil {
			for v := range voices {
				p, err := load(clip.File)
				if err != nil {
					return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
				}
				voices[v] = p
			}
		}
		volume := clip.Volume
		if volume <= 0 {
			volume = 1
		}
		a.Names = append(a.Names, clip.Name)
		a.Voices = append(a.Voices, voices)
		a.Volume = append(a.Volume, volume)
	}
	return a, nil
}

// DefaultAudioLoader reads sounds through the asset loader.
func DefaultAudioLoader(file string) (*audio.Player, error) {
	return assets.LoadAudioPlayer(file)
}
