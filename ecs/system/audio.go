package system

import (
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

// AudioSystem plays every queued sound request once, each on its own voice.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for i, n := range audioComp.Pending {
			audioComp.Pending[i] = 0
			for ; n > 0; n-- {
				player := audioComp.NextVoice(i)
				if player == nil {
					continue
				}
				if i < len(audioComp.Volume) {
					player.SetVolume(audioComp.Volume[i])
				}
				// a voice still playing from an earlier request restarts
				_ = player.Rewind()
				player.Play()
			}
		}
	})
}
