package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named sounds. Each sound has a small pool of players so that
// several requests in one frame play over each other.
type Audio struct {
	Names  []string
	Voices [][]*audio.Player
	Volume []float64
	// Pending counts the requests per sound since the audio system last ran.
	Pending []int
	// Next is the round-robin voice index per sound.
	Next []int
}

// Request queues one playback of the named sound and reports whether it exists.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Pending) {
			a.Pending[i]++
			return true
		}
		return false
	}
	return false
}

// NextVoice returns the next player in sound i's pool. The slot advances even
// when the pool holds no loaded players.
func (a *Audio) NextVoice(i int) *audio.Player {
	if a == nil || i < 0 || i >= len(a.Voices) {
		return nil
	}
	for len(a.Next) <= i {
		a.Next = append(a.Next, 0)
	}
	voices := a.Voices[i]
	if len(voices) == 0 {
		return nil
	}
	p := voices[a.Next[i]%len(voices)]
	a.Next[i] = (a.Next[i] + 1) % len(voices)
	return p
}

// ClearRequests drops every queued playback.
func (a *Audio) ClearRequests() {
	if a == nil {
		return
	}
	for i := range a.Pending {
		a.Pending[i] = 0
	}
}

var AudioComponent = NewComponent[Audio]()
