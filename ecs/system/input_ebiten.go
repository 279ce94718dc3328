package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[ebiten.Key]Key{
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyA:          KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyD:          KeyRight,
	ebiten.KeyEscape:     KeyPause,
	ebiten.KeyR:          KeyRestart,
}

// EbitenInput polls Ebitengine's keyboard and mouse state.
type EbitenInput struct {
	// ScreenHeight flips cursor positions into y-up screen coordinates.
	ScreenHeight float64

	keys []ebiten.Key
}

func NewEbitenInput(screenHeight float64) *EbitenInput {
	return &EbitenInput{ScreenHeight: screenHeight}
}

func (in *EbitenInput) Poll() InputFrame {
	var frame InputFrame

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if key, ok := keyBindings[k]; ok {
			frame.Keys = append(frame.Keys, KeyEvent{Key: key, Down: true})
		}
	}

	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if key, ok := keyBindings[k]; ok {
			frame.Keys = append(frame.Keys, KeyEvent{Key: key, Down: false})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Clicks = append(frame.Clicks, Click{X: float64(x), Y: in.ScreenHeight - float64(y)})
	}

	return frame
}
