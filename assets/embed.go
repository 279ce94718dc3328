package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.png *.wav
var assetsFS embed.FS

const sampleRate = 44100

// Dir is the on-disk asset directory consulted before the embedded copies.
var Dir = "assets"

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// LoadFile reads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if Dir != "" {
		if b, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	b, err := fs.ReadFile(assetsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return b, nil
}

// LoadImage decodes an image asset.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadTexturePair loads an image and its horizontal mirror, in that order.
func LoadTexturePair(path string) ([2]*ebiten.Image, error) {
	img, err := LoadImage(path)
	if err != nil {
		return [2]*ebiten.Image{}, err
	}
	return [2]*ebiten.Image{img, Mirror(img)}, nil
}

// Mirror returns a horizontally flipped copy of img.
func Mirror(img *ebiten.Image) *ebiten.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	out := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(w), 0)
	out.DrawImage(img, op)
	return out
}

// ImageCache loads each image once.
type ImageCache struct {
	images map[string]*ebiten.Image
}

func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[string]*ebiten.Image)}
}

func (c *ImageCache) Get(path string) (*ebiten.Image, error) {
	if img, ok := c.images[path]; ok {
		return img, nil
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	c.images[path] = img
	return img, nil
}

// AudioContext returns the process-wide audio context, creating it on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// LoadAudioPlayer loads an audio asset and creates a player for it.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := AudioContext()
	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return strings.TrimPrefix(s, "../")
}
