// Package levels loads tile maps into a layer -> tiles model in a y-up world.
package levels

import (
	"fmt"
	"image"
	"path"
	"strconv"
	"strings"
)

// Map is a loaded level. Tile positions are in unscaled pixels with the
// origin at the bottom-left corner of the map.
type Map struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     map[string][]Tile
}

// Tile is one placed tile or entity of a layer.
type Tile struct {
	// X, Y is the tile center.
	X, Y   float64
	Col    int
	Row    int
	Width  float64
	Height float64
	// Image is the base name of the texture, resolved by the asset loader.
	Image      string
	Source     image.Rectangle
	Properties map[string]string
}

// MapLoader loads a named map.
type MapLoader interface {
	Load(name string) (*Map, error)
}

// PixelWidth returns the map width in pixels.
func (m *Map) PixelWidth() float64 {
	return float64(m.Width * m.TileWidth)
}

// PixelHeight returns the map height in pixels.
func (m *Map) PixelHeight() float64 {
	return float64(m.Height * m.TileHeight)
}

// Layer returns the tiles of the named layer.
func (m *Map) Layer(name string) []Tile {
	if m == nil {
		return nil
	}
	return m.Layers[name]
}

// IntProperty parses a numeric property. ok is false when the property is
// absent; a present but malformed value is an error.
func (t Tile) IntProperty(name string) (value int, ok bool, err error) {
	raw, ok := t.Properties[name]
	if !ok {
		return 0, false, nil
	}
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return v, true, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, fmt.Errorf("levels: property %s=%q: %w", name, raw, err)
	}
	return int(f), true, nil
}

// cellCenter converts a row counted from the top of the map into the y-up
// center of that cell.
func cellCenter(col, rowFromTop, rows, tw, th int) (x, y float64, row int) {
	row = rows - rowFromTop - 1
	x = float64(col*tw) + float64(tw)/2
	y = float64(row*th) + float64(th)/2
	return x, y, row
}

func baseName(p string) string {
	if p == "" {
		return ""
	}
	return path.Base(strings.ReplaceAll(p, "\\", "/"))
}
