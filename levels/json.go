package levels

import (
	"encoding/json"
	"fmt"
	"image"
	"io/fs"
	"strconv"
)

// Level is the JSON level format: a grid of tile ids per layer, the texture
// used by each placed tile, and free-standing entities.
type Level struct {
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	TileWidth    int           `json:"tile_width"`
	TileHeight   int           `json:"tile_height"`
	Layers       [][]int       `json:"layers"`
	TilesetUsage [][]*TileInfo `json:"tileset_usage"`
	LayerMeta    []LayerMeta   `json:"layer_meta,omitempty"`
	Entities     []Entity      `json:"entities,omitempty"`
}

type LayerMeta struct {
	Name    string `json:"name"`
	Physics bool   `json:"physics"`
}

// Entity is placed in tile coordinates counted from the top-left. Type names
// the layer it joins.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

type TileInfo struct {
	Path  string                 `json:"path"`
	Index int                    `json:"index"`
	TileW int                    `json:"tile_w"`
	TileH int                    `json:"tile_h"`
	Props map[string]interface{} `json:"props,omitempty"`
}

type JSONLoader struct {
	FS fs.FS
}

func NewJSONLoader(fsys fs.FS) *JSONLoader {
	return &JSONLoader{FS: fsys}
}

func (l *JSONLoader) Load(name string) (*Map, error) {
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return lvl.toMap(name)
}

func (lvl *Level) toMap(name string) (*Map, error) {
	tw, th := lvl.TileWidth, lvl.TileHeight
	if tw <= 0 {
		tw = 128
	}
	if th <= 0 {
		th = tw
	}
	m := &Map{
		Name:       name,
		Width:      lvl.Width,
		Height:     lvl.Height,
		TileWidth:  tw,
		TileHeight: th,
		Layers:     make(map[string][]Tile),
	}

	for layerIdx, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("level %s: layer %d has %d cells, want %d", name, layerIdx, len(layer), lvl.Width*lvl.Height)
		}
		layerName := strconv.Itoa(layerIdx)
		if layerIdx < len(lvl.LayerMeta) && lvl.LayerMeta[layerIdx].Name != "" {
			layerName = lvl.LayerMeta[layerIdx].Name
		}
		for y := 0; y < lvl.Height; y++ {
			for x := 0; x < lvl.Width; x++ {
				tileIdx := y*lvl.Width + x
				if layer[tileIdx] <= 0 {
					continue
				}
				cx, cy, row := cellCenter(x, y, lvl.Height, tw, th)
				t := Tile{
					X: cx, Y: cy, Col: x, Row: row,
					Width: float64(tw), Height: float64(th),
					Properties: map[string]string{},
				}
				if layerIdx < len(lvl.TilesetUsage) && tileIdx < len(lvl.TilesetUsage[layerIdx]) {
					if info := lvl.TilesetUsage[layerIdx][tileIdx]; info != nil {
						t.Image = baseName(info.Path)
						if info.TileW > 0 && info.TileH > 0 {
							sx := info.Index * info.TileW
							t.Source = image.Rect(sx, 0, sx+info.TileW, info.TileH)
						}
						copyProps(t.Properties, info.Props)
					}
				}
				m.Layers[layerName] = append(m.Layers[layerName], t)
			}
		}
	}

	for _, e := range lvl.Entities {
		cx, cy, row := cellCenter(e.X, e.Y, lvl.Height, tw, th)
		t := Tile{
			X: cx, Y: cy, Col: e.X, Row: row,
			Width: float64(tw), Height: float64(th),
			Properties: map[string]string{},
		}
		copyProps(t.Properties, e.Props)
		if img, ok := t.Properties["image"]; ok {
			t.Image = baseName(img)
			delete(t.Properties, "image")
		}
		m.Layers[e.Type] = append(m.Layers[e.Type], t)
	}
	return m, nil
}

func copyProps(dst map[string]string, src map[string]interface{}) {
	for k, v := range src {
		switch val := v.(type) {
		case string:
			dst[k] = val
		case float64:
			dst[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			dst[k] = strconv.FormatBool(val)
		default:
			dst[k] = fmt.Sprint(val)
		}
	}
}
