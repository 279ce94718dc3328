package levels

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// TMXLoader reads Tiled maps. Properties lists the tile properties copied onto
// each Tile.
type TMXLoader struct {
	FS         fs.FS
	Properties []string
}

func NewTMXLoader(fsys fs.FS, properties ...string) *TMXLoader {
	return &TMXLoader{FS: fsys, Properties: properties}
}

func (l *TMXLoader) Load(name string) (*Map, error) {
	var opts []tiled.LoaderOption
	if l.FS != nil {
		opts = append(opts, tiled.WithFileSystem(l.FS))
	}
	tm, err := tiled.LoadFile(name, opts...)
	if err != nil {
		return nil, fmt.Errorf("levels: load tmx %s: %w", name, err)
	}

	m := &Map{
		Name:       name,
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
		Layers:     make(map[string][]Tile, len(tm.Layers)),
	}

	for _, layer := range tm.Layers {
		if layer == nil {
			continue
		}
		tiles := make([]Tile, 0)
		for i, lt := range layer.Tiles {
			if lt == nil || lt.Nil || lt.Tileset == nil {
				continue
			}
			x, y, row := cellCenter(i%tm.Width, i/tm.Width, tm.Height, tm.TileWidth, tm.TileHeight)
			t := Tile{
				X:          x,
				Y:          y,
				Col:        i % tm.Width,
				Row:        row,
				Width:      float64(tm.TileWidth),
				Height:     float64(tm.TileHeight),
				Properties: map[string]string{},
			}

			ts := lt.Tileset
			if tt, err := ts.GetTilesetTile(lt.ID); err == nil && tt != nil {
				if tt.Image != nil {
					t.Image = baseName(tt.Image.Source)
				}
				if tt.Properties != nil {
					for _, name := range l.Properties {
						if vals := tt.Properties.Get(name); len(vals) > 0 {
							t.Properties[name] = vals[0]
						}
					}
				}
			}
			if t.Image == "" && ts.Image != nil {
				t.Image = baseName(ts.Image.Source)
				t.Source = ts.GetTileRect(lt.ID)
			}
			tiles = append(tiles, t)
		}
		m.Layers[layer.Name] = tiles
	}
	return m, nil
}
