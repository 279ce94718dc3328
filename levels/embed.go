package levels

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json *.tmx *.tsx
var LevelsFS embed.FS

// NewLoader returns a loader reading from dir when it exists on disk and from
// the embedded levels otherwise, dispatching on the file extension.
func NewLoader(dir string) MapLoader {
	var fsys fs.FS = LevelsFS
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fsys = os.DirFS(dir)
		}
	}
	return &extLoader{
		tmx:  NewTMXLoader(fsys, "Points"),
		json: NewJSONLoader(fsys),
	}
}

type extLoader struct {
	tmx  MapLoader
	json MapLoader
}

func (l *extLoader) Load(name string) (*Map, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return l.json.Load(name)
	}
	return l.tmx.Load(name)
}
