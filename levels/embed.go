package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/levelview/common"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadEmbedded loads a scene fixture bundled with the module.
func LoadEmbedded(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Decode(name, data)
}

// Load loads a scene fixture from disk.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Decode(path, data)
}

// Decode parses a JSON scene fixture. name is only used in error messages.
func Decode(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	for l := range lvl.Objects {
		for i, obj := range lvl.Objects[l] {
			if obj.Width < 0 || obj.Height < 0 {
				return nil, fmt.Errorf("levels: %s: layer %d object %d has negative size %dx%d", name, l, i, obj.Width, obj.Height)
			}
			if obj.Width > common.MaxCoord || obj.Height > common.MaxCoord {
				return nil, fmt.Errorf("levels: %s: layer %d object %d size %dx%d exceeds %d", name, l, i, obj.Width, obj.Height, common.MaxCoord)
			}
			// positions outside the editable range are normalized like a drag would
			lvl.Objects[l][i].SetPosition(obj.X, obj.Y)
		}
	}
	return &lvl, nil
}
