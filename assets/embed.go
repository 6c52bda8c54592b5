package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"
)

//go:embed *.png
var assetsFS embed.FS

// StitchSheet is the bundled autotile sheet: 20 px tiles, one row per tile
// id, one column per stitching variant.
const (
	StitchSheet         = "stitch.png"
	StitchSheetTileSize = 20
)

// LoadImage decodes an embedded image by assets-relative path.
func LoadImage(path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	return strings.TrimPrefix(s, "assets/")
}
