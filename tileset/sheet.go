package tileset

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
)

// LoadSheet decodes a tile sheet image from disk.
func LoadSheet(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tileset: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("tileset: decode %s: %w", path, err)
	}
	return img, nil
}
