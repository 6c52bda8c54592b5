package tileset

import (
	"image"
	"image/color"

	"github.com/milk9111/levelview/common"
	"github.com/milk9111/levelview/surface"
)

// MissingColor fills cells whose tile is not present in a sheet.
var MissingColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Atlas draws objects from a tile sheet. Row n of the sheet holds tile
// number n; with Stitch enabled its columns hold the 47 autotile variants in
// mask order, otherwise only column 0 is used.
type Atlas struct {
	Sheet    image.Image
	TileSize int
	Stitch   bool
}

var _ Tileset = (*Atlas)(nil)

// NewAtlas wraps sheet. The sheet must support SubImage (both *image.RGBA
// and *ebiten.Image do).
func NewAtlas(sheet image.Image, tileSize int, stitch bool) *Atlas {
	return &Atlas{Sheet: sheet, TileSize: tileSize, Stitch: stitch}
}

func (a *Atlas) DrawObject(dst surface.Surface, grid *Occupancy, tileID, x, y, w, h, layer int) {
	for _, c := range Stitch(grid, x, y, w, h) {
		col := 0
		if a.Stitch {
			if v := VariantForMask(c.Mask); v >= 0 {
				col = v
			}
		}
		cell := common.CellRect(c.X, c.Y, 1, 1)
		src, ok := a.tile(tileID, col)
		if !ok {
			dst.FillRect(cell, MissingColor)
			continue
		}
		dst.DrawImage(src, cell)
	}
}

func (a *Atlas) tile(row, col int) (image.Image, bool) {
	if a.Sheet == nil || a.TileSize <= 0 {
		return nil, false
	}
	sub, ok := a.Sheet.(subImager)
	if !ok {
		return nil, false
	}
	b := a.Sheet.Bounds()
	r := image.Rect(col*a.TileSize, row*a.TileSize, (col+1)*a.TileSize, (row+1)*a.TileSize).Add(b.Min)
	if !r.In(b) {
		return nil, false
	}
	return sub.SubImage(r), true
}
