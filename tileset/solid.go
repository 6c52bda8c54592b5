package tileset

import (
	"image"
	"image/color"

	"github.com/milk9111/levelview/common"
	"github.com/milk9111/levelview/surface"
)

// Solid is an art-free tileset: every cell is filled with a flat colour
// and open edges get a darker 2 px border, so stitching is visible without
// a tile sheet.
type Solid struct {
	Fill color.RGBA
	Edge color.RGBA
}

var _ Tileset = Solid{}

// NewSolid derives the edge colour from fill.
func NewSolid(fill color.RGBA) Solid {
	return Solid{
		Fill: fill,
		Edge: color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 0xff},
	}
}

func (s Solid) DrawObject(dst surface.Surface, grid *Occupancy, tileID, x, y, w, h, layer int) {
	const edge = 2
	for _, c := range Stitch(grid, x, y, w, h) {
		r := common.CellRect(c.X, c.Y, 1, 1)
		dst.FillRect(r, s.Fill)
		if c.Mask&maskN == 0 {
			dst.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+edge), s.Edge)
		}
		if c.Mask&maskS == 0 {
			dst.FillRect(image.Rect(r.Min.X, r.Max.Y-edge, r.Max.X, r.Max.Y), s.Edge)
		}
		if c.Mask&maskW == 0 {
			dst.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+edge, r.Max.Y), s.Edge)
		}
		if c.Mask&maskE == 0 {
			dst.FillRect(image.Rect(r.Max.X-edge, r.Min.Y, r.Max.X, r.Max.Y), s.Edge)
		}
	}
}
