package view

import (
	"image"
	"image/color"

	"github.com/milk9111/levelview/common"
	"github.com/milk9111/levelview/levels"
	"github.com/milk9111/levelview/surface"
	"github.com/milk9111/levelview/tileset"
)

var viewport = image.Rect(0, 0, 640, 480)

type rasterCall struct {
	tileID     int
	x, y, w, h int
	layer      int
	boundary   int
	claimedPre int
}

// fakeTileset records every DrawObject call and paints the object's
// bounding box, claiming its cells like a real tileset would.
type fakeTileset struct {
	calls *[]rasterCall
	fill  color.Color
}

func (f fakeTileset) DrawObject(dst surface.Surface, grid *tileset.Occupancy, tileID, x, y, w, h, layer int) {
	boundary, _ := grid.ActiveLayer()
	*f.calls = append(*f.calls, rasterCall{
		tileID: tileID, x: x, y: y, w: w, h: h,
		layer: layer, boundary: boundary, claimedPre: grid.Len(),
	})
	tileset.Stitch(grid, x, y, w, h)
	dst.FillRect(common.CellRect(x, y, w, h), f.fill)
}

func newFakeRegistry(calls *[]rasterCall, slots ...int) *tileset.Registry {
	reg := &tileset.Registry{}
	if len(slots) == 0 {
		slots = []int{0}
	}
	for _, s := range slots {
		_ = reg.Set(s, fakeTileset{calls: calls, fill: color.RGBA{R: uint8(40 * (s + 1)), A: 0xff}})
	}
	return reg
}

func obj(id uint16, x, y, w, h int) levels.Object {
	return levels.Object{ID: id, X: x, Y: y, Width: w, Height: h}
}

// pixelOf returns the centre pixel of a cell.
func pixelOf(cx, cy int) image.Point {
	return image.Pt(common.CellToPixel(cx)+common.CellSize/2, common.CellToPixel(cy)+common.CellSize/2)
}

func outlineOps(rec *surface.Recorder) []surface.Op {
	var out []surface.Op
	for _, op := range rec.Filter(surface.OpStrokeRect) {
		if !op.Antialias {
			out = append(out, op)
		}
	}
	return out
}
