package view

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/milk9111/levelview/common"
	"github.com/milk9111/levelview/surface"
	"golang.org/x/image/colornames"
)

const (
	labelInset   = 5
	markerRadius = 2.0
	pathWidth    = 2.0
)

var (
	locationFill = color.NRGBA{R: 255, G: 255, B: 0, A: 100}
	spriteFill   = color.NRGBA{R: 0, G: 90, B: 150, A: 200}
	entranceFill = color.NRGBA{R: 182, G: 3, B: 3, A: 200}
	pathNodeFill = color.NRGBA{R: 0, G: 255, B: 20, A: 200}
	pathLine     = color.RGBA{R: 0, G: 255, B: 20, A: 255}
)

// markerRect is the fixed one-cell marker used by entrances and path nodes.
func markerRect(x, y int) image.Rectangle {
	p := common.FinePoint(x, y)
	return image.Rectangle{Min: p, Max: p.Add(image.Pt(common.CellSize, common.CellSize))}
}

// inset moves the top-left corner in by labelInset, leaving the bottom-right.
func inset(r image.Rectangle) image.Rectangle {
	r.Min = r.Min.Add(image.Pt(labelInset, labelInset))
	return r
}

// drawOverlays paints every annotation category in model order. Annotations
// are not culled; the surface clip bounds partial redraws.
func (v *View) drawOverlays(dst surface.Surface) {
	v.drawLocations(dst)
	v.drawSprites(dst)
	v.drawEntrances(dst)
	v.drawPaths(dst)
	v.drawZones(dst)
}

func (v *View) drawLocations(dst surface.Surface) {
	for _, loc := range v.level.Locations {
		r := common.FineRect(loc.X, loc.Y, loc.Width, loc.Height)
		dst.FillRect(r, locationFill)
		dst.StrokeRect(r, 1, colornames.Black)
		dst.Text(inset(r), strconv.Itoa(loc.ID), surface.LabelFont, colornames.White, surface.AlignTopLeft)
	}
}

func (v *View) drawSprites(dst surface.Surface) {
	for _, spr := range v.level.Sprites {
		p := common.FinePoint(spr.X, spr.Y)
		r := image.Rect(p.X, p.Y, p.X+spr.Width, p.Y+spr.Height)
		drawMarker(dst, r, spriteFill, strconv.Itoa(spr.ID))
	}
}

func (v *View) drawEntrances(dst surface.Surface) {
	for _, ent := range v.level.Entrances {
		drawMarker(dst, markerRect(ent.X, ent.Y), entranceFill, strconv.Itoa(ent.ID))
	}
}

func (v *View) drawPaths(dst surface.Surface) {
	for _, path := range v.level.Paths {
		for j := 0; j+1 < len(path.Nodes); j++ {
			a, b := path.Nodes[j], path.Nodes[j+1]
			dst.Line(common.FinePoint(a.X, a.Y), common.FinePoint(b.X, b.Y), pathWidth, pathLine)
		}
		for j, node := range path.Nodes {
			drawMarker(dst, markerRect(node.X, node.Y), pathNodeFill, fmt.Sprintf("%d-%d", path.ID, j+1))
		}
	}
}

func (v *View) drawZones(dst surface.Surface) {
	for _, zone := range v.level.Zones {
		r := common.FineRect(zone.X, zone.Y, zone.Width, zone.Height)
		dst.StrokeRect(r, 1, colornames.White)
		dst.Text(inset(r), "Zone "+strconv.Itoa(zone.ID), surface.ZoneFont, colornames.White, surface.AlignTopLeft)
	}
}

// drawMarker paints a translucent rounded marker with a centred label.
func drawMarker(dst surface.Surface, r image.Rectangle, fill color.Color, label string) {
	dst.FillRoundedRect(r, markerRadius, fill)
	dst.StrokeRoundedRect(r, markerRadius, 1, colornames.Black)
	dst.Text(r, label, surface.SmallFont, colornames.Black, surface.AlignCenter)
}
