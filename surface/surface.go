// Package surface defines the 2D drawing target the level view paints into.
//
// All rectangles are half-open pixel rectangles in surface coordinates.
// Stroked rectangles outline the boundary pixels of the rectangle, so a
// stroke of image.Rect(0, 0, 10, 10) touches columns 0 and 9.
package surface

import (
	"image"
	"image/color"
)

// Font selects a label face.
type Font struct {
	Size float64
	Bold bool
}

var (
	// LabelFont is used by location labels.
	LabelFont = Font{Size: 10, Bold: true}
	// SmallFont is used by markers (sprites, entrances, path nodes).
	SmallFont = Font{Size: 7}
	// ZoneFont is used by zone labels.
	ZoneFont = Font{Size: 10}
)

// Align positions text inside its layout rectangle.
type Align int

const (
	AlignTopLeft Align = iota
	AlignCenter
)

// Surface is a drawing target with a global antialiasing switch and
// rectangular clipping.
type Surface interface {
	FillRect(r image.Rectangle, c color.Color)
	StrokeRect(r image.Rectangle, width float64, c color.Color)
	FillRoundedRect(r image.Rectangle, radius float64, c color.Color)
	StrokeRoundedRect(r image.Rectangle, radius, width float64, c color.Color)
	Line(from, to image.Point, width float64, c color.Color)
	Text(r image.Rectangle, s string, f Font, c color.Color, align Align)
	// DrawImage scales img to fill dst.
	DrawImage(img image.Image, dst image.Rectangle)

	// SetAntialias switches antialiasing and returns the previous setting.
	SetAntialias(on bool) bool
	// Clip restricts drawing to r intersected with the current clip. The
	// returned func restores the previous clip.
	Clip(r image.Rectangle) (restore func())
}
