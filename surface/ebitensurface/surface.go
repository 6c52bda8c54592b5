// Package ebitensurface implements surface.Surface on an ebiten image.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/levelview/surface"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// pointsToPixels converts font points to pixels at 96 dpi.
const pointsToPixels = 96.0 / 72.0

// Faces holds the font sources shared by every surface.
type Faces struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	cache   map[surface.Font]text.Face
}

// NewFaces parses the embedded Go fonts.
func NewFaces() (*Faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: load bold font: %w", err)
	}
	return &Faces{regular: regular, bold: bold, cache: make(map[surface.Font]text.Face)}, nil
}

// Face returns the text face for f.
func (fs *Faces) Face(f surface.Font) text.Face {
	if face, ok := fs.cache[f]; ok {
		return face
	}
	src := fs.regular
	if f.Bold {
		src = fs.bold
	}
	face := &text.GoTextFace{Source: src, Size: f.Size * pointsToPixels}
	fs.cache[f] = face
	return face
}

// Surface draws onto an ebiten image. The clip is implemented with
// sub-images, which keep the parent's coordinate space.
type Surface struct {
	base      *ebiten.Image
	clip      image.Rectangle
	antialias bool
	faces     *Faces
}

var _ surface.Surface = (*Surface)(nil)

// New wraps dst. Antialiasing starts enabled.
func New(dst *ebiten.Image, faces *Faces) *Surface {
	return &Surface{base: dst, clip: dst.Bounds(), antialias: true, faces: faces}
}

// target returns the clipped destination, or nil when nothing is visible.
func (s *Surface) target() *ebiten.Image {
	if s.clip.Empty() {
		return nil
	}
	return s.base.SubImage(s.clip).(*ebiten.Image)
}

func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	dst := s.target()
	if dst == nil || r.Empty() {
		return
	}
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, s.antialias)
}

// StrokeRect keeps the stroke inside r so a 1 px outline covers exactly the
// boundary pixels.
func (s *Surface) StrokeRect(r image.Rectangle, width float64, c color.Color) {
	dst := s.target()
	if dst == nil || r.Empty() {
		return
	}
	x, y, w, h := surface.StrokeCenter(r, width)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, s.antialias)
}

func (s *Surface) FillRoundedRect(r image.Rectangle, radius float64, c color.Color) {
	for _, band := range surface.ChamferBands(r, radius) {
		s.FillRect(band, c)
	}
}

func (s *Surface) StrokeRoundedRect(r image.Rectangle, radius, width float64, c color.Color) {
	dst := s.target()
	if dst == nil || r.Empty() {
		return
	}
	k := float32(surface.CornerInset(r, radius))
	h := float32(width) / 2
	x0, y0 := float32(r.Min.X)+h, float32(r.Min.Y)+h
	x1, y1 := float32(r.Max.X)-h, float32(r.Max.Y)-h
	pts := [...][2]float32{
		{x0 + k, y0}, {x1 - k, y0}, {x1, y0 + k}, {x1, y1 - k},
		{x1 - k, y1}, {x0 + k, y1}, {x0, y1 - k}, {x0, y0 + k},
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if a == b {
			continue
		}
		vector.StrokeLine(dst, a[0], a[1], b[0], b[1], float32(width), c, s.antialias)
	}
}

func (s *Surface) Line(from, to image.Point, width float64, c color.Color) {
	dst := s.target()
	if dst == nil {
		return
	}
	vector.StrokeLine(dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), c, s.antialias)
}

// Text lays s out inside r. Text is never clipped to r itself, only to the
// surface clip.
func (s *Surface) Text(r image.Rectangle, str string, f surface.Font, c color.Color, align surface.Align) {
	dst := s.target()
	if dst == nil || str == "" || s.faces == nil {
		return
	}
	op := &text.DrawOptions{}
	switch align {
	case surface.AlignCenter:
		ctr := r.Min.Add(r.Max).Div(2)
		op.GeoM.Translate(float64(ctr.X), float64(ctr.Y))
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	default:
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	}
	op.ColorScale.ScaleWithColor(c)
	if !s.antialias {
		op.Filter = ebiten.FilterNearest
	}
	text.Draw(dst, str, s.faces.Face(f), op)
}

// DrawImage scales img to fill dst. Images that are not ebiten images are
// uploaded on every call.
func (s *Surface) DrawImage(img image.Image, dst image.Rectangle) {
	target := s.target()
	if target == nil || img == nil || dst.Empty() {
		return
	}
	eimg, ok := img.(*ebiten.Image)
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
	}
	sb := eimg.Bounds()
	if sb.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(sb.Dx()), float64(dst.Dy())/float64(sb.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	if s.antialias {
		op.Filter = ebiten.FilterLinear
	}
	target.DrawImage(eimg, op)
}

func (s *Surface) SetAntialias(on bool) bool {
	prev := s.antialias
	s.antialias = on
	return prev
}

func (s *Surface) Clip(r image.Rectangle) func() {
	prev := s.clip
	s.clip = prev.Intersect(r)
	return func() { s.clip = prev }
}
