package surface

import (
	"image"
	"image/color"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpFillRoundedRect
	OpStrokeRoundedRect
	OpLine
	OpText
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill-rect"
	case OpStrokeRect:
		return "stroke-rect"
	case OpFillRoundedRect:
		return "fill-rrect"
	case OpStrokeRoundedRect:
		return "stroke-rrect"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	case OpImage:
		return "image"
	}
	return "unknown"
}

// Op is one recorded drawing call together with the surface state it was
// issued under.
type Op struct {
	Kind      OpKind
	Rect      image.Rectangle
	From, To  image.Point
	Width     float64
	Radius    float64
	Color     color.Color
	Text      string
	Font      Font
	Align     Align
	Image     image.Image
	Antialias bool
	Clip      image.Rectangle
}

// Bounds returns the pixel area the op can touch, before clipping.
func (o Op) Bounds() image.Rectangle {
	if o.Kind == OpLine {
		r := image.Rectangle{Min: o.From, Max: o.To}.Canon()
		r.Max = r.Max.Add(image.Pt(1, 1))
		return r
	}
	return o.Rect
}

// Visible returns the part of the op that survives the active clip.
func (o Op) Visible() image.Rectangle {
	return o.Bounds().Intersect(o.Clip)
}

// Recorder is an in-memory Surface that records every call. It never
// rasterizes; tests inspect Ops instead.
type Recorder struct {
	Ops       []Op
	bounds    image.Rectangle
	clip      image.Rectangle
	antialias bool
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns a recorder covering bounds, with antialiasing on.
func NewRecorder(bounds image.Rectangle) *Recorder {
	return &Recorder{bounds: bounds, clip: bounds, antialias: true}
}

func (r *Recorder) add(op Op) {
	op.Antialias = r.antialias
	op.Clip = r.clip
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.add(Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect image.Rectangle, width float64, c color.Color) {
	r.add(Op{Kind: OpStrokeRect, Rect: rect, Width: width, Color: c})
}

func (r *Recorder) FillRoundedRect(rect image.Rectangle, radius float64, c color.Color) {
	r.add(Op{Kind: OpFillRoundedRect, Rect: rect, Radius: radius, Color: c})
}

func (r *Recorder) StrokeRoundedRect(rect image.Rectangle, radius, width float64, c color.Color) {
	r.add(Op{Kind: OpStrokeRoundedRect, Rect: rect, Radius: radius, Width: width, Color: c})
}

func (r *Recorder) Line(from, to image.Point, width float64, c color.Color) {
	r.add(Op{Kind: OpLine, From: from, To: to, Width: width, Color: c})
}

func (r *Recorder) Text(rect image.Rectangle, s string, f Font, c color.Color, align Align) {
	r.add(Op{Kind: OpText, Rect: rect, Text: s, Font: f, Color: c, Align: align})
}

func (r *Recorder) DrawImage(img image.Image, dst image.Rectangle) {
	r.add(Op{Kind: OpImage, Rect: dst, Image: img})
}

func (r *Recorder) SetAntialias(on bool) bool {
	prev := r.antialias
	r.antialias = on
	return prev
}

func (r *Recorder) Clip(rect image.Rectangle) func() {
	prev := r.clip
	r.clip = prev.Intersect(rect)
	return func() { r.clip = prev }
}

// Antialias reports the current antialiasing setting.
func (r *Recorder) Antialias() bool { return r.antialias }

// CurrentClip reports the active clip rectangle.
func (r *Recorder) CurrentClip() image.Rectangle { return r.clip }

// Reset drops all recorded ops and restores the initial state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.clip = r.bounds
	r.antialias = true
}

// Filter returns the recorded ops of the given kinds, in call order.
func (r *Recorder) Filter(kinds ...OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		for _, k := range kinds {
			if op.Kind == k {
				out = append(out, op)
				break
			}
		}
	}
	return out
}

// Texts returns the strings of all recorded text ops, in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpText) {
		out = append(out, op.Text)
	}
	return out
}
