// Package view composites a level onto a surface and lets the user pick and
// drag one tile object at a time.
//
// A redraw fills the background, repaints the tile layers (consulting a
// fresh occupancy cache), then the annotations, then the selection outline.
// Every pass is clipped to the redraw rectangle, so a partial redraw matches
// the same region of a full one.
package view

import (
	"context"
	"image"
	"image/color"
	"log/slog"

	"github.com/milk9111/levelview/levels"
	"github.com/milk9111/levelview/surface"
	"github.com/milk9111/levelview/tileset"
	"golang.org/x/image/colornames"
)

// DefaultLayerMask enables every layer bit a level could use.
const DefaultLayerMask uint = 0x7

// DefaultBackground is painted under the tiles.
var DefaultBackground = colornames.Lightslategray

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// View draws one level and owns its selection.
type View struct {
	level      *levels.Level
	tilesets   *tileset.Registry
	grid       *tileset.Occupancy
	layerMask  uint
	background color.Color
	sel        selection
	onRedraw   func()
	logger     *slog.Logger
}

// Option configures a View.
type Option func(*View)

// WithLogger routes diagnostics to l. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithLayerMask sets the initial layer visibility mask (bit n = layer n).
func WithLayerMask(mask uint) Option {
	return func(v *View) { v.layerMask = mask }
}

// WithBackground sets the colour painted under the tiles.
func WithBackground(c color.Color) Option {
	return func(v *View) {
		if c != nil {
			v.background = c
		}
	}
}

// WithRedrawHandler registers fn to be called whenever input changed what
// the view would draw.
func WithRedrawHandler(fn func()) Option {
	return func(v *View) { v.onRedraw = fn }
}

// New creates a view over level. tilesets may be nil, in which case every
// object is treated as referencing a missing tileset.
func New(level *levels.Level, tilesets *tileset.Registry, opts ...Option) *View {
	if tilesets == nil {
		tilesets = &tileset.Registry{}
	}
	v := &View{
		level:      level,
		tilesets:   tilesets,
		grid:       tileset.NewOccupancy(),
		layerMask:  DefaultLayerMask,
		background: DefaultBackground,
		sel:        idle{},
		logger:     slog.New(nopHandler{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Level returns the level being edited.
func (v *View) Level() *levels.Level { return v.level }

// SetLevel swaps the level and drops the selection.
func (v *View) SetLevel(level *levels.Level) {
	v.level = level
	v.sel = idle{}
	v.requestRedraw()
}

// SetTilesets swaps the tileset registry. A nil registry empties every slot.
func (v *View) SetTilesets(tilesets *tileset.Registry) {
	if tilesets == nil {
		tilesets = &tileset.Registry{}
	}
	v.tilesets = tilesets
	v.requestRedraw()
}

// LayerMask returns the visibility mask.
func (v *View) LayerMask() uint { return v.layerMask }

// SetLayerMask changes which layers are drawn and pickable.
func (v *View) SetLayerMask(mask uint) {
	if mask == v.layerMask {
		return
	}
	v.layerMask = mask
	v.requestRedraw()
}

// LayerVisible reports whether layer is enabled.
func (v *View) LayerVisible(layer int) bool {
	return layer >= 0 && v.layerMask&(1<<uint(layer)) != 0
}

// ToggleLayer flips the visibility bit of layer.
func (v *View) ToggleLayer(layer int) {
	if layer < 0 {
		return
	}
	v.SetLayerMask(v.layerMask ^ (1 << uint(layer)))
}

func (v *View) requestRedraw() {
	if v.onRedraw != nil {
		v.onRedraw()
	}
}

// Draw repaints the part of the level inside redraw.
func (v *View) Draw(dst surface.Surface, redraw image.Rectangle) {
	restore := dst.Clip(redraw)
	defer restore()
	prevAA := dst.SetAntialias(true)
	defer dst.SetAntialias(prevAA)

	dst.FillRect(redraw, v.background)
	if v.level == nil {
		return
	}

	v.grid.Reset()
	v.drawLayers(dst, redraw)
	v.grid.Reset()

	v.drawOverlays(dst)
	v.drawSelection(dst)
}
