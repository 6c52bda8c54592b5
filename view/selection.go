package view

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/milk9111/levelview/common"
	"github.com/milk9111/levelview/levels"
	"github.com/milk9111/levelview/surface"
	"golang.org/x/image/colornames"
)

// ErrUnsupportedButton is returned for pointer events the view ignores.
var ErrUnsupportedButton = errors.New("unsupported pointer button")

// Buttons is a set of pointer buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

func (b Buttons) String() string {
	switch b {
	case 0:
		return "none"
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	}
	return fmt.Sprintf("buttons(%#x)", uint8(b))
}

// EventKind distinguishes pointer events.
type EventKind int

const (
	Press EventKind = iota
	Move
	Release
)

// PointerEvent is one pointer update in surface pixels. Button is the
// button that changed (press/release); Held is the set held after the
// event.
type PointerEvent struct {
	Kind   EventKind
	Button Buttons
	Held   Buttons
	Pos    image.Point
}

// selection is either idle or dragging; nothing else is representable.
type selection interface {
	isSelection()
}

type idle struct{}

// dragging refers to the object by position in the level plus its id, so a
// level edited behind the view's back cannot leave it dangling.
type dragging struct {
	layer  int
	index  int
	id     uint16
	offset image.Point
}

func (idle) isSelection()     {}
func (dragging) isSelection() {}

// HandlePointer routes an event to Press, Move or Release.
func (v *View) HandlePointer(ev PointerEvent) error {
	switch ev.Kind {
	case Press:
		return v.Press(ev.Button, ev.Pos)
	case Move:
		return v.Move(ev.Held, ev.Pos)
	case Release:
		return v.Release(ev.Button, ev.Pos)
	}
	return fmt.Errorf("pointer event kind %d: %w", ev.Kind, ErrUnsupportedButton)
}

// Press picks the topmost object under pos and starts dragging it. Any
// previous selection is dropped, hit or miss.
func (v *View) Press(button Buttons, pos image.Point) error {
	if button != ButtonPrimary {
		v.logger.Debug("ignore press", slog.String("button", button.String()))
		return fmt.Errorf("press %s: %w", button, ErrUnsupportedButton)
	}

	cell := common.PixelToCellPoint(pos)
	v.sel = idle{}
	if hit, ok := v.hitTest(cell); ok {
		v.sel = hit
		v.logger.Debug("select object",
			slog.String("id", fmt.Sprintf("%04X", hit.id)),
			slog.Int("layer", hit.layer),
			slog.Int("index", hit.index))
	}
	v.requestRedraw()
	return nil
}

// Move drags the selected object so that the grabbed cell follows pos.
// Moves are only honoured while exactly the primary button is held.
func (v *View) Move(held Buttons, pos image.Point) error {
	if held != ButtonPrimary {
		return fmt.Errorf("move with %s: %w", held, ErrUnsupportedButton)
	}
	if obj, d, ok := v.selected(); ok {
		cell := common.PixelToCellPoint(pos)
		obj.SetPosition(cell.X-d.offset.X, cell.Y-d.offset.Y)
	}
	v.requestRedraw()
	return nil
}

// Release ends a drag gesture. The selection stays until the next press.
func (v *View) Release(button Buttons, pos image.Point) error {
	return nil
}

// hitTest scans enabled layers from 0 upward and, inside a layer, objects
// from last to first. The first object containing cell wins.
func (v *View) hitTest(cell image.Point) (dragging, bool) {
	if v.level == nil {
		return dragging{}, false
	}
	for l := 0; l < levels.NumLayers; l++ {
		if !v.LayerVisible(l) {
			continue
		}
		objs := v.level.Objects[l]
		for i := len(objs) - 1; i >= 0; i-- {
			obj := objs[i]
			if !obj.Contains(cell.X, cell.Y) {
				continue
			}
			return dragging{
				layer:  l,
				index:  i,
				id:     obj.ID,
				offset: image.Pt(cell.X-obj.X, cell.Y-obj.Y),
			}, true
		}
	}
	return dragging{}, false
}

// selected resolves the dragging state against the current level. A stale
// reference resets the selection to idle.
func (v *View) selected() (*levels.Object, dragging, bool) {
	d, ok := v.sel.(dragging)
	if !ok {
		return nil, dragging{}, false
	}
	if v.level != nil && d.layer >= 0 && d.layer < levels.NumLayers {
		objs := v.level.Objects[d.layer]
		if d.index >= 0 && d.index < len(objs) && objs[d.index].ID == d.id {
			return &objs[d.index], d, true
		}
	}
	v.logger.Debug("drop stale selection", slog.Int("layer", d.layer), slog.Int("index", d.index))
	v.sel = idle{}
	return nil, dragging{}, false
}

// Selected returns the selected object's layer and index.
func (v *View) Selected() (layer, index int, ok bool) {
	_, d, ok := v.selected()
	if !ok {
		return 0, 0, false
	}
	return d.layer, d.index, true
}

// SelectedObject returns a copy of the selected object.
func (v *View) SelectedObject() (levels.Object, bool) {
	obj, _, ok := v.selected()
	if !ok {
		return levels.Object{}, false
	}
	return *obj, true
}

// drawSelection outlines the selected object black outside, white inside.
// It is the only pass drawn without antialiasing.
func (v *View) drawSelection(dst surface.Surface) {
	obj, _, ok := v.selected()
	if !ok {
		return
	}
	prev := dst.SetAntialias(false)
	defer dst.SetAntialias(prev)

	r := common.CellRect(obj.X, obj.Y, obj.Width, obj.Height)
	dst.StrokeRect(r.Inset(-1), 1, colornames.Black)
	dst.StrokeRect(r, 1, colornames.White)
}
