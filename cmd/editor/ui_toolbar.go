package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/levelview/levels"
)

// ToolBar holds the layer toggles and the reload button.
type ToolBar struct {
	layerButtons []*widget.Button
	status       *widget.Text
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, onToggleLayer func(layer int), onReload func()) (*widget.Container, *ToolBar) {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 40),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
	)

	tb := &ToolBar{}
	for l := 0; l < levels.NumLayers; l++ {
		layer := l
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(layerLabel(layer, true), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(96, 32),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onToggleLayer != nil {
					onToggleLayer(layer)
				}
			}),
		)
		tb.layerButtons = append(tb.layerButtons, btn)
		toolbar.AddChild(btn)
	}

	reload := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Reload", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 32),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onReload != nil {
				onReload()
			}
		}),
	)
	toolbar.AddChild(reload)

	tb.status = widget.NewText(widget.TextOpts.Text("", fontFace, color.White))
	toolbar.AddChild(tb.status)

	return toolbar, tb
}

func layerLabel(layer int, visible bool) string {
	state := "Off"
	if visible {
		state = "On"
	}
	return fmt.Sprintf("Layer %d: %s", layer, state)
}

// SetLayerVisible updates the label of a layer toggle.
func (t *ToolBar) SetLayerVisible(layer int, visible bool) {
	if t == nil || layer < 0 || layer >= len(t.layerButtons) {
		return
	}
	if text := t.layerButtons[layer].Text(); text != nil {
		text.Label = layerLabel(layer, visible)
	}
}

// SetStatus shows s next to the buttons.
func (t *ToolBar) SetStatus(s string) {
	if t == nil || t.status == nil {
		return
	}
	t.status.Label = s
}
