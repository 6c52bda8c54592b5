package main

import (
	"bytes"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// BuildEditorUI lays out the toolbar at the bottom of the window.
func BuildEditorUI(onToggleLayer func(layer int), onReload func()) (*ebitenui.UI, *ToolBar, error) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, nil, fmt.Errorf("load toolbar font: %w", err)
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, onToggleLayer, onReload)

	// Root container: anchor layout
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}
	root.AddChild(toolbarContainer)

	ui.Container = root
	return ui, toolBar, nil
}
