package main

import (
	"errors"
	"image"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/levelview/config"
	"github.com/milk9111/levelview/levels"
	"github.com/milk9111/levelview/surface/ebitensurface"
	"github.com/milk9111/levelview/view"
)

const embeddedLevel = "sample.json"

// Game hosts the level view in an ebiten window. The view is rendered into
// an offscreen canvas that is only repainted after the view asks for it.
type Game struct {
	cfg     *config.Editor
	logger  *slog.Logger
	view    *view.View
	ui      *ebitenui.UI
	toolbar *ToolBar
	watcher *config.Watcher
	faces   *ebitensurface.Faces

	canvas  *ebiten.Image
	dirty   bool
	reload  bool
	lastPos image.Point
	gesture view.Gesture
}

func NewGame(cfg *config.Editor, logger *slog.Logger) (*Game, error) {
	lvl, err := loadLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	faces, err := ebitensurface.NewFaces()
	if err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg, logger: logger, faces: faces, dirty: true}

	opts := []view.Option{
		view.WithLogger(logger),
		view.WithBackground(cfg.BackgroundColor(view.DefaultBackground)),
		view.WithRedrawHandler(func() { g.dirty = true }),
	}
	if cfg.Layers != nil {
		opts = append(opts, view.WithLayerMask(*cfg.Layers))
	}
	g.view = view.New(lvl, buildTilesets(cfg, logger), opts...)

	g.ui, g.toolbar, err = BuildEditorUI(g.toggleLayer, func() { g.reload = true })
	if err != nil {
		return nil, err
	}
	for l := 0; l < levels.NumLayers; l++ {
		g.toolbar.SetLayerVisible(l, g.view.LayerVisible(l))
	}
	g.toolbar.SetStatus(levelName(cfg.Level))

	if cfg.Watch {
		if files := cfg.WatchedFiles(); len(files) > 0 {
			w, err := config.NewWatcher(files...)
			if err != nil {
				logger.Warn("hot reload disabled", slog.Any("err", err))
			} else {
				g.watcher = w
			}
		}
	}
	return g, nil
}

func loadLevel(path string) (*levels.Level, error) {
	if path == "" {
		return levels.LoadEmbedded(embeddedLevel)
	}
	return levels.Load(path)
}

func levelName(path string) string {
	if path == "" {
		return embeddedLevel + " (embedded)"
	}
	return path
}

// Close stops the file watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) toggleLayer(layer int) {
	g.view.ToggleLayer(layer)
	g.toolbar.SetLayerVisible(layer, g.view.LayerVisible(layer))
}

func (g *Game) Update() error {
	g.ui.Update()
	g.drainWatcher()
	if g.reload {
		g.reload = false
		g.reloadLevel()
		g.view.SetTilesets(buildTilesets(g.cfg, g.logger))
	}
	g.handlePointer()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Info("file changed", slog.String("path", name))
			if name == g.cfg.Level {
				g.reloadLevel()
			} else {
				g.view.SetTilesets(buildTilesets(g.cfg, g.logger))
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("watch error", slog.Any("err", err))
		default:
			return
		}
	}
}

// reloadLevel keeps the current level when the file cannot be read, e.g.
// while an editor is halfway through saving it.
func (g *Game) reloadLevel() {
	lvl, err := loadLevel(g.cfg.Level)
	if err != nil {
		g.logger.Warn("level reload failed", slog.Any("err", err))
		g.toolbar.SetStatus("reload failed")
		return
	}
	g.view.SetLevel(lvl)
	g.logger.Info("level reloaded", slog.String("path", levelName(g.cfg.Level)), slog.Int("objects", lvl.ObjectCount()))
	g.toolbar.SetStatus(levelName(g.cfg.Level))
}

var mouseButtons = []struct {
	mouse ebiten.MouseButton
	view  view.Buttons
}{
	{ebiten.MouseButtonLeft, view.ButtonPrimary},
	{ebiten.MouseButtonRight, view.ButtonSecondary},
	{ebiten.MouseButtonMiddle, view.ButtonMiddle},
}

// handlePointer translates ebiten mouse state into view pointer events.
// Presses over the toolbar belong to the UI, and so does the rest of their
// gesture.
func (g *Game) handlePointer() {
	pos := image.Pt(ebiten.CursorPosition())

	var held view.Buttons
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.mouse) {
			held |= b.view
		}
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			g.dispatch(view.PointerEvent{Kind: view.Press, Button: b.view, Held: held, Pos: pos})
		}
	}
	if pos != g.lastPos && held != 0 {
		g.dispatch(view.PointerEvent{Kind: view.Move, Held: held, Pos: pos})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			g.dispatch(view.PointerEvent{Kind: view.Release, Button: b.view, Held: held, Pos: pos})
		}
	}
	g.lastPos = pos
}

func (g *Game) dispatch(ev view.PointerEvent) {
	if !g.gesture.Accept(ev, ebuiinput.UIHovered) {
		return
	}
	if err := g.view.HandlePointer(ev); err != nil && !errors.Is(err, view.ErrUnsupportedButton) {
		g.logger.Warn("pointer event", slog.Any("err", err))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if b := screen.Bounds(); g.canvas == nil || g.canvas.Bounds() != b {
		g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
		g.dirty = true
	}
	if g.dirty {
		g.dirty = false
		g.view.Draw(ebitensurface.New(g.canvas, g.faces), g.canvas.Bounds())
	}
	screen.DrawImage(g.canvas, nil)
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
