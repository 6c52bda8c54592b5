package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadEditor(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "editor.yaml", `
window:
  width: 800
  title: Test
level: levels/one.json
layers: 0x2
background: "#102030"
log_level: debug
watch: true
tilesets:
  - index: 0
    path: tiles/ground.png
    tile_size: 16
    stitch: true
  - index: 1
    color: "#ff8800"
`)

	cfg, err := LoadEditor(p)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, DefaultHeight, cfg.Window.Height)
	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, filepath.Join(dir, "levels", "one.json"), cfg.Level)
	require.NotNil(t, cfg.Layers)
	assert.Equal(t, uint(2), *cfg.Layers)
	assert.True(t, cfg.Watch)

	require.Len(t, cfg.Tilesets, 2)
	assert.Equal(t, filepath.Join(dir, "tiles", "ground.png"), cfg.Tilesets[0].Path)
	assert.Equal(t, 16, cfg.Tilesets[0].TileSize)
	assert.True(t, cfg.Tilesets[0].Stitch)
	assert.Equal(t, 20, cfg.Tilesets[1].TileSize)
	assert.Empty(t, cfg.Tilesets[1].Path)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, cfg.BackgroundColor(color.RGBA{}))
	assert.Equal(t, []string{cfg.Level, cfg.Tilesets[0].Path}, cfg.WatchedFiles())
}

func TestLoadEditorDefaults(t *testing.T) {
	p := writeFile(t, t.TempDir(), "editor.yaml", "{}\n")

	cfg, err := LoadEditor(p)
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, cfg.Window.Width)
	assert.Equal(t, DefaultHeight, cfg.Window.Height)
	assert.Equal(t, DefaultTitle, cfg.Window.Title)
	assert.Nil(t, cfg.Layers)
	assert.Empty(t, cfg.Level)
	assert.Empty(t, cfg.WatchedFiles())

	fallback := color.RGBA{R: 1, A: 0xff}
	assert.Equal(t, fallback, cfg.BackgroundColor(fallback))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load[Editor](filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p := writeFile(t, dir, "bad.yaml", "window: [1, 2\n")
	_, err = Load[Editor](p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: unmarshal")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Editor
		wantErr bool
	}{
		{name: "empty", cfg: Editor{LogLevel: "info"}},
		{name: "full", cfg: Editor{LogLevel: "warn", Background: "#000000", Tilesets: []Tileset{
			{Index: 0, Path: "a.png", TileSize: 20},
			{Index: 3, Color: "#abcdef", TileSize: 20},
		}}},
		{name: "index too high", cfg: Editor{LogLevel: "info", Tilesets: []Tileset{{Index: 4, TileSize: 20}}}, wantErr: true},
		{name: "negative index", cfg: Editor{LogLevel: "info", Tilesets: []Tileset{{Index: -1, TileSize: 20}}}, wantErr: true},
		{name: "duplicate index", cfg: Editor{LogLevel: "info", Tilesets: []Tileset{{Index: 1, TileSize: 20}, {Index: 1, TileSize: 20}}}, wantErr: true},
		{name: "zero tile size", cfg: Editor{LogLevel: "info", Tilesets: []Tileset{{Index: 0}}}, wantErr: true},
		{name: "bad tileset color", cfg: Editor{LogLevel: "info", Tilesets: []Tileset{{Index: 0, TileSize: 20, Color: "orange"}}}, wantErr: true},
		{name: "bad background", cfg: Editor{LogLevel: "info", Background: "#12"}, wantErr: true},
		{name: "non-hex background", cfg: Editor{LogLevel: "info", Background: "#77889g"}, wantErr: true},
		{name: "non-hex tileset color", cfg: Editor{LogLevel: "info", Tilesets: []Tileset{{Index: 0, TileSize: 20, Color: "#12345z"}}}, wantErr: true},
		{name: "bad log level", cfg: Editor{LogLevel: "loud"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBackgroundColorRejectsNonHex(t *testing.T) {
	fallback := color.RGBA{R: 1, A: 0xff}
	cfg := Editor{Background: "#77889g"}
	assert.Equal(t, fallback, cfg.BackgroundColor(fallback))
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Editor{LogLevel: "loud", Background: "nope", Tilesets: []Tileset{{Index: 9}}}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"tileset index 9", "tile size 0", "background", "log level"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	level := writeFile(t, dir, "level.json", "{}")
	other := writeFile(t, dir, "notes.txt", "")

	w, err := NewWatcher(level)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(level, []byte(`{"zones": []}`), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, level, name)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for level file")
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	level := writeFile(t, dir, "level.json", "{}")

	w, err := NewWatcher(level)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
	_, ok = <-w.Errors
	assert.False(t, ok)
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "level.json"))
	assert.Error(t, err)
}

func TestBundledEditorConfig(t *testing.T) {
	cfg, err := LoadEditor(filepath.Join("..", "cmd", "editor", "editor.yaml"))
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.Level))
	assert.FileExists(t, cfg.Level)
	require.NotEmpty(t, cfg.Tilesets)
	assert.FileExists(t, cfg.Tilesets[0].Path)
	require.NotNil(t, cfg.Layers)
	assert.Equal(t, uint(0x3), *cfg.Layers)
}
