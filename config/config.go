// Package config loads the editor's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/levelview/common"
	"github.com/milk9111/levelview/tileset"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultTitle  = "Level View"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Tileset binds a tileset slot to a tile sheet, or to a flat colour when
// Path is empty.
type Tileset struct {
	Index    int    `yaml:"index"`
	Path     string `yaml:"path"`
	TileSize int    `yaml:"tile_size"`
	Stitch   bool   `yaml:"stitch"`
	Color    string `yaml:"color"`
}

type Editor struct {
	Window     Window    `yaml:"window"`
	Level      string    `yaml:"level"`
	Layers     *uint     `yaml:"layers"`
	Background string    `yaml:"background"`
	Tilesets   []Tileset `yaml:"tilesets"`
	LogLevel   string    `yaml:"log_level"`
	Watch      bool      `yaml:"watch"`
}

// Load reads a YAML document from filename into a T.
func Load[T any](filename string) (T, error) {
	var zero T
	data, err := os.ReadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("config: read %s: %w", filename, err)
	}

	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	return cfg, nil
}

// LoadEditor loads, defaults and validates an editor config. Relative paths
// inside the file are resolved against the file's directory.
func LoadEditor(filename string) (*Editor, error) {
	cfg, err := Load[Editor](filename)
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	dir, err := filepath.Abs(filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	cfg.resolve(dir)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Editor) ApplyDefaults() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	for i := range c.Tilesets {
		if c.Tilesets[i].TileSize <= 0 {
			c.Tilesets[i].TileSize = common.CellSize
		}
	}
}

func (c *Editor) resolve(dir string) {
	c.Level = resolvePath(dir, c.Level)
	for i := range c.Tilesets {
		c.Tilesets[i].Path = resolvePath(dir, c.Tilesets[i].Path)
	}
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate reports every problem found, joined.
func (c *Editor) Validate() error {
	var errs []error
	seen := make(map[int]bool)
	for _, ts := range c.Tilesets {
		if ts.Index < 0 || ts.Index >= tileset.Slots {
			errs = append(errs, fmt.Errorf("tileset index %d out of range 0..%d: %w", ts.Index, tileset.Slots-1, ErrInvalid))
		} else if seen[ts.Index] {
			errs = append(errs, fmt.Errorf("tileset index %d bound twice: %w", ts.Index, ErrInvalid))
		}
		seen[ts.Index] = true
		if ts.TileSize <= 0 {
			errs = append(errs, fmt.Errorf("tileset %d: tile size %d: %w", ts.Index, ts.TileSize, ErrInvalid))
		}
		if ts.Path == "" && ts.Color != "" {
			if _, ok := common.ParseHexColor(ts.Color, color.RGBA{}); !ok {
				errs = append(errs, fmt.Errorf("tileset %d: color %q: %w", ts.Index, ts.Color, ErrInvalid))
			}
		}
	}
	if c.Background != "" {
		if _, ok := common.ParseHexColor(c.Background, color.RGBA{}); !ok {
			errs = append(errs, fmt.Errorf("background %q: %w", c.Background, ErrInvalid))
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel.
func (c *Editor) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalid)
	}
	return lvl, nil
}

// BackgroundColor returns the configured background, or fallback.
func (c *Editor) BackgroundColor(fallback color.RGBA) color.RGBA {
	bg, _ := common.ParseHexColor(c.Background, fallback)
	return bg
}

// WatchedFiles lists the files whose changes should trigger a reload.
func (c *Editor) WatchedFiles() []string {
	var files []string
	if c.Level != "" {
		files = append(files, c.Level)
	}
	for _, ts := range c.Tilesets {
		if ts.Path != "" {
			files = append(files, ts.Path)
		}
	}
	return files
}
