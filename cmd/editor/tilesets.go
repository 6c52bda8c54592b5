package main

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelview/assets"
	"github.com/milk9111/levelview/common"
	"github.com/milk9111/levelview/config"
	"github.com/milk9111/levelview/tileset"
)

// defaultSolids fill the slots that the config leaves empty.
var defaultSolids = [tileset.Slots]color.RGBA{
	{96, 160, 72, 255},
	{176, 128, 80, 255},
	{120, 120, 140, 255},
	{70, 130, 190, 255},
}

// buildTilesets loads every configured tileset. Slots that fail to load stay
// empty; the view then skips their objects. Without any configured tileset
// slot 0 uses the bundled stitch sheet and the others flat colours.
func buildTilesets(cfg *config.Editor, logger *slog.Logger) *tileset.Registry {
	reg := &tileset.Registry{}
	if len(cfg.Tilesets) == 0 {
		for i, c := range defaultSolids {
			_ = reg.Set(i, tileset.NewSolid(c))
		}
		sheet, err := assets.LoadImage(assets.StitchSheet)
		if err != nil {
			logger.Warn("bundled tileset unavailable", slog.Any("err", err))
			return reg
		}
		_ = reg.Set(0, tileset.NewAtlas(ebiten.NewImageFromImage(sheet), assets.StitchSheetTileSize, true))
		return reg
	}

	for _, ts := range cfg.Tilesets {
		if ts.Path == "" {
			fill, _ := common.ParseHexColor(ts.Color, defaultSolids[ts.Index])
			_ = reg.Set(ts.Index, tileset.NewSolid(fill))
			continue
		}
		sheet, err := tileset.LoadSheet(ts.Path)
		if err != nil {
			logger.Warn("tileset not loaded", slog.Int("index", ts.Index), slog.Any("err", err))
			continue
		}
		_ = reg.Set(ts.Index, tileset.NewAtlas(ebiten.NewImageFromImage(sheet), ts.TileSize, ts.Stitch))
		logger.Info("tileset loaded", slog.Int("index", ts.Index), slog.String("path", ts.Path))
	}
	return reg
}
