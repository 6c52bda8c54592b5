package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelview/config"
)

func main() {
	configPath := flag.String("config", "", "Editor config file (YAML)")
	levelPath := flag.String("level", "", "Level fixture to open (JSON); overrides the config")
	flag.Parse()

	cfg := &config.Editor{}
	if *configPath != "" {
		loaded, err := config.LoadEditor(*configPath)
		if err != nil {
			slog.Error("load config", slog.Any("err", err))
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg.ApplyDefaults()
	}
	if *levelPath != "" {
		abs, err := filepath.Abs(*levelPath)
		if err != nil {
			slog.Error("level path", slog.Any("err", err))
			os.Exit(1)
		}
		cfg.Level = abs
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Info("editor starting", slog.String("level", levelName(cfg.Level)), slog.Bool("watch", cfg.Watch))

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Error("start editor", slog.Any("err", err))
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		logger.Warn("close watcher", slog.Any("err", err))
	}
	if runErr != nil {
		logger.Error("run editor", slog.Any("err", runErr))
		os.Exit(1)
	}
}
