package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
	"github.com/younwookim/pollo/internal/application/game"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/scene/endscreen"
	"github.com/younwookim/pollo/internal/application/scene/menu"
	"github.com/younwookim/pollo/internal/application/scene/playing"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/infrastructure/assets"
	"github.com/younwookim/pollo/internal/infrastructure/audio"
	"github.com/younwookim/pollo/internal/infrastructure/canvas"
	"github.com/younwookim/pollo/internal/infrastructure/config"
	"github.com/younwookim/pollo/internal/infrastructure/prefs"
)

const appName = "pollo"

func runGame(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	cfg, content, err := loadConfig()
	if err != nil {
		return err
	}

	fsys := os.DirFS(flagAssets)
	catalog := assets.NewCatalog(fsys, logger)
	catalog.Preload(screenImages(cfg))
	surface, err := canvas.New(catalog, cfg.Entities.StatusBars.FontSize)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	mixer := audio.NewMixer(ebitenaudio.NewContext(cfg.Audio.SampleRate), fsys, cfg.Audio, logger)
	mixer.Preload()

	settings, err := prefs.Open(appName)
	if err != nil {
		logger.Warn("could not initialize persistence", "error", err)
	}
	muted := flagMute
	if settings != nil {
		saved, err := settings.Load()
		if err != nil {
			logger.Warn("could not load settings", "error", err)
		}
		muted = muted || saved.Muted
	}
	mixer.SetMuted(muted)

	env := &scene.Env{
		Config:  cfg,
		Level:   content,
		Sound:   mixer,
		Surface: surface,
		Input:   &scene.EbitenInput{},
		Prefs:   settings,
		Log:     logger,
		Debug:   flagDebug,
		Seed:    seed,
	}
	env.Menu = func() scene.Scene { return menu.New(env) }
	env.Playing = func() (scene.Scene, error) {
		p, err := playing.New(env)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	env.End = func(outcome world.Outcome, image string) scene.Scene {
		return endscreen.New(env, outcome, image)
	}

	display := cfg.Physics.Display
	scale := display.Scale
	if flagScale > 0 {
		scale = flagScale
	}
	ebiten.SetWindowSize(int(float64(display.ScreenWidth)*scale), int(float64(display.ScreenHeight)*scale))
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TPS)

	logger.Info("starting", "level", content.ID, "assets", flagAssets, "muted", muted)
	g := game.New(menu.New(env), display.ScreenWidth, display.ScreenHeight, logger)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	if missing := catalog.Missing(); len(missing) > 0 {
		logger.Warn("images were missing", "count", len(missing))
	}
	return nil
}

// screenImages lists the images every frame of a screen draws
func screenImages(cfg *config.GameConfig) []string {
	bars := cfg.Entities.StatusBars
	paths := []string{
		cfg.Entities.EndScreens.Start,
		cfg.Entities.EndScreens.Win,
		cfg.Entities.EndScreens.Lose,
		bars.Coin.Icon,
		bars.Bottle.Icon,
		bars.Boss.Empty,
		bars.Boss.Fill,
		bars.Boss.Icon,
	}
	return append(paths, bars.Health.Frames...)
}
