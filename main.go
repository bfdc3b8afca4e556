package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/P1NHE4D/SpaceInvadersClient/logging"
	"github.com/P1NHE4D/SpaceInvadersClient/scenes"
	"github.com/P1NHE4D/SpaceInvadersClient/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoadingScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultOverridesPath, "TOML file with setting overrides")
	flag.Parse()

	undecoded, err := config.LoadOverrides(*configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(config.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	defer logging.Install(logger)()

	for _, key := range undecoded {
		logger.Warn("unknown config key", zap.String("key", key), zap.String("file", *configPath))
	}

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("persistence unavailable, settings will not be saved", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	logger.Info("starting",
		zap.Int("width", config.C.Width), zap.Int("height", config.C.Height),
		zap.String("score_api", config.Network.ScoreAPIURL))

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
