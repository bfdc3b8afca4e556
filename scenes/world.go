package scenes

import (
	"image/color"
	"sync"

	"github.com/P1NHE4D/SpaceInvadersClient/assets"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/logging"
	"github.com/P1NHE4D/SpaceInvadersClient/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// InvadersScene runs one game, for one player or two sharing the screen
type InvadersScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	multi        bool
	once         sync.Once

	result *systems.GameResult
	failed bool
}

func NewInvadersScene(sc SceneChanger, multi bool) *InvadersScene {
	return &InvadersScene{sceneChanger: sc, multi: multi}
}

func (is *InvadersScene) Update() {
	is.once.Do(is.configure)

	if is.failed {
		is.sceneChanger.ChangeScene(NewMenuScene(is.sceneChanger))
		return
	}

	is.ecs.Update()

	if is.result != nil {
		is.sceneChanger.ChangeScene(NewGameOverScene(is.sceneChanger, *is.result))
	}
}

func (is *InvadersScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if is.ecs == nil {
		return
	}
	is.ecs.Draw(screen)
}

func (is *InvadersScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(is.sceneChanger)
	}
	onEnd := func(r systems.GameResult) {
		is.result = &r
	}

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayerInput)
	e.AddSystem(systems.NewUpdatePause(is.sceneChanger, createMenuScene))

	// Game systems wrapped with the pause check
	e.AddSystem(systems.WithPauseCheck(systems.NewUpdateSession(onEnd)))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBanners))

	// Systems that run even when paused
	e.AddSystem(systems.UpdateSettingsMenu)

	e.AddRenderer(cfg.Default, systems.DrawField)
	e.AddRenderer(cfg.Default, systems.DrawBanners)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawPause)
	e.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)

	is.ecs = e

	log := logging.Named("scenes")
	sprites, err := assets.BuildSpriteSet(cfg.Sprites)
	if err != nil {
		log.Error("sprites unavailable", zap.Error(err))
		is.failed = true
		return
	}
	if _, err := systems.SetupSession(e, is.multi, sprites); err != nil {
		log.Error("could not start a game", zap.Error(err))
		is.failed = true
		return
	}
	if is.multi && systems.ControllerMode(e) {
		systems.BindGamepads(e)
	}

	systems.PlayMusic(e, cfg.Sound.Music)
}
