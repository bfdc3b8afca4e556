package scenes

import (
	"context"
	"fmt"
	"image/color"
	"sync"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/logging"
	"github.com/P1NHE4D/SpaceInvadersClient/network"
	"github.com/P1NHE4D/SpaceInvadersClient/systems"
	"github.com/P1NHE4D/SpaceInvadersClient/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GameOverScene shows the result, offers to file it with the score server
// and then lets the player retry or leave.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       systems.GameResult
	once         sync.Once
	nameUI       *ui.NameEntryUI
	client       *network.HighScoreClient

	mu         sync.Mutex
	submitDone bool
	submitErr  error
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, result systems.GameResult) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.GetOrCreateGameOver(gs.ecs).Stage != components.StageNameEntry || gs.nameUI == nil {
		return
	}
	gs.nameUI.Update()

	// Apply submit results on the main goroutine
	gs.mu.Lock()
	done, err := gs.submitDone, gs.submitErr
	gs.submitDone = false
	gs.mu.Unlock()
	if !done {
		return
	}
	if err != nil {
		logging.Named("scenes").Warn("score submission failed", zap.Error(err))
		systems.ShowGameOverMenu(gs.ecs, "Score not submitted: "+err.Error())
		return
	}
	systems.ShowGameOverMenu(gs.ecs, "Score submitted")
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	if gs.nameUI != nil && systems.GetOrCreateGameOver(gs.ecs).Stage == components.StageNameEntry {
		gs.nameUI.UI.Draw(screen)
	}
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.client = newScoreClient()

	scenes := systems.GameOverScenes{
		Retry: func() interface{} {
			return NewInvadersScene(gs.sceneChanger, gs.result.Multi)
		},
		HighScores: func() interface{} {
			return NewHighScoresScene(gs.sceneChanger)
		},
		Menu: func() interface{} {
			return NewMenuScene(gs.sceneChanger)
		},
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, scenes))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.SetupGameOver(gs.ecs, gs.result)
	logging.Named("scenes").Info("game over",
		zap.Int("score", gs.result.Total), zap.Int("level", gs.result.Level), zap.Bool("multi", gs.result.Multi))

	// Nothing worth filing
	if gs.result.Total <= 0 {
		systems.ShowGameOverMenu(gs.ecs, "")
		return
	}

	prompts := make([]string, len(gs.result.PlayerIDs))
	for i := range prompts {
		prompts[i] = fmt.Sprintf("Player %d", i+1)
	}
	nameUI, err := ui.NewNameEntryUI(prompts, gs.submit, func() {
		systems.ShowGameOverMenu(gs.ecs, "")
	})
	if err != nil {
		logging.Named("scenes").Error("name entry unavailable", zap.Error(err))
		systems.ShowGameOverMenu(gs.ecs, "")
		return
	}
	gs.nameUI = nameUI
}

func (gs *GameOverScene) submit(names []string) {
	gs.nameUI.SetSubmitting(true)
	gs.nameUI.SetStatus("Submitting...")

	result := gs.result
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Network.RequestTimeout)
		defer cancel()

		var err error
		if result.Multi && len(names) >= 2 {
			_, err = gs.client.SubmitMulti(ctx, network.MpHighScore{
				Player1: names[0],
				Player2: names[1],
				Score:   result.Total,
			})
		} else {
			_, err = gs.client.SubmitSingle(ctx, network.SpHighScore{Name: names[0], Score: result.Total})
		}

		gs.mu.Lock()
		gs.submitDone = true
		gs.submitErr = err
		gs.mu.Unlock()
	}()
}
