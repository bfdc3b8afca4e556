package systems

import (
	"fmt"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScenes builds the scenes the game over menu can open
type GameOverScenes struct {
	Retry      func() interface{}
	HighScores func() interface{}
	Menu       func() interface{}
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability.
// The menu only takes input once name entry is finished.
func NewUpdateGameOver(sceneChanger SceneChanger, scenes GameOverScenes) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		if gameOver.Stage != components.StageMenu {
			return
		}
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(scenes.Retry())
			case components.GameOverHighScores:
				sceneChanger.ChangeScene(scenes.HighScores())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(scenes.Menu())
			}
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	drawCentered(screen, "GAME OVER", fonts.Title, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)
	for i, line := range resultLines(gameOver) {
		drawCentered(screen, line, fonts.Regular, int(cfg.GameOver.TitleY)+35+i*18, cfg.GameOver.TextColorNormal)
	}
	if gameOver.Status != "" {
		drawCentered(screen, gameOver.Status, fonts.Small, int(height)-30, cfg.Orange)
	}

	if gameOver.Stage != components.StageMenu {
		return
	}

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		x := int((width - float64(fonts.TextWidth(fonts.Bold, option))) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// resultLines are the score summary lines under the title
func resultLines(g *components.GameOverData) []string {
	mode := "1 PLAYER"
	if g.Multi {
		mode = "2 PLAYERS"
	}
	best := fmt.Sprintf("BEST %06d", g.Best)
	if g.NewBest {
		best = fmt.Sprintf("NEW BEST %06d", g.Best)
	}
	return []string{
		fmt.Sprintf("%s  SCORE %06d  LEVEL %d", mode, g.Score, g.Level),
		best,
	}
}

// ShowGameOverMenu ends name entry and hands input to the menu
func ShowGameOverMenu(e *ecs.ECS, status string) {
	gameOver := GetOrCreateGameOver(e)
	gameOver.Stage = components.StageMenu
	gameOver.Status = status
}

// SetupGameOver records the finished game and the local best it produced
func SetupGameOver(e *ecs.ECS, r GameResult) *components.GameOverData {
	gameOver := GetOrCreateGameOver(e)
	best, isNew := RecordBest(r)
	gameOver.Score = r.Total
	gameOver.Level = r.Level
	gameOver.PlayerIDs = r.PlayerIDs
	gameOver.Multi = r.Multi
	gameOver.Best = best.Score
	gameOver.NewBest = isNew
	return gameOver
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			Stage:          components.StageNameEntry,
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
