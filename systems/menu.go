package systems

import (
	"os"

	"github.com/P1NHE4D/SpaceInvadersClient/assets"
	"github.com/P1NHE4D/SpaceInvadersClient/assets/animations"
	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScenes builds the scenes the main menu can open
type MenuScenes struct {
	Single     func() interface{}
	Multi      func() interface{}
	HighScores func() interface{}
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, scenes MenuScenes) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		updateMenuScenery(menu)

		if IsSettingsOpen(e) {
			return
		}

		input := getOrCreateInput(e)
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuSinglePlayer:
				FadeOutMusic(e)
				sceneChanger.ChangeScene(scenes.Single())
			case components.MainMenuMultiPlayer:
				FadeOutMusic(e)
				sceneChanger.ChangeScene(scenes.Multi())
			case components.MainMenuHighScores:
				sceneChanger.ChangeScene(scenes.HighScores())
			case components.MainMenuSettings:
				OpenSettings(e)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}
	}
}

// updateMenuScenery drops the title in and marches the parade along
func updateMenuScenery(menu *components.MenuData) {
	if menu.TitleTween != nil {
		menu.TitleY, _ = menu.TitleTween.Update(1)
	}

	span := float64(cfg.Parade.Count) * cfg.Parade.Spacing
	for i := range menu.Parade {
		a := &menu.Parade[i]
		a.X += cfg.Menu.ParadeSpeed
		if a.X > float64(cfg.C.Width) {
			a.X -= span
		}
		a.Anim.Update()
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, "SPACE INVADERS", fonts.Title, int(menu.TitleY), cfg.Menu.TitleColor)

	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, getOptionLabel(option), fonts.Bold, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	drawParade(screen, menu)

	input := getOrCreateInput(e)
	drawHint(screen, getMenuHint(input.LastInputMethod), cfg.Menu.TextColorNormal)
}

func drawParade(screen *ebiten.Image, menu *components.MenuData) {
	for _, a := range menu.Parade {
		sprite, err := assets.GetSprite(a.Sprite)
		if err != nil {
			continue
		}
		w := sprite.Width() / a.Anim.Frames
		frame := assets.GetFrame(sprite, a.Anim.Rect(w, sprite.Height()))

		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(cfg.Parade.Scale, cfg.Parade.Scale)
		drawOp.GeoM.Translate(a.X, cfg.Menu.ParadeY)
		screen.DrawImage(frame, drawOp)
	}
}

func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuSinglePlayer:
		return "1 Player"
	case components.MainMenuMultiPlayer:
		return "2 Players"
	case components.MainMenuHighScores:
		return "High Scores"
	case components.MainMenuSettings:
		return "Settings"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// newParade lines the aliens up off the left edge; aliens missing from the
// loader are skipped when drawn.
func newParade() []components.ParadeAlien {
	parade := make([]components.ParadeAlien, 0, cfg.Parade.Count)
	for i := 0; i < cfg.Parade.Count; i++ {
		name := cfg.Sprites.Aliens[i%len(cfg.Sprites.Aliens)]
		frames, ticks := 2, 20
		if r, ok := assets.Loader().Resource(name); ok {
			frames, ticks = r.Frames, r.TicksPerFrame
		}
		parade = append(parade, components.ParadeAlien{
			Sprite: name,
			X:      -float64(i+1) * cfg.Parade.Spacing,
			Anim:   animations.NewStrip(frames, ticks),
		})
	}
	return parade
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuSinglePlayer,
				components.MainMenuMultiPlayer,
				components.MainMenuHighScores,
				components.MainMenuSettings,
				components.MainMenuExit,
			},
			TitleTween: gween.New(float32(cfg.Menu.TitleDropFrom), float32(cfg.Menu.TitleY), cfg.Menu.TitleDropFrames, ease.OutBounce),
			TitleY:     float32(cfg.Menu.TitleDropFrom),
			Parade:     newParade(),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
