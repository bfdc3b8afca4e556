package systems

import (
	"fmt"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/P1NHE4D/SpaceInvadersClient/network"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const highScoreRows = 10

// UpdateHighScores switches tabs and flags a request to leave
func UpdateHighScores(e *ecs.ECS) {
	hs := GetOrCreateHighScores(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuLeft).JustPressed || GetAction(input, cfg.ActionMenuRight).JustPressed {
		PlaySFX(e, cfg.SoundMenuNavigate)
		if hs.Tab == components.TabSingle {
			hs.Tab = components.TabMulti
		} else {
			hs.Tab = components.TabSingle
		}
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		GetAction(input, cfg.ActionMenuSelect).JustPressed ||
		GetAction(input, cfg.ActionPause).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		hs.Back = true
	}
}

// SetHighScores stores a finished fetch of both leaderboards
func SetHighScores(e *ecs.ECS, single []network.SpHighScore, multi []network.MpHighScore, err error) {
	hs := GetOrCreateHighScores(e)
	hs.Loading = false
	hs.Err = err
	hs.Single = single
	hs.Multi = multi
}

// highScoreRowsFor formats the rows of the active tab
func highScoreRowsFor(hs *components.HighScoresData) []string {
	var rows []string
	if hs.Tab == components.TabSingle {
		for i, s := range hs.Single {
			if i == highScoreRows {
				break
			}
			rows = append(rows, fmt.Sprintf("%2d. %-20s %06d", i+1, s.Name, s.Score))
		}
		return rows
	}
	for i, s := range hs.Multi {
		if i == highScoreRows {
			break
		}
		rows = append(rows, fmt.Sprintf("%2d. %-12s %-12s %06d", i+1, s.Player1, s.Player2, s.Score))
	}
	return rows
}

// DrawHighScores renders the active leaderboard
func DrawHighScores(e *ecs.ECS, screen *ebiten.Image) {
	hs := GetOrCreateHighScores(e)
	screen.Fill(cfg.Menu.BackgroundColor)

	drawCentered(screen, "HIGH SCORES", fonts.Title, 45, cfg.Menu.TitleColor)

	single, multi := cfg.Pause.TextColorSelected, cfg.Pause.TextColorNormal
	if hs.Tab == components.TabMulti {
		single, multi = multi, single
	}
	mid := screen.Bounds().Dx() / 2
	text.Draw(screen, "1 PLAYER", fonts.Bold.Get(), mid-20-fonts.TextWidth(fonts.Bold, "1 PLAYER"), 80, single)
	text.Draw(screen, "2 PLAYERS", fonts.Bold.Get(), mid+20, 80, multi)

	switch {
	case hs.Loading:
		drawCentered(screen, "Loading...", fonts.Regular, 130, cfg.White)
	case hs.Err != nil:
		drawCentered(screen, "Could not reach the score server", fonts.Regular, 130, cfg.LightRed)
		drawCentered(screen, hs.Err.Error(), fonts.Small, 150, cfg.LightRed)
	default:
		rows := highScoreRowsFor(hs)
		if len(rows) == 0 {
			drawCentered(screen, "No scores yet", fonts.Regular, 130, cfg.White)
		}
		x := (screen.Bounds().Dx() - fonts.TextWidth(fonts.Mono, "00. "+fmt.Sprintf("%-20s", "")+" 000000")) / 2
		for i, row := range rows {
			text.Draw(screen, row, fonts.Mono.Get(), x, 110+i*20, cfg.White)
		}
	}

	drawHint(screen, "Left/Right: Switch   Esc: Back", cfg.Pause.TextColorNormal)
}

// GetOrCreateHighScores returns the singleton HighScores component, creating if needed
func GetOrCreateHighScores(e *ecs.ECS) *components.HighScoresData {
	if _, ok := components.HighScores.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.HighScores))
		components.HighScores.SetValue(ent, components.HighScoresData{Loading: true})
	}
	ent, _ := components.HighScores.First(e.World)
	return components.HighScores.Get(ent)
}
