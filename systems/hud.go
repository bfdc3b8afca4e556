package systems

import (
	"fmt"

	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/core"
	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders scores and lives in the top corners and the level in the
// middle. Before the game starts it also shows the start prompt.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(ecs)
	if !ok {
		return
	}
	width := screen.Bounds().Dx()
	face := fonts.Mono.Get()
	margin := int(cfg.HUD.Margin)
	line := int(cfg.HUD.LineHeight)

	for i, p := range s.Game.Players() {
		lines := hudLines(i, p)
		c := cfg.HUD.PlayerColor[i%len(cfg.HUD.PlayerColor)]
		for j, l := range lines {
			x := margin
			if i%2 == 1 {
				x = width - margin - fonts.TextWidth(fonts.Mono, l)
			}
			lc := c
			if j == 1 && p.Lives <= 1 {
				lc = cfg.HUD.LowLife
			}
			text.Draw(screen, l, face, x, margin+line*(j+1), lc)
		}
	}

	level := fmt.Sprintf("LEVEL %d", s.Game.Level())
	text.Draw(screen, level, face, (width-fonts.TextWidth(fonts.Mono, level))/2, margin+line, cfg.HUD.TextColor)

	if s.Game.Phase() == core.PreGame {
		prompt := cfg.Banner.StartMessage
		y := int(cfg.Banner.Y)
		text.Draw(screen, prompt, fonts.Bold.Get(), (width-fonts.TextWidth(fonts.Bold, prompt))/2, y, cfg.Banner.TextColor)
		if s.Multi {
			hint := "P1: Arrows + Space    P2: A/D + W"
			text.Draw(screen, hint, fonts.Small.Get(), (width-fonts.TextWidth(fonts.Small, hint))/2, y+24, cfg.HUD.TextColor)
		}
	}
}

func hudLines(seat int, p core.PlayerView) []string {
	return []string{
		fmt.Sprintf("P%d %06d", seat+1, p.Score),
		fmt.Sprintf("LIVES %d", p.Lives),
	}
}
