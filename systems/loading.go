package systems

import (
	"fmt"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLoading advances the spinner tick
func UpdateLoading(e *ecs.ECS) {
	GetOrCreateLoading(e).Ticks++
}

// SetLoadingProgress records how many resources are ready
func SetLoadingProgress(e *ecs.ECS, done, total int, err error) {
	l := GetOrCreateLoading(e)
	l.Done = done
	l.Total = total
	l.Err = err
}

// loadingFraction is the filled share of the bar, clamped to [0, 1]
func loadingFraction(l *components.LoadingData) float64 {
	if l.Total <= 0 {
		return 0
	}
	f := float64(l.Done) / float64(l.Total)
	return min(max(f, 0), 1)
}

// DrawLoading renders the progress bar, or the error that stopped loading
func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	l := GetOrCreateLoading(e)
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	screen.Fill(cfg.Loading.BackgroundColor)

	if l.Err != nil {
		drawCentered(screen, "COULD NOT LOAD ASSETS", fonts.Bold, int(height/2)-10, cfg.Loading.ErrorColor)
		drawCentered(screen, l.Err.Error(), fonts.Small, int(height/2)+14, cfg.Loading.ErrorColor)
		drawHint(screen, "Esc: Quit", cfg.White)
		return
	}

	dots := (l.Ticks / 20) % 4
	label := "LOADING" + "..."[:dots]
	drawCentered(screen, label, fonts.Bold, int(height/2)-16, cfg.White)

	barW := float32(cfg.Loading.BarWidth)
	barH := float32(cfg.Loading.BarHeight)
	x := (width - barW) / 2
	y := height / 2
	vector.StrokeRect(screen, x-2, y-2, barW+4, barH+4, 1, cfg.Loading.BarColor, false)
	vector.FillRect(screen, x, y, barW*float32(loadingFraction(l)), barH, cfg.Loading.BarColor, false)

	if l.Total > 0 {
		drawCentered(screen, fmt.Sprintf("%d / %d", l.Done, l.Total), fonts.Small, int(y+barH)+20, cfg.White)
	}
}

// GetOrCreateLoading returns the singleton Loading component, creating if needed
func GetOrCreateLoading(e *ecs.ECS) *components.LoadingData {
	if _, ok := components.Loading.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Loading))
	}
	ent, _ := components.Loading.First(e.World)
	return components.Loading.Get(ent)
}
