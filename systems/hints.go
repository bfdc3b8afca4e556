package systems

import (
	"image/color"

	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// drawHint draws a one-line control hint centred at the bottom of the screen
func drawHint(screen *ebiten.Image, hint string, c color.Color) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	x := (width - fonts.TextWidth(fonts.Small, hint)) / 2
	text.Draw(screen, hint, fonts.Small.Get(), x, height-12, c)
}

// drawCentered draws s centred horizontally with its baseline at y
func drawCentered(screen *ebiten.Image, s string, f fonts.FontName, y int, c color.Color) {
	x := (screen.Bounds().Dx() - fonts.TextWidth(f, s)) / 2
	text.Draw(screen, s, f.Get(), x, y, c)
}
