package systems

import (
	"image"

	"github.com/P1NHE4D/SpaceInvadersClient/assets"
	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// screenSurface lets the simulation draw onto an ebiten image. Every sprite
// is shifted by the shake offset; ships listed in flash are drawn through
// the flash shader.
type screenSurface struct {
	dst        *ebiten.Image
	offX, offY float64
	flash      map[string]float32 // sprite name -> blend amount
}

func (s *screenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *screenSurface) Clear() {
	s.dst.Fill(cfg.Space)
}

func (s *screenSurface) DrawSprite(sp core.Sprite, src image.Rectangle, x, y float64) {
	sprite, ok := sp.(*assets.Sprite)
	if !ok {
		return
	}
	frame := assets.GetFrame(sprite, src)
	x += s.offX
	y += s.offY

	if amount := s.flash[sprite.Name]; amount > 0 && assets.FlashShader != nil {
		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Translate(x, y)
		shaderOp.Images[0] = frame
		shaderOp.Uniforms = map[string]any{"Amount": amount}
		s.dst.DrawRectShader(src.Dx(), src.Dy(), assets.FlashShader, shaderOp)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(x, y)
	s.dst.DrawImage(frame, drawOp)
}

var fieldSurface = &screenSurface{flash: map[string]float32{}}

// DrawField renders the simulation with the current shake and hit flashes
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(ecs)
	if !ok {
		return
	}

	fieldSurface.dst = screen
	fieldSurface.offX, fieldSurface.offY = ShakeOffset(ecs)
	clear(fieldSurface.flash)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		if amount := flashAmount(components.Flash.Get(e)); amount > 0 {
			fieldSurface.flash[shipSpriteFor(p.Index)] = amount
		}
	})

	s.Game.Render(fieldSurface)
}

// shipSpriteFor mirrors how the simulation hands ships out to seats
func shipSpriteFor(index int) string {
	ships := cfg.Sprites.Ships
	return ships[index%len(ships)]
}
