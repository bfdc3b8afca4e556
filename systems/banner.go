package systems

import (
	"image/color"

	"github.com/P1NHE4D/SpaceInvadersClient/archetypes"
	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/P1NHE4D/SpaceInvadersClient/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBanner shows msg in the middle of the field, replacing any banner
// already on screen.
func SpawnBanner(ecs *ecs.ECS, msg string, c color.RGBA) *donburi.Entry {
	clearBanners(ecs)

	b := cfg.Banner
	exit := float32(cfg.C.Height) + 20
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(b.SlideFrom), float32(b.Y), b.InFrames, ease.OutBack),
		gween.New(float32(b.Y), float32(b.Y), b.HoldFrames, ease.Linear),
		gween.New(float32(b.Y), exit, b.OutFrames, ease.InQuad),
	)

	entry := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(entry, components.BannerData{
		Text:  msg,
		Color: c,
		Y:     float32(b.SlideFrom),
	})
	components.Tween.Set(entry, tw)
	return entry
}

func clearBanners(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry
	tags.Banner.Each(ecs.World, func(e *donburi.Entry) {
		toDestroy = append(toDestroy, e)
	})
	for _, e := range toDestroy {
		e.Remove()
	}
}

// UpdateBanners steps banner tweens one frame and drops finished banners
func UpdateBanners(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	tags.Banner.Each(ecs.World, func(e *donburi.Entry) {
		banner := components.Banner.Get(e)
		y, _, done := components.Tween.Get(e).Update(1)
		banner.Y = y
		if done {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// DrawBanners renders the active banners centred on their tweened row
func DrawBanners(ecs *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	face := fonts.Title.Get()

	tags.Banner.Each(ecs.World, func(e *donburi.Entry) {
		banner := components.Banner.Get(e)
		x := (width - fonts.TextWidth(fonts.Title, banner.Text)) / 2
		y := int(banner.Y)
		text.Draw(screen, banner.Text, face, x+2, y+2, cfg.Banner.ShadowColor)
		text.Draw(screen, banner.Text, face, x, y, banner.Color)
	})
}
