package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// BannerData is a line of centred text that slides in, holds and leaves.
// Its Y position comes from the entity's Tween.
type BannerData struct {
	Text  string
	Color color.RGBA
	Y     float32
}

var Banner = donburi.NewComponentType[BannerData]()
