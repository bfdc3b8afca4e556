package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake applied to the playfield
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData whitens a player's ship for a few frames after a hit
type FlashData struct {
	Duration int // frames remaining
	Total    int
}

var Flash = donburi.NewComponentType[FlashData]()
