package core

import "image"

// Sprite is a loaded image handle. The core only needs its size.
type Sprite interface {
	Width() int
	Height() int
}

// Surface is the drawing capability the core renders onto.
type Surface interface {
	Size() (width, height int)
	Clear()
	// DrawSprite draws the src sub-rectangle of s with its top-left corner at (x, y).
	DrawSprite(s Sprite, src image.Rectangle, x, y float64)
}

// SpriteSheet is a horizontal strip of equally sized animation frames.
type SpriteSheet struct {
	Sprite        Sprite
	Frames        int
	TicksPerFrame int
}

// FrameWidth is the width of a single frame of the strip.
func (s SpriteSheet) FrameWidth() int {
	if s.Frames <= 0 {
		return s.Sprite.Width()
	}
	return s.Sprite.Width() / s.Frames
}

func (s SpriteSheet) FrameHeight() int {
	return s.Sprite.Height()
}

func (s SpriteSheet) valid() bool {
	return s.Sprite != nil && s.Frames >= 1 && s.TicksPerFrame >= 0 &&
		s.Sprite.Width() >= s.Frames && s.Sprite.Height() > 0
}

// SpriteSet is everything the simulation needs to spawn entities.
// Ships are assigned to players by index and wrap around when there are fewer
// ships than players. Alien rows cycle through Aliens.
type SpriteSet struct {
	Ships        []SpriteSheet
	Aliens       []SpriteSheet
	PlayerBullet SpriteSheet
	EnemyBullet  SpriteSheet
	Explosion    SpriteSheet
}

func (s SpriteSet) shipFor(i int) SpriteSheet {
	return s.Ships[i%len(s.Ships)]
}
