package core

import "image"

// Entity is the positioned, sized and optionally animated part shared by
// every drawable thing in the simulation. Variants embed it.
type Entity struct {
	X, Y, W, H    float64
	Frame         int
	Frames        int
	TicksPerFrame int

	tick   int
	sprite Sprite
}

func newEntity(sheet SpriteSheet, x, y float64) Entity {
	frames := sheet.Frames
	if frames < 1 {
		frames = 1
	}
	return Entity{
		X:             x,
		Y:             y,
		W:             float64(sheet.FrameWidth()),
		H:             float64(sheet.FrameHeight()),
		Frames:        frames,
		TicksPerFrame: sheet.TicksPerFrame,
		sprite:        sheet.Sprite,
	}
}

// Update advances the animation. The frame moves on every TicksPerFrame+1 calls
// and wraps around.
func (e *Entity) Update() {
	e.tick++
	if e.tick > e.TicksPerFrame {
		e.tick = 0
		e.Frame = (e.Frame + 1) % e.Frames
	}
}

func (e *Entity) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// SourceRect is the sub-rectangle of the sprite strip holding the current frame.
func (e *Entity) SourceRect() image.Rectangle {
	w, h := int(e.W), int(e.H)
	return image.Rect(e.Frame*w, 0, (e.Frame+1)*w, h)
}

// Render draws the current frame. It never touches animation state.
func (e *Entity) Render(s Surface) {
	if e.sprite == nil {
		return
	}
	s.DrawSprite(e.sprite, e.SourceRect(), e.X, e.Y)
}
