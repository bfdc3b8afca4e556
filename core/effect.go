package core

// Explosion plays its animation once and then asks to be removed.
type Explosion struct {
	Entity
}

// Update reports true when the last frame has been reached; the explosion
// does not animate any further after that.
func (x *Explosion) Update() bool {
	if x.Frame == x.Frames-1 {
		return true
	}
	x.Entity.Update()
	return false
}

// spawnExplosion places an explosion at (x, y) kept fully inside field.
func spawnExplosion(sheet SpriteSheet, x, y float64, field Rect) *Explosion {
	e := &Explosion{Entity: newEntity(sheet, x, y)}
	e.X = clamp(e.X, field.Left(), field.Right()-e.W)
	e.Y = clamp(e.Y, field.Top(), field.Bottom()-e.H)
	return e
}
