package core

// MoveResult tells the owner of a projectile what happened on a move.
type MoveResult int

const (
	Moved MoveResult = iota
	// BoundaryReached means the move would carry the leading edge past the
	// field; the projectile did not move and should be removed by its owner.
	BoundaryReached
)

// Projectile travels along one axis at a fixed speed.
type Projectile struct {
	Entity
	Dir   Direction
	Speed float64
	Owner string
}

func newProjectile(sheet SpriteSheet, x, y float64, dir Direction, speed float64) *Projectile {
	return &Projectile{
		Entity: newEntity(sheet, x, y),
		Dir:    dir,
		Speed:  speed,
	}
}

// Move advances the projectile one step inside field.
func (p *Projectile) Move(field Rect) MoveResult {
	switch p.Dir {
	case Up:
		if p.Y-p.Speed > field.Top() {
			p.Y -= p.Speed
			return Moved
		}
	case Down:
		if p.Y+p.H+p.Speed < field.Bottom() {
			p.Y += p.Speed
			return Moved
		}
	}
	return BoundaryReached
}

// moveAll steps every projectile and drops those that reached the boundary,
// keeping the survivors in fire order.
func moveAll(ps []*Projectile, field Rect) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if p.Move(field) == Moved {
			kept = append(kept, p)
		}
	}
	clear(ps[len(kept):])
	return kept
}
