package core

import "math"

// FormationUnit is one enemy. Its movement direction lives on the Formation.
type FormationUnit struct {
	Entity
	HitScore int
	Kind     int
}

// TestBoundary reports whether one more move in dir would push the unit
// against the edge of field.
func (u *FormationUnit) TestBoundary(dir Direction, step, drop float64, field Rect) bool {
	switch dir {
	case Right:
		return u.X+u.W+step >= field.Right()
	case Left:
		return u.X-step <= field.Left()
	case Down:
		return u.Y+u.H+drop >= field.Bottom()
	default:
		return false
	}
}

// Formation is the enemy fleet. All units share Dir.
type Formation struct {
	Units []*FormationUnit
	Dir   Direction
	Step  float64
	Drop  float64
}

// Move performs one formation step. The boundary probe runs over every unit
// before any unit moves. If a unit is at the wall, the whole formation drops
// and the shared direction flips; otherwise every unit steps sideways.
// It reports whether the formation dropped.
func (f *Formation) Move(field Rect) bool {
	reached := false
	for _, u := range f.Units {
		if u.TestBoundary(f.Dir, f.Step, f.Drop, field) {
			reached = true
			break
		}
	}

	if reached {
		for _, u := range f.Units {
			u.Y += f.Drop
		}
		f.Dir = f.Dir.Opposite()
		return true
	}

	dx := f.Step
	if f.Dir == Left {
		dx = -f.Step
	}
	for _, u := range f.Units {
		u.X += dx
	}
	return false
}

// Lowest returns the largest bottom edge in the formation, or -Inf when empty.
func (f *Formation) Lowest() float64 {
	lowest := math.Inf(-1)
	for _, u := range f.Units {
		lowest = math.Max(lowest, u.Bottom())
	}
	return lowest
}

// remove drops the units at the given indices, preserving order.
func (f *Formation) remove(dead map[int]bool) {
	if len(dead) == 0 {
		return
	}
	kept := f.Units[:0]
	for i, u := range f.Units {
		if !dead[i] {
			kept = append(kept, u)
		}
	}
	clear(f.Units[len(kept):])
	f.Units = kept
}

// RowSize is how many units of width w fit in a row on a field of width fieldW
// with gap pixels between them and a margin of one unit on each side.
func RowSize(fieldW, w, gap float64) int {
	if w <= 0 {
		return 0
	}
	n := math.Floor((fieldW - 2*w) / (w + gap))
	if n < 0 {
		return 0
	}
	return int(n)
}

// SpawnRow builds one row of units at height y, left to right from x = w.
func SpawnRow(sheet SpriteSheet, kind int, y float64, field Rect, gap float64, hitScore int) []*FormationUnit {
	w := float64(sheet.FrameWidth())
	n := RowSize(field.W, w, gap)
	row := make([]*FormationUnit, 0, n)
	for i := 0; i < n; i++ {
		x := field.Left() + w + float64(i)*(w+gap)
		row = append(row, &FormationUnit{
			Entity:   newEntity(sheet, x, y),
			HitScore: hitScore,
			Kind:     kind,
		})
	}
	return row
}

// Bottom is the lower edge of the unit.
func (u *FormationUnit) Bottom() float64 {
	return u.Y + u.H
}
