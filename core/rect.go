package core

// Rect is an axis-aligned box anchored at its top-left corner. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether a and b intersect. Edges are inclusive, so two
// boxes that only touch along a side or a corner count as overlapping.
func Overlaps(a, b Rect) bool {
	return a.Left() <= b.Right() &&
		a.Right() >= b.Left() &&
		a.Top() <= b.Bottom() &&
		a.Bottom() >= b.Top()
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
