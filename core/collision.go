package core

import "github.com/solarlune/resolv"

const (
	tagTarget = "target"
	tagBullet = "bullet"
)

// hit pairs a bullet with the target it struck, by index into the slices
// handed to findHits.
type hit struct {
	bullet int
	target int
}

// broadphase is a throwaway resolv space covering the field. Objects are
// shifted by one cell so nothing sits on a negative cell and are inflated by a
// pixel so edge contact always shares a cell; every candidate is confirmed
// with Overlaps.
type broadphase struct {
	space  *resolv.Space
	margin float64
}

func newBroadphase(field Rect, cell int) *broadphase {
	w := int(field.W) + 2*cell
	h := int(field.H) + 2*cell
	return &broadphase{
		space:  resolv.NewSpace(w, h, cell, cell),
		margin: float64(cell),
	}
}

func (b *broadphase) object(r Rect, index int, tag string) *resolv.Object {
	x := r.X + b.margin - 1
	y := r.Y + b.margin - 1
	obj := resolv.NewObject(x, y, r.W+2, r.H+2, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W+2, r.H+2))
	obj.Data = index
	return obj
}

// findHits matches bullets against targets. Bullets are handled in order and
// each one strikes at most one target, the earliest in target order. With
// consume set a struck target is taken out of play for the rest of the pass.
func findHits(bullets []*Projectile, targets []Rect, field Rect, cell int, consume bool) []hit {
	if len(bullets) == 0 || len(targets) == 0 {
		return nil
	}

	bp := newBroadphase(field, cell)
	objs := make([]*resolv.Object, len(targets))
	for i, t := range targets {
		objs[i] = bp.object(t, i, tagTarget)
		bp.space.Add(objs[i])
	}

	var hits []hit
	for bi, b := range bullets {
		box := b.Bounds()
		probe := bp.object(box, bi, tagBullet)
		bp.space.Add(probe)

		best := -1
		if check := probe.Check(0, 0, tagTarget); check != nil {
			for _, obj := range check.Objects {
				ti, ok := obj.Data.(int)
				if !ok || !Overlaps(box, targets[ti]) {
					continue
				}
				if best == -1 || ti < best {
					best = ti
				}
			}
		}
		bp.space.Remove(probe)

		if best == -1 {
			continue
		}
		hits = append(hits, hit{bullet: bi, target: best})
		if consume {
			bp.space.Remove(objs[best])
		}
	}
	return hits
}
