// Package animations steps sprite strips for scenery that lives outside the
// simulation, such as the menu parade.
package animations

import "image"

// Strip walks the frames of a horizontal sprite strip.
type Strip struct {
	Frames        int
	TicksPerFrame int
	Hold          bool // stay on the last frame instead of wrapping
	Looped        bool

	tick  int
	frame int
}

func NewStrip(frames, ticksPerFrame int) *Strip {
	if frames < 1 {
		frames = 1
	}
	return &Strip{Frames: frames, TicksPerFrame: ticksPerFrame}
}

// Update advances one tick.
func (s *Strip) Update() {
	s.tick++
	if s.tick <= s.TicksPerFrame {
		return
	}
	s.tick = 0
	if s.frame+1 < s.Frames {
		s.frame++
		return
	}
	s.Looped = true
	if !s.Hold {
		s.frame = 0
	}
}

func (s *Strip) Frame() int {
	return s.frame
}

func (s *Strip) Restart() {
	s.frame = 0
	s.tick = 0
	s.Looped = false
}

// Rect is the source rectangle of the current frame in a strip whose
// frames are w by h pixels.
func (s *Strip) Rect(w, h int) image.Rectangle {
	x := s.frame * w
	return image.Rect(x, 0, x+w, h)
}
