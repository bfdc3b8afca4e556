package animations

import (
	"image"
	"testing"
)

func TestStripWraps(t *testing.T) {
	s := NewStrip(2, 1)
	want := []int{0, 1, 1, 0, 0, 1}
	for i, w := range want {
		s.Update()
		if got := s.Frame(); got != w {
			t.Fatalf("tick %d: frame = %d, want %d", i+1, got, w)
		}
	}
	if !s.Looped {
		t.Error("Looped not set after wrapping")
	}
}

func TestStripHold(t *testing.T) {
	s := NewStrip(3, 0)
	s.Hold = true
	for i := 0; i < 10; i++ {
		s.Update()
	}
	if s.Frame() != 2 || !s.Looped {
		t.Errorf("frame = %d looped = %v, want 2 true", s.Frame(), s.Looped)
	}
	s.Restart()
	if s.Frame() != 0 || s.Looped {
		t.Error("Restart did not reset the strip")
	}
}

func TestStripRect(t *testing.T) {
	s := NewStrip(2, 0)
	s.Update()
	if got := s.Rect(40, 24); got != image.Rect(40, 0, 80, 24) {
		t.Errorf("Rect = %v", got)
	}
}

func TestNewStripClampsFrames(t *testing.T) {
	if NewStrip(0, 5).Frames != 1 {
		t.Error("frames should be at least 1")
	}
}
