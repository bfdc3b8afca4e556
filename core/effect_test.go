package core

import "testing"

func TestExplosionFinishesOnLastFrame(t *testing.T) {
	field := Rect{W: 700, H: 400}
	x := spawnExplosion(SpriteSheet{Sprite: fakeSprite{320, 40}, Frames: 8}, 100, 100, field)

	for i := 0; i < 7; i++ {
		if x.Update() {
			t.Fatalf("finished early on update %d at frame %d", i+1, x.Frame)
		}
	}
	if x.Frame != 7 {
		t.Fatalf("frame = %d, want 7", x.Frame)
	}
	if !x.Update() {
		t.Fatal("did not finish on the last frame")
	}
	if x.Frame != 7 {
		t.Errorf("frame advanced past the end to %d", x.Frame)
	}
}

func TestExplosionClampedToField(t *testing.T) {
	field := Rect{W: 700, H: 400}
	sheet := SpriteSheet{Sprite: fakeSprite{320, 40}, Frames: 8}
	tests := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{100, 100, 100, 100},
		{690, 390, 660, 360},
		{-5, -5, 0, 0},
		{680, 0, 660, 0},
	}
	for _, tt := range tests {
		e := spawnExplosion(sheet, tt.x, tt.y, field)
		if e.X != tt.wantX || e.Y != tt.wantY {
			t.Errorf("spawn at (%v,%v) landed at (%v,%v), want (%v,%v)", tt.x, tt.y, e.X, e.Y, tt.wantX, tt.wantY)
		}
	}
}
