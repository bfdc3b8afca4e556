package core

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"inside", Rect{10, 10, 4, 4}, Rect{0, 0, 40, 40}, true},
		{"partial", Rect{35, 35, 10, 10}, Rect{0, 0, 40, 40}, true},
		{"touching right edge", Rect{40, 10, 4, 10}, Rect{0, 0, 40, 40}, true},
		{"touching bottom edge", Rect{10, 40, 4, 10}, Rect{0, 0, 40, 40}, true},
		{"touching corner", Rect{40, 40, 4, 4}, Rect{0, 0, 40, 40}, true},
		{"left of", Rect{-10, 10, 4, 4}, Rect{0, 0, 40, 40}, false},
		{"right of", Rect{41, 10, 4, 4}, Rect{0, 0, 40, 40}, false},
		{"above", Rect{10, -11, 4, 10}, Rect{0, 0, 40, 40}, false},
		{"below", Rect{10, 40.5, 4, 10}, Rect{0, 0, 40, 40}, false},
		{"same column apart", Rect{0, 0, 10, 10}, Rect{0, 20, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{3, 5, 2, 5},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
