package core

import "testing"

func TestFindHitsEarliestTargetWins(t *testing.T) {
	field := Rect{W: 700, H: 400}
	targets := []Rect{{100, 100, 40, 24}, {120, 100, 40, 24}}
	bullets := []*Projectile{bulletAt(130, 110, Up)}

	hits := findHits(bullets, targets, field, 32, true)
	if len(hits) != 1 || hits[0] != (hit{bullet: 0, target: 0}) {
		t.Fatalf("hits = %+v, want bullet 0 on target 0", hits)
	}
}

func TestFindHitsConsumedTargetIsNotHitTwice(t *testing.T) {
	field := Rect{W: 700, H: 400}
	targets := []Rect{{100, 100, 40, 24}, {200, 100, 40, 24}}
	bullets := []*Projectile{bulletAt(110, 110, Up), bulletAt(112, 110, Up), bulletAt(210, 110, Up)}

	hits := findHits(bullets, targets, field, 32, true)
	want := []hit{{bullet: 0, target: 0}, {bullet: 2, target: 1}}
	if len(hits) != len(want) {
		t.Fatalf("hits = %+v, want %+v", hits, want)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hit %d = %+v, want %+v", i, hits[i], want[i])
		}
	}
}

func TestFindHitsSingleTargetTakesEveryBullet(t *testing.T) {
	field := Rect{W: 700, H: 400}
	ship := []Rect{{330, 370, 40, 30}}
	bullets := []*Projectile{bulletAt(340, 365, Down), bulletAt(10, 10, Down), bulletAt(350, 380, Down)}

	hits := findHits(bullets, ship, field, 32, false)
	if len(hits) != 2 || hits[0].bullet != 0 || hits[1].bullet != 2 {
		t.Fatalf("hits = %+v, want bullets 0 and 2", hits)
	}
}

func TestFindHitsEdgeContact(t *testing.T) {
	field := Rect{W: 700, H: 400}
	tests := []struct {
		name string
		b    *Projectile
		want bool
	}{
		{"bullet top touches target bottom", bulletAt(110, 124, Up), true},
		{"bullet right touches target left", bulletAt(96, 105, Up), true},
		{"one pixel below", bulletAt(110, 125, Up), false},
		{"one pixel left", bulletAt(95, 105, Up), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := findHits([]*Projectile{tt.b}, []Rect{{100, 100, 40, 24}}, field, 32, true)
			if got := len(hits) == 1; got != tt.want {
				t.Errorf("hit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindHitsEmpty(t *testing.T) {
	field := Rect{W: 700, H: 400}
	if hits := findHits(nil, []Rect{{0, 0, 1, 1}}, field, 32, true); hits != nil {
		t.Errorf("hits = %+v, want nil", hits)
	}
	if hits := findHits([]*Projectile{bulletAt(0, 0, Up)}, nil, field, 32, true); hits != nil {
		t.Errorf("hits = %+v, want nil", hits)
	}
}
