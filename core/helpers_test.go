package core

import (
	"image"
	"testing"
)

type fakeSprite struct {
	w, h int
}

func (s fakeSprite) Width() int  { return s.w }
func (s fakeSprite) Height() int { return s.h }

type drawCall struct {
	src  image.Rectangle
	x, y float64
}

type fakeSurface struct {
	w, h   int
	clears int
	draws  []drawCall
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) Clear() {
	s.clears++
	s.draws = s.draws[:0]
}

func (s *fakeSurface) DrawSprite(_ Sprite, src image.Rectangle, x, y float64) {
	s.draws = append(s.draws, drawCall{src: src, x: x, y: y})
}

func testSprites() SpriteSet {
	return SpriteSet{
		Ships: []SpriteSheet{{Sprite: fakeSprite{40, 30}, Frames: 1}},
		Aliens: []SpriteSheet{
			{Sprite: fakeSprite{80, 24}, Frames: 2, TicksPerFrame: 10},
			{Sprite: fakeSprite{80, 24}, Frames: 2, TicksPerFrame: 10},
			{Sprite: fakeSprite{80, 24}, Frames: 2, TicksPerFrame: 10},
		},
		PlayerBullet: SpriteSheet{Sprite: fakeSprite{4, 10}, Frames: 1},
		EnemyBullet:  SpriteSheet{Sprite: fakeSprite{4, 10}, Frames: 1},
		Explosion:    SpriteSheet{Sprite: fakeSprite{320, 40}, Frames: 8},
	}
}

// newRunningGame returns a started single or multi player game on a 700x400 field.
func newRunningGame(t testing.TB, ids ...string) *Game {
	t.Helper()
	cfg := DefaultConfig()
	if len(ids) > 0 {
		cfg.PlayerIDs = ids
	}
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.AssetsLoaded(testSprites()); err != nil {
		t.Fatalf("AssetsLoaded: %v", err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

func unitAt(x, y float64, score int) *FormationUnit {
	sheet := SpriteSheet{Sprite: fakeSprite{40, 24}, Frames: 1}
	return &FormationUnit{Entity: newEntity(sheet, x, y), HitScore: score}
}

func bulletAt(x, y float64, dir Direction) *Projectile {
	sheet := SpriteSheet{Sprite: fakeSprite{4, 10}, Frames: 1}
	return newProjectile(sheet, x, y, dir, 3)
}
