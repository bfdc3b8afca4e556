package assets

import (
	"context"
	"testing"

	"github.com/P1NHE4D/SpaceInvadersClient/assets/loader"
	"github.com/P1NHE4D/SpaceInvadersClient/config"
)

type sized struct{ w, h int }

func (s sized) Width() int  { return s.w }
func (s sized) Height() int { return s.h }

func TestManifestCoversConfig(t *testing.T) {
	m, err := Manifest()
	if err != nil {
		t.Fatalf("Manifest() error = %v", err)
	}
	kinds := make(map[string]loader.Kind, len(m.Resources))
	for _, r := range m.Resources {
		kinds[r.Name] = r.Kind
	}

	sprites := append([]string{}, config.Sprites.Ships...)
	sprites = append(sprites, config.Sprites.Aliens...)
	sprites = append(sprites, config.Sprites.PlayerBullet, config.Sprites.EnemyBullet, config.Sprites.Explosion)
	for _, n := range sprites {
		if kinds[n] != loader.KindImage {
			t.Errorf("sprite %q missing from manifest", n)
		}
	}

	sounds := []string{config.Sound.Music}
	for _, n := range config.Sound.SFX {
		sounds = append(sounds, n)
	}
	for _, n := range sounds {
		if kinds[n] != loader.KindAudio {
			t.Errorf("sound %q missing from manifest", n)
		}
	}
}

func TestEmbeddedResourcesDecode(t *testing.T) {
	m, err := Manifest()
	if err != nil {
		t.Fatal(err)
	}
	l := loader.New(FS)
	if err := l.Preload(context.Background(), m.Resources); err != nil {
		t.Fatalf("Preload() error = %v", err)
	}

	r, _ := l.Resource("Explosion")
	img, err := l.Image("Explosion")
	if err != nil {
		t.Fatal(err)
	}
	s := SheetOf(r, sized{img.Bounds().Dx(), img.Bounds().Dy()})
	if s.Frames != 8 || s.FrameWidth() != 40 {
		t.Errorf("explosion sheet = %d frames of %dpx, want 8 of 40px", s.Frames, s.FrameWidth())
	}
}

func TestSheetOfDefaultsFrames(t *testing.T) {
	s := SheetOf(loader.Resource{Name: "x"}, sized{10, 10})
	if s.Frames != 1 {
		t.Errorf("Frames = %d, want 1", s.Frames)
	}
}
