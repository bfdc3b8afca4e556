package systems

import (
	"testing"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/tags"
)

func TestBannerLifecycle(t *testing.T) {
	e := newTestECS()
	texts := func() []string {
		var out []string
		for entry := range tags.Banner.Iter(e.World) {
			out = append(out, components.Banner.Get(entry).Text)
		}
		return out
	}

	SpawnBanner(e, "LEVEL 1", cfg.Yellow)
	SpawnBanner(e, "LEVEL 2", cfg.Yellow)
	if got := texts(); len(got) != 1 || got[0] != "LEVEL 2" {
		t.Fatalf("banners = %v, want only the newest", got)
	}

	UpdateBanners(e)
	if len(texts()) != 1 {
		t.Fatal("banner removed after one frame")
	}

	total := int(cfg.Banner.InFrames + cfg.Banner.HoldFrames + cfg.Banner.OutFrames)
	for i := 0; i < total+2; i++ {
		UpdateBanners(e)
	}
	if n := len(texts()); n != 0 {
		t.Errorf("%d banners left after the tween finished", n)
	}
}

func TestBannerHoldsOnRow(t *testing.T) {
	e := newTestECS()
	entry := SpawnBanner(e, "EXTRA LIFE", cfg.Yellow)

	for i := 0; i < int(cfg.Banner.InFrames)+int(cfg.Banner.HoldFrames)/2; i++ {
		UpdateBanners(e)
	}
	if y := components.Banner.Get(entry).Y; y != float32(cfg.Banner.Y) {
		t.Errorf("y during hold = %v, want %v", y, cfg.Banner.Y)
	}
}
