package systems

import (
	"math"
	"testing"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
)

func TestShakeOffsetDecays(t *testing.T) {
	shake := &components.ScreenShakeData{Intensity: 10, Duration: 10}
	_, y0 := shakeOffset(shake)
	if math.Abs(y0-10) > 1e-9 {
		t.Errorf("first frame y = %v, want 10", y0)
	}

	shake.Elapsed = 10
	if x, y := shakeOffset(shake); x != 0 || y != 0 {
		t.Errorf("expired shake offset = (%v, %v)", x, y)
	}

	if x, y := shakeOffset(&components.ScreenShakeData{Intensity: 5}); x != 0 || y != 0 {
		t.Errorf("zero duration offset = (%v, %v)", x, y)
	}
}

func TestTriggerScreenShakeKeepsStronger(t *testing.T) {
	e := newTestECS()
	spawnTestSession(e, "player1")

	TriggerScreenShake(e, 5, 12)
	TriggerScreenShake(e, 1, 4)

	entry, _ := components.Session.First(e.World)
	shake := components.ScreenShake.Get(entry)
	if shake.Intensity != 5 || shake.Duration != 12 {
		t.Errorf("weaker shake replaced stronger: %+v", *shake)
	}

	TriggerScreenShake(e, 8, 30)
	if shake := components.ScreenShake.Get(entry); shake.Intensity != 8 || shake.Elapsed != 0 {
		t.Errorf("stronger shake not applied: %+v", *shake)
	}
}

func TestUpdateEffectsExpiresShake(t *testing.T) {
	e := newTestECS()
	spawnTestSession(e, "player1")
	TriggerScreenShake(e, 2, 3)

	for i := 0; i < 3; i++ {
		UpdateEffects(e)
	}
	entry, _ := components.Session.First(e.World)
	if d := components.ScreenShake.Get(entry).Duration; d != 0 {
		t.Errorf("shake still running for %d frames", d)
	}
	if x, y := ShakeOffset(e); x != 0 || y != 0 {
		t.Errorf("offset = (%v, %v) after expiry", x, y)
	}
}

func TestFlashAmount(t *testing.T) {
	tests := []struct {
		name string
		data components.FlashData
		want float32
	}{
		{"idle", components.FlashData{}, 0},
		{"fresh", components.FlashData{Duration: 10, Total: 10}, cfg.Flash.Strength},
		{"half", components.FlashData{Duration: 5, Total: 10}, cfg.Flash.Strength / 2},
		{"no total", components.FlashData{Duration: 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flashAmount(&tt.data)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("flashAmount = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlashCountsDown(t *testing.T) {
	e := newTestECS()
	spawnTestSession(e, "player1")
	TriggerFlash(e, "player1")

	for i := 0; i < cfg.Flash.Duration+2; i++ {
		UpdateEffects(e)
	}
	entry, _ := components.Player.First(e.World)
	if d := components.Flash.Get(entry).Duration; d != 0 {
		t.Errorf("flash duration = %d, want 0", d)
	}
}
