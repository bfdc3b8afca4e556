package systems

import (
	"testing"

	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
)

func TestCoalesceSFX(t *testing.T) {
	pending := []cfg.SoundID{
		cfg.SoundExplosion, cfg.SoundShoot, cfg.SoundExplosion,
		cfg.SoundNone, cfg.SoundExplosion, cfg.SoundPlayerHit, cfg.SoundCount,
	}
	got := coalesceSFX(pending)
	want := []cfg.SoundID{cfg.SoundExplosion, cfg.SoundShoot, cfg.SoundPlayerHit}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMixerVolumes(t *testing.T) {
	music, sfx, muted := mixer.musicVol, mixer.sfxVol, mixer.muted
	defer mixer.setVolumes(music, sfx, muted)

	mixer.setVolumes(0.5, 0.8, false)
	if v := mixer.sfxVolume(cfg.SoundEnemyShoot); v != 0.8*cfg.Sound.VolumeMultipliers[cfg.SoundEnemyShoot] {
		t.Errorf("enemy shot volume = %v", v)
	}
	if v := mixer.sfxVolume(cfg.SoundPlayerHit); v != 1 {
		t.Errorf("boosted volume = %v, want capped at 1", v)
	}

	mixer.setVolumes(0.5, 0.8, true)
	if mixer.musicVolume() != 0 || mixer.sfxVolume(cfg.SoundShoot) != 0 {
		t.Error("muted mixer still audible")
	}
	if mixer.musicVol != 0.5 {
		t.Error("mute should keep the chosen volume")
	}
}

func TestPlaySFXQueues(t *testing.T) {
	e := newTestECS()
	PlaySFX(e, cfg.SoundShoot)
	PlaySFX(e, cfg.SoundShoot)
	if n := len(GetOrCreateAudio(e).PendingSFX); n != 2 {
		t.Errorf("queued %d sounds, want 2", n)
	}
}
