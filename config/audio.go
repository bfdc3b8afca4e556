package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundShoot
	SoundEnemyShoot
	SoundExplosion
	SoundPlayerHit
	// Progress sounds
	SoundExtraLife
	SoundLevelUp
	SoundGameOver
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundCount // Must be last
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to manifest resource names
type SoundConfig struct {
	Music             string
	SFX               map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		Music: "march",
		SFX: map[SoundID]string{
			SoundShoot:        "shoot",
			SoundEnemyShoot:   "enemy_shoot",
			SoundExplosion:    "explosion",
			SoundPlayerHit:    "player_hit",
			SoundExtraLife:    "extra_life",
			SoundLevelUp:      "level_up",
			SoundGameOver:     "game_over",
			SoundMenuNavigate: "menu_navigate",
			SoundMenuSelect:   "menu_select",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundEnemyShoot: 0.6,
			SoundPlayerHit:  1.4,
		},
	}
}
