package systems

import (
	"encoding/json"
	"math"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk. Volumes keep
// the player's choice while muted.
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	ShakeOff    bool    `json:"shakeOff"`
	Fullscreen  bool    `json:"fullscreen"`
	GamepadCoop bool    `json:"gamepadCoop"`
}

// SavedBest is the local best score of one game mode
type SavedBest struct {
	Score   int      `json:"score"`
	Level   int      `json:"level"`
	Players []string `json:"players,omitempty"`
}

const (
	settingsKey   = "settings"
	bestSingleKey = "best-single"
	bestMultiKey  = "best-multi"
)

// itemStore is the slice of *gdata.Manager persistence relies on
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the gdata store used for settings and local bests
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "space_invaders",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

func loadJSON(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.SaveItem(key, data)
}

// LoadSettings loads settings from disk. Nil means nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadJSON(settingsKey, &settings)
	if err != nil {
		logging.Named("persistence").Warn("could not load settings", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &settings, nil
}

// SaveCurrentSettings makes the overlay's values current and writes them out
func SaveCurrentSettings(s *components.SettingsMenuData) {
	setCurrentSettings(settingsFrom(s))
	if err := saveJSON(settingsKey, currentSettings); err != nil {
		logging.Named("persistence").Warn("could not save settings", zap.Error(err))
	}
}

// currentSettings is the source of truth for settings across scenes
var currentSettings = SavedSettings{
	MusicVolume: cfg.Audio.DefaultMusicVol,
	SFXVolume:   cfg.Audio.DefaultSFXVol,
}

// CurrentSettings returns a copy of the settings in effect
func CurrentSettings() SavedSettings {
	return currentSettings
}

// setCurrentSettings replaces the settings in effect and pushes the volumes
// to the mixer. Fullscreen is left to the caller.
func setCurrentSettings(v SavedSettings) {
	v.MusicVolume = clampVolume(v.MusicVolume)
	v.SFXVolume = clampVolume(v.SFXVolume)
	currentSettings = v
	mixer.setVolumes(v.MusicVolume, v.SFXVolume, v.Muted)
}

// ApplySavedSettingsGlobal applies settings before the first scene exists.
// Scenes pick the values up through GetOrCreateSettingsMenu.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	setCurrentSettings(*saved)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// settingsFrom converts the overlay's volume levels back to volumes
func settingsFrom(s *components.SettingsMenuData) SavedSettings {
	return SavedSettings{
		MusicVolume: volumeOf(s.MusicLevel),
		SFXVolume:   volumeOf(s.SoundLevel),
		Muted:       s.Muted,
		ShakeOff:    s.ShakeOff,
		Fullscreen:  s.Fullscreen,
		GamepadCoop: s.GamepadCoop,
	}
}

func volumeOf(level int) float64 {
	return float64(level) / float64(cfg.SettingsMenu.VolumeLevels)
}

func levelOf(volume float64) int {
	return int(math.Round(clampVolume(volume) * float64(cfg.SettingsMenu.VolumeLevels)))
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func bestKey(multi bool) string {
	if multi {
		return bestMultiKey
	}
	return bestSingleKey
}

// LoadBest returns the local best of a mode, zero when none was saved
func LoadBest(multi bool) SavedBest {
	var best SavedBest
	if _, err := loadJSON(bestKey(multi), &best); err != nil {
		logging.Named("persistence").Warn("could not load best score", zap.Error(err))
	}
	return best
}

// RecordBest stores the result if it beats the saved best and returns the
// best after the update.
func RecordBest(r GameResult) (SavedBest, bool) {
	best := LoadBest(r.Multi)
	if r.Total <= best.Score {
		return best, false
	}
	best = SavedBest{Score: r.Total, Level: r.Level, Players: r.PlayerIDs}
	if err := saveJSON(bestKey(r.Multi), best); err != nil {
		logging.Named("persistence").Warn("could not save best score", zap.Error(err))
	}
	return best, true
}
