package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultOverridesPath is read at startup when present
const DefaultOverridesPath = "invaders.toml"

// File is the on-disk shape of the optional overrides file. Keys left out
// of the file keep their built-in values.
type File struct {
	Window   WindowFile   `toml:"window"`
	Gameplay GameplayFile `toml:"gameplay"`
	Network  NetworkFile  `toml:"network"`
	Logging  LoggingFile  `toml:"logging"`
	Debug    DebugFile    `toml:"debug"`
}

type WindowFile struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type GameplayFile struct {
	ShipSpeed       float64 `toml:"ship_speed"`
	BulletSpeed     float64 `toml:"bullet_speed"`
	FormationStep   float64 `toml:"formation_step"`
	FormationDrop   float64 `toml:"formation_drop"`
	HitScore        int     `toml:"hit_score"`
	StartLives      int     `toml:"start_lives"`
	StartRows       int     `toml:"start_rows"`
	ExtraLifeEvery  int     `toml:"extra_life_every"`
	EnemyMoveTicks  int     `toml:"enemy_move_ticks"`
	EnemyShotTicks  int     `toml:"enemy_shot_ticks"`
	FireRepeatTicks int     `toml:"fire_repeat_ticks"`
}

type NetworkFile struct {
	ScoreAPIURL    string `toml:"score_api_url"`
	RequestTimeout string `toml:"request_timeout"` // e.g. "5s"
}

type LoggingFile struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DebugFile struct {
	SkipMenu bool   `toml:"skip_menu"`
	Seed     uint64 `toml:"seed"`
}

// LoadOverrides reads path and applies it over the package globals.
// A missing file is not an error. Keys the decoder did not recognise are
// returned so the caller can warn about them.
func LoadOverrides(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ApplyOverrides(string(data))
}

// ApplyOverrides decodes TOML text over the current globals. Nothing is
// applied when decoding or validation fails.
func ApplyOverrides(data string) ([]string, error) {
	f := current()
	meta, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	timeout, err := time.ParseDuration(f.Network.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("parse config: network.request_timeout: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	C.Width, C.Height, C.Title = f.Window.Width, f.Window.Height, f.Window.Title
	g := f.Gameplay
	Gameplay.ShipSpeed = g.ShipSpeed
	Gameplay.BulletSpeed = g.BulletSpeed
	Gameplay.FormationStep = g.FormationStep
	Gameplay.FormationDrop = g.FormationDrop
	Gameplay.HitScore = g.HitScore
	Gameplay.StartLives = g.StartLives
	Gameplay.StartRows = g.StartRows
	Gameplay.ExtraLifeEvery = g.ExtraLifeEvery
	Gameplay.EnemyMoveTicks = g.EnemyMoveTicks
	Gameplay.EnemyShotTicks = g.EnemyShotTicks
	Gameplay.FireRepeatTicks = g.FireRepeatTicks
	Network.ScoreAPIURL = strings.TrimRight(f.Network.ScoreAPIURL, "/")
	Network.RequestTimeout = timeout
	Logging = LoggingConfig{Level: f.Logging.Level, Format: f.Logging.Format}
	Debug = DebugConfig{SkipMenu: f.Debug.SkipMenu, Seed: f.Debug.Seed}

	var undecoded []string
	for _, k := range meta.Undecoded() {
		undecoded = append(undecoded, k.String())
	}
	return undecoded, nil
}

func current() File {
	return File{
		Window: WindowFile{Width: C.Width, Height: C.Height, Title: C.Title},
		Gameplay: GameplayFile{
			ShipSpeed:       Gameplay.ShipSpeed,
			BulletSpeed:     Gameplay.BulletSpeed,
			FormationStep:   Gameplay.FormationStep,
			FormationDrop:   Gameplay.FormationDrop,
			HitScore:        Gameplay.HitScore,
			StartLives:      Gameplay.StartLives,
			StartRows:       Gameplay.StartRows,
			ExtraLifeEvery:  Gameplay.ExtraLifeEvery,
			EnemyMoveTicks:  Gameplay.EnemyMoveTicks,
			EnemyShotTicks:  Gameplay.EnemyShotTicks,
			FireRepeatTicks: Gameplay.FireRepeatTicks,
		},
		Network: NetworkFile{
			ScoreAPIURL:    Network.ScoreAPIURL,
			RequestTimeout: Network.RequestTimeout.String(),
		},
		Logging: LoggingFile{Level: Logging.Level, Format: Logging.Format},
		Debug:   DebugFile{SkipMenu: Debug.SkipMenu, Seed: Debug.Seed},
	}
}

func (f File) validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	case f.Gameplay.StartLives <= 0:
		return fmt.Errorf("gameplay.start_lives must be positive, got %d", f.Gameplay.StartLives)
	case f.Gameplay.StartRows <= 0:
		return fmt.Errorf("gameplay.start_rows must be positive, got %d", f.Gameplay.StartRows)
	case f.Gameplay.EnemyMoveTicks <= 0 || f.Gameplay.EnemyShotTicks <= 0:
		return fmt.Errorf("gameplay enemy tick intervals must be positive")
	case f.Logging.Format != "json" && f.Logging.Format != "console":
		return fmt.Errorf("logging.format must be json or console, got %q", f.Logging.Format)
	}
	return nil
}
