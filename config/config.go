package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// GameplayConfig mirrors the simulation tunables handed to the core
type GameplayConfig struct {
	ShipSpeed       float64
	BulletSpeed     float64
	FormationStep   float64
	FormationDrop   float64
	FormationTop    float64
	RowGap          float64
	HitScore        int
	StartLives      int
	StartRows       int
	ExtraLifeEvery  int
	EnemyMoveTicks  int // frames between formation steps
	EnemyShotTicks  int // frames between enemy shots
	FireRepeatTicks int // frames before a held fire button shoots again
	CellSize        int // collision broadphase cell size
	GameOverDelay   int // frames to linger on the field after the game ends
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	TitleDropFrom     float64 // title tweens in from this y
	TitleDropFrames   float32
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	ParadeY           float64
	ParadeSpeed       float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	EnemyKillIntensity float64 // pixels
	EnemyKillDuration  int     // frames
	PlayerHitIntensity float64
	PlayerHitDuration  int
	InvasionIntensity  float64
	InvasionDuration   int
}

// FlashConfig controls the white flash drawn over a ship that was hit
type FlashConfig struct {
	Duration int // frames
	Strength float32
}

// HUDConfig contains score/lives overlay configuration
type HUDConfig struct {
	TextColor   color.RGBA
	LowLife     color.RGBA
	Margin      float64
	LineHeight  float64
	PlayerColor []color.RGBA
}

// BannerConfig controls the centred level/start banners
type BannerConfig struct {
	TextColor    color.RGBA
	ShadowColor  color.RGBA
	Y            float64
	SlideFrom    float64
	InFrames     float32
	HoldFrames   float32
	OutFrames    float32
	StartMessage string
}

// LoadingConfig controls the asset loading screen
type LoadingConfig struct {
	BackgroundColor color.RGBA
	BarColor        color.RGBA
	ErrorColor      color.RGBA
	BarWidth        float64
	BarHeight       float64
}

// NetworkConfig points the client at the high score API
type NetworkConfig struct {
	ScoreAPIURL    string
	RequestTimeout time.Duration
}

// LoggingConfig mirrors the logger settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// DebugConfig contains developer switches (can be overridden by CLI flags)
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to a single player game
	Seed     uint64
}

var C *Config
var Gameplay GameplayConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var ScreenShake ScreenShakeConfig
var Flash FlashConfig
var HUD HUDConfig
var Banner BannerConfig
var Loading LoadingConfig
var Network NetworkConfig
var Logging LoggingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Space        = color.RGBA{R: 5, G: 5, B: 20, A: 255}
)

func init() {
	C = &Config{
		Width:  700,
		Height: 400,
		Title:  "Space Invaders",
	}

	Gameplay = GameplayConfig{
		ShipSpeed:       10,
		BulletSpeed:     3,
		FormationStep:   6,
		FormationDrop:   10,
		FormationTop:    30,
		RowGap:          10,
		HitScore:        40,
		StartLives:      3,
		StartRows:       4,
		ExtraLifeEvery:  1000,
		EnemyMoveTicks:  15,
		EnemyShotTicks:  60,
		FireRepeatTicks: 20,
		CellSize:        32,
		GameOverDelay:   90,
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Settings", "Quit to Menu"},
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:   Space,
		TitleColor:        BrightGreen,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            70,
		TitleDropFrom:     -40,
		TitleDropFrames:   45,
		MenuStartY:        120,
		MenuItemHeight:    24,
		MenuItemGap:       8,
		ParadeY:           340,
		ParadeSpeed:       0.6,
	}

	// Game Over Config
	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            60,
		MenuStartY:        170,
		MenuItemHeight:    24,
		MenuItemGap:       10,
		MenuOptions:       []string{"Retry", "High Scores", "Main Menu"},
	}

	// Screen Shake Config
	ScreenShake = ScreenShakeConfig{
		EnemyKillIntensity: 1.5,
		EnemyKillDuration:  4,
		PlayerHitIntensity: 5.0,
		PlayerHitDuration:  12,
		InvasionIntensity:  8.0,
		InvasionDuration:   30,
	}

	Flash = FlashConfig{
		Duration: 10,
		Strength: 0.85,
	}

	HUD = HUDConfig{
		TextColor:   White,
		LowLife:     LightRed,
		Margin:      8,
		LineHeight:  14,
		PlayerColor: []color.RGBA{LightRed, LightBlue},
	}

	Banner = BannerConfig{
		TextColor:    Yellow,
		ShadowColor:  BlackOverlay,
		Y:            200,
		SlideFrom:    -20,
		InFrames:     20,
		HoldFrames:   60,
		OutFrames:    20,
		StartMessage: "Press ENTER to start",
	}

	Loading = LoadingConfig{
		BackgroundColor: Space,
		BarColor:        BrightGreen,
		ErrorColor:      LightRed,
		BarWidth:        300,
		BarHeight:       10,
	}

	Network = NetworkConfig{
		ScoreAPIURL:    "http://localhost:5000/api",
		RequestTimeout: 5 * time.Second,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Seed:     0,
	}
}
