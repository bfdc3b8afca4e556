// Package logging builds the zap logger shared by the game and installs it
// as the zap global so systems can log through zap.L().
package logging

import (
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger from the logging config. An unknown level falls back
// to info.
func New(c cfg.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if c.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// Install replaces the zap globals and returns a func restoring the old ones.
func Install(l *zap.Logger) func() {
	return zap.ReplaceGlobals(l)
}

// Named returns a child of the global logger, e.g. Named("audio").
func Named(name string) *zap.Logger {
	return zap.L().Named(name)
}
