package core

import "errors"

var (
	ErrEmptyFormation = errors.New("formation is empty")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrAssetsNotReady = errors.New("assets not loaded")
	ErrNotRunning     = errors.New("game is not running")
	ErrAlreadyStarted = errors.New("game already started")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrMissingSprite  = errors.New("missing sprite")
)
