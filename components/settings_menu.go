package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption is a row of the settings overlay, in display order
type SettingsMenuOption int

const (
	SettingsOptMusic SettingsMenuOption = iota
	SettingsOptSound
	SettingsOptMute
	SettingsOptShake
	SettingsOptFullscreen
	SettingsOptCoopInput
	SettingsOptControls
	SettingsOptBack
	SettingsOptCount
)

// SettingsMenuData is the overlay state plus the values being edited.
// Volumes are whole levels from 0 to config.SettingsMenu.VolumeLevels.
type SettingsMenuData struct {
	IsOpen          bool
	Selected        SettingsMenuOption
	ShowingControls bool
	Dirty           bool // something changed since the overlay opened

	MusicLevel  int
	SoundLevel  int
	Muted       bool
	ShakeOff    bool
	Fullscreen  bool
	GamepadCoop bool // two player games bind one gamepad per ship
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
