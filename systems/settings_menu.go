package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// settingRow describes one line of the overlay. A row edits either a
// volume level or a flag; rows with neither are actions.
type settingRow struct {
	label    string
	level    func(s *components.SettingsMenuData) *int
	flag     func(s *components.SettingsMenuData) *bool
	on, off  string
	inverted bool // flag true shows the off label
}

var settingRows = [components.SettingsOptCount]settingRow{
	components.SettingsOptMusic: {
		label: "Music",
		level: func(s *components.SettingsMenuData) *int { return &s.MusicLevel },
	},
	components.SettingsOptSound: {
		label: "Sound FX",
		level: func(s *components.SettingsMenuData) *int { return &s.SoundLevel },
	},
	components.SettingsOptMute: {
		label: "Mute",
		flag:  func(s *components.SettingsMenuData) *bool { return &s.Muted },
		on:    "On",
		off:   "Off",
	},
	components.SettingsOptShake: {
		label:    "Screen Shake",
		flag:     func(s *components.SettingsMenuData) *bool { return &s.ShakeOff },
		on:       "On",
		off:      "Off",
		inverted: true,
	},
	components.SettingsOptFullscreen: {
		label: "Fullscreen",
		flag:  func(s *components.SettingsMenuData) *bool { return &s.Fullscreen },
		on:    "On",
		off:   "Off",
	},
	components.SettingsOptCoopInput: {
		label: "2 Player Input",
		flag:  func(s *components.SettingsMenuData) *bool { return &s.GamepadCoop },
		on:    cfg.SettingsMenu.CoopInputs[1],
		off:   cfg.SettingsMenu.CoopInputs[0],
	},
	components.SettingsOptControls: {label: "Controls  >"},
	components.SettingsOptBack:     {label: "< Back"},
}

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	s := GetOrCreateSettingsMenu(e)
	if !s.IsOpen {
		return
	}
	input := getOrCreateInput(e)

	if s.ShowingControls {
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			GetAction(input, cfg.ActionPause).JustPressed {
			s.ShowingControls = false
			PlaySFX(e, cfg.SoundMenuSelect)
		}
		return
	}

	n := int(components.SettingsOptCount)
	switch {
	case GetAction(input, cfg.ActionMenuUp).JustPressed:
		s.Selected = components.SettingsMenuOption((int(s.Selected) - 1 + n) % n)
		PlaySFX(e, cfg.SoundMenuNavigate)
	case GetAction(input, cfg.ActionMenuDown).JustPressed:
		s.Selected = components.SettingsMenuOption((int(s.Selected) + 1) % n)
		PlaySFX(e, cfg.SoundMenuNavigate)
	case GetAction(input, cfg.ActionMenuLeft).JustPressed:
		changeSetting(e, s, -1)
	case GetAction(input, cfg.ActionMenuRight).JustPressed:
		changeSetting(e, s, +1)
	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		selectSetting(e, s)
	case GetAction(input, cfg.ActionMenuBack).JustPressed,
		GetAction(input, cfg.ActionPause).JustPressed:
		closeSettings(e, s)
	}
}

// changeSetting steps the selected value. Changes take effect at once so the
// player hears the new volume; they are written to disk on close.
func changeSetting(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
	row := settingRows[s.Selected]
	switch {
	case row.level != nil:
		lv := row.level(s)
		next := min(max(*lv+dir, 0), cfg.SettingsMenu.VolumeLevels)
		if next == *lv {
			return
		}
		*lv = next
	case row.flag != nil:
		f := row.flag(s)
		*f = !*f
	default:
		return
	}
	s.Dirty = true
	setCurrentSettings(settingsFrom(s))
	if s.Selected == components.SettingsOptFullscreen {
		ebiten.SetFullscreen(s.Fullscreen)
	}
	// the sound row previews at the new level
	if s.Selected == components.SettingsOptSound {
		PlaySFX(e, cfg.SoundShoot)
	} else {
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

func selectSetting(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.Selected {
	case components.SettingsOptControls:
		s.ShowingControls = true
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptBack:
		closeSettings(e, s)
	default:
		if settingRows[s.Selected].flag != nil {
			changeSetting(e, s, +1)
		}
	}
}

func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	if s.Dirty {
		SaveCurrentSettings(s)
		s.Dirty = false
	}
}

// settingValue is the text shown right of a flag row
func settingValue(s *components.SettingsMenuData, row settingRow) string {
	if row.flag == nil {
		return ""
	}
	if *row.flag(s) != row.inverted {
		return row.on
	}
	return row.off
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	s := GetOrCreateSettingsMenu(e)
	if !s.IsOpen {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Menu.BackgroundColor, false)

	input := getOrCreateInput(e)
	if s.ShowingControls {
		drawControlsScreen(screen, input.LastInputMethod != components.InputKeyboard)
		return
	}

	drawCentered(screen, "SETTINGS", fonts.Title, 45, cfg.Menu.TitleColor)

	face := fonts.Bold.Get()
	mid := float64(w) / 2
	rowH := cfg.SettingsMenu.RowHeight
	top := (float64(h)-rowH*float64(components.SettingsOptCount))/2 + 20

	for i, row := range settingRows {
		opt := components.SettingsMenuOption(i)
		y := top + float64(i)*rowH
		c := cfg.Pause.TextColorNormal
		if opt == s.Selected {
			c = cfg.Pause.TextColorSelected
		}
		text.Draw(screen, row.label, face, int(mid+cfg.SettingsMenu.LabelX), int(y), c)

		valueX := mid + cfg.SettingsMenu.ValueX
		switch {
		case row.level != nil:
			drawLevelBar(screen, valueX, y, *row.level(s), s.Muted, c)
		case row.flag != nil:
			text.Draw(screen, settingValue(s, row), face, int(valueX), int(y), c)
		}
	}

	hint := "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
	if input.LastInputMethod != components.InputKeyboard {
		hint = "D-Pad: Navigate   Left/Right: Change   South: Select   East: Back"
	}
	drawHint(screen, hint, cfg.Pause.TextColorNormal)
}

// drawLevelBar draws one cell per volume level with the baseline at y.
// Muted levels are drawn hollow.
func drawLevelBar(screen *ebiten.Image, x, y float64, level int, muted bool, c color.Color) {
	cell := float32(cfg.SettingsMenu.BarCell)
	size := cell - 2
	for i := 0; i < cfg.SettingsMenu.VolumeLevels; i++ {
		cx := float32(x) + float32(i)*cell
		cy := float32(y) - size - 2
		if i < level && !muted {
			vector.FillRect(screen, cx, cy, size, size, c, false)
		} else {
			vector.StrokeRect(screen, cx, cy, size, size, 1, c, false)
		}
	}
}

// controlLine pairs an action with the input that triggers it
type controlLine struct {
	Action string
	Input  string
}

// keyLabel names a key the way the controls screen prints it
func keyLabel(k ebiten.Key) string {
	return strings.TrimPrefix(k.String(), "Arrow")
}

func keysLabel(keys []ebiten.Key) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}
	return strings.Join(labels, " / ")
}

// controlLines lists the controls from the live bindings, so the screen
// cannot drift from what the input system polls. The keyboard layout is
// listed per ship since two players share it.
func controlLines(gamepad bool) []controlLine {
	if gamepad {
		return []controlLine{
			{"Move", "Left Stick / D-Pad"},
			{"Fire", "South button"},
			{"Start / Pause", "Start"},
		}
	}
	var lines []controlLine
	for i := range cfg.ControlSchemeBindings {
		b := cfg.ControlSchemeBindings[cfg.SchemeFor(i)]
		lines = append(lines,
			controlLine{fmt.Sprintf("P%d Move", i+1), keysLabel(b[cfg.ActionMoveLeft]) + " / " + keysLabel(b[cfg.ActionMoveRight])},
			controlLine{fmt.Sprintf("P%d Fire", i+1), keysLabel(b[cfg.ActionFire])},
		)
	}
	return append(lines,
		controlLine{"Start", keysLabel(cfg.Input.Bindings[cfg.ActionStart].Keys)},
		controlLine{"Pause", keysLabel(cfg.Input.Bindings[cfg.ActionPause].Keys)},
	)
}

func drawControlsScreen(screen *ebiten.Image, gamepad bool) {
	face := fonts.Regular.Get()
	mid := screen.Bounds().Dx() / 2

	drawCentered(screen, "CONTROLS", fonts.Title, 45, cfg.Menu.TitleColor)
	for i, l := range controlLines(gamepad) {
		y := 90 + i*22
		text.Draw(screen, l.Action, face, mid-160, y, cfg.Pause.TextColorNormal)
		text.Draw(screen, l.Input, face, mid-20, y, cfg.Pause.TextColorSelected)
	}
	drawHint(screen, "Press any button to go back", cfg.Pause.TextColorNormal)
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component,
// filled from the settings in effect.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
		loadSettingsInto(components.SettingsMenu.Get(entry), CurrentSettings())
	}
	return components.SettingsMenu.Get(entry)
}

func loadSettingsInto(s *components.SettingsMenuData, v SavedSettings) {
	s.MusicLevel = levelOf(v.MusicVolume)
	s.SoundLevel = levelOf(v.SFXVolume)
	s.Muted = v.Muted
	s.ShakeOff = v.ShakeOff
	s.Fullscreen = v.Fullscreen
	s.GamepadCoop = v.GamepadCoop
}

// OpenSettings opens the overlay on its first row
func OpenSettings(e *ecs.ECS) {
	s := GetOrCreateSettingsMenu(e)
	loadSettingsInto(s, CurrentSettings())
	s.IsOpen = true
	s.Selected = components.SettingsOptMusic
	s.ShowingControls = false
	s.Dirty = false
}

// ControllerMode reports whether two player games bind a gamepad per ship
func ControllerMode(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).GamepadCoop
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}
