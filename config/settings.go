package config

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	VolumeLevels int // a volume of 1.0 is this many levels
	RowHeight    float64
	LabelX       float64 // offset of the label column from screen centre
	ValueX       float64 // offset of the value column from screen centre
	BarCell      float64 // width of one volume bar cell
	CoopInputs   [2]string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeLevels: 10,
		RowHeight:    30,
		LabelX:       -150,
		ValueX:       20,
		BarCell:      9,
		CoopInputs:   [2]string{"Keyboard", "Gamepads"},
	}
}
