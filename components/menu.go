package components

import (
	"github.com/P1NHE4D/SpaceInvadersClient/assets/animations"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuSinglePlayer MainMenuOption = iota
	MainMenuMultiPlayer
	MainMenuHighScores
	MainMenuSettings
	MainMenuExit
)

// ParadeAlien is one alien marching across the bottom of the menu
type ParadeAlien struct {
	Sprite string
	X      float64
	Anim   *animations.Strip
}

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
	TitleTween     *gween.Tween
	TitleY         float32
	Parade         []ParadeAlien
}

var Menu = donburi.NewComponentType[MenuData]()
