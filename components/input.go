package components

import (
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// Every keyboard and gamepad is merged; menus and single player games read it.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores one player's input in a shared keyboard game.
type PlayerInputData struct {
	CurrentInput   [cfg.ActionCount]bool
	PreviousInput  [cfg.ActionCount]bool
	BoundGamepadID *ebiten.GamepadID // nil polls ControlScheme instead
	ControlScheme  cfg.ControlSchemeID
	InputMethod    InputMethod
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
