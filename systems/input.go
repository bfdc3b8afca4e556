package systems

import (
	"strings"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls every device into the global InputData.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if applyAnalogStick(&input.Current, gpID) {
			gamepadUsed = true
			activeGamepadID = gpID
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// applyAnalogStick merges the left stick of gpID into the directional actions.
// Up and down only drive menus; ships move on the horizontal axis alone.
func applyAnalogStick(actions *[cfg.ActionCount]bool, gpID ebiten.GamepadID) bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return false
	}
	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	used := false
	if horizontal < -deadzone {
		actions[cfg.ActionMoveLeft] = true
		actions[cfg.ActionMenuLeft] = true
		used = true
	}
	if horizontal > deadzone {
		actions[cfg.ActionMoveRight] = true
		actions[cfg.ActionMenuRight] = true
		used = true
	}
	if vertical < -deadzone {
		actions[cfg.ActionMenuUp] = true
		used = true
	}
	if vertical > deadzone {
		actions[cfg.ActionMenuDown] = true
		used = true
	}
	return used
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

func actionState(curr, prev bool) components.ActionState {
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdatePlayerInput polls each player entity's own scheme or gamepad.
// Must run after UpdateInput.
func UpdatePlayerInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		updatePlayerInputData(components.PlayerInput.Get(entry))
	})
}

func updatePlayerInputData(input *components.PlayerInputData) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}

	if input.BoundGamepadID != nil {
		pollGamepadForPlayer(input, *input.BoundGamepadID)
		return
	}

	if input.ControlScheme >= 0 && int(input.ControlScheme) < len(cfg.ControlSchemeBindings) {
		pollControlSchemeForPlayer(input, input.ControlScheme)
	}
}

func pollGamepadForPlayer(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, binding := range cfg.Input.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
				input.InputMethod = getControllerType(gpID)
			}
		}
	}
	if applyAnalogStick(&input.CurrentInput, gpID) {
		input.InputMethod = getControllerType(gpID)
	}
}

func pollControlSchemeForPlayer(input *components.PlayerInputData, scheme cfg.ControlSchemeID) {
	keyPressed := false
	for actionID, keys := range cfg.ControlSchemeBindings[scheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
				keyPressed = true
			}
		}
	}
	if keyPressed {
		input.InputMethod = components.InputKeyboard
	}
}

// GetPlayerAction returns the full ActionState for an action ID from PlayerInputData.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	return actionState(input.CurrentInput[id], input.PreviousInput[id])
}

// BindGamepads hands connected gamepads to players in seat order. Players
// without a gamepad keep their keyboard scheme.
func BindGamepads(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	var pads []ebiten.GamepadID
	for _, id := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			pads = append(pads, id)
		}
	}

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		in := components.PlayerInput.Get(entry)
		in.BoundGamepadID = nil
		if p.Index < len(pads) {
			id := pads[p.Index]
			in.BoundGamepadID = &id
		}
	})
}
