package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// PlayerData links a player entity to a ship in the simulation
type PlayerData struct {
	ID    string // simulation player id
	Index int    // seat, 0 or 1
	Color color.RGBA
}

var Player = donburi.NewComponentType[PlayerData]()
