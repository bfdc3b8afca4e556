package components

import (
	"github.com/P1NHE4D/SpaceInvadersClient/core"
	"github.com/yohamta/donburi"
)

// SessionData owns the running simulation for the world scene (singleton)
type SessionData struct {
	Game      *core.Game
	PlayerIDs []string
	Multi     bool
	Started   bool

	Last     core.Report // events of the most recent tick
	EndTimer int         // frames left on the field after the game ends
	Ended    bool        // the end delay ran out and the result was handed on
	Err      error       // last error the simulation returned
}

var Session = donburi.NewComponentType[SessionData]()
