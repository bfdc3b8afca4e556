package components

import (
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects a scene asked for this frame
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
