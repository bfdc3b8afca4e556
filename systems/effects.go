package systems

import (
	"math"

	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances screen shake and hit flashes
func UpdateEffects(ecs *ecs.ECS) {
	updateScreenShake(ecs)
	updateFlashEffects(ecs)
}

func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// The shake lives on the session entity for its whole life; a zero
// Duration means no shake is running.
func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration == 0 {
		return
	}
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

// ShakeOffset is the playfield offset for the current shake, decaying
// linearly over its duration.
func ShakeOffset(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return 0, 0
	}
	return shakeOffset(components.ScreenShake.Get(entry))
}

func shakeOffset(shake *components.ScreenShakeData) (float64, float64) {
	if shake.Duration <= 0 {
		return 0, 0
	}
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress
	return math.Sin(float64(shake.Elapsed)*1.1) * intensity,
		math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// TriggerScreenShake starts a shake, unless a stronger one is running or
// the player turned shake off.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if currentSettings.ShakeOff {
		return
	}
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}

	shake := components.ScreenShake.Get(entry)
	if shake.Duration > 0 && intensity <= shake.Intensity {
		return
	}
	*shake = components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	}
}

// TriggerFlash whitens the ship of playerID
func TriggerFlash(ecs *ecs.ECS, playerID string) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Player.Get(e).ID != playerID {
			return
		}
		components.Flash.SetValue(e, components.FlashData{
			Duration: cfg.Flash.Duration,
			Total:    cfg.Flash.Duration,
		})
	})
}

// flashAmount is the shader blend for a flash, fading out as it expires
func flashAmount(f *components.FlashData) float32 {
	if f.Duration <= 0 || f.Total <= 0 {
		return 0
	}
	return cfg.Flash.Strength * float32(f.Duration) / float32(f.Total)
}
