package archetypes

import (
	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Flash,
	)
	Banner = newArchetype(
		tags.Banner,
		components.Banner,
		components.Tween,
	)
	Session = newArchetype(
		components.Session,
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
