package systems

import (
	"github.com/P1NHE4D/SpaceInvadersClient/archetypes"
	"github.com/P1NHE4D/SpaceInvadersClient/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// spawnTestSession adds a bare session and one player entity per id
func spawnTestSession(e *ecs.ECS, ids ...string) *components.SessionData {
	entry := archetypes.Session.Spawn(e)
	components.Session.SetValue(entry, components.SessionData{
		PlayerIDs: ids,
		Multi:     len(ids) > 1,
	})
	for i, id := range ids {
		p := archetypes.Player.Spawn(e)
		components.Player.SetValue(p, components.PlayerData{ID: id, Index: i})
	}
	return components.Session.Get(entry)
}
