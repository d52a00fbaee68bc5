package systems

import (
	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlanets lands the player on planets and spins them. Runs before
// UpdatePlayer so a planet landing is visible to the player step.
func UpdatePlanets(e *ecs.ECS) {
	entry, player, ok := playerOf(e)
	if !ok {
		return
	}
	dt := deltaMs(e)

	tags.Planet.Each(e.World, func(pe *donburi.Entry) {
		components.Planet.Get(pe).Update(player, dt)
	})
	syncPlayerBody(entry, player)
}
