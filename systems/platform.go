package systems

import (
	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every platform state machine and its contact
// highlight.
func UpdatePlatforms(e *ecs.ECS) {
	dt := deltaMs(e)
	_, player, hasPlayer := playerOf(e)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		p.Update(dt)
		if hasPlayer {
			p.UpdateHighlight(player.Bounds(), dt)
		}
	})
}

// ResetPlatforms restores every platform to its spawn state.
func ResetPlatforms(e *ecs.ECS) {
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		components.Platform.Get(entry).ResetToSpawn()
	})
}
