package systems

import (
	"github.com/automoto/skyfolio/events"
	"github.com/yohamta/donburi/ecs"
)

// PublishTelemetry reports the player position in screen space every frame.
func PublishTelemetry(e *ecs.ECS) {
	_, player, ok := playerOf(e)
	if !ok {
		return
	}
	events.PlayerTelemetryEvent.Publish(e.World, events.PlayerTelemetry{
		X:  player.X,
		Y:  player.Y - scrollOf(e),
		VX: player.VX,
		VY: player.VY,
	})
}
