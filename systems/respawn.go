package systems

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWorldBounds respawns a player that fell below the world.
func UpdateWorldBounds(e *ecs.ECS) {
	_, player, ok := playerOf(e)
	if !ok {
		return
	}
	level, ok := levelOf(e)
	if !ok || player.Y <= level.WorldHeight {
		return
	}

	log.Info("player left the world, respawning", "y", player.Y)
	RespawnOnPlanet(e)
}

// RespawnOnPlanet puts the player on top of the home planet and restores
// every platform.
func RespawnOnPlanet(e *ecs.ECS) bool {
	entry, player, ok := playerOf(e)
	if !ok {
		return false
	}
	level, ok := levelOf(e)
	if !ok {
		return false
	}
	planet, ok := level.HomePlanet()
	if !ok {
		return false
	}

	player.RespawnAt(planet.X-player.W/2, planet.Y-planet.Radius-player.H)
	syncPlayerBody(entry, player)
	ResetPlatforms(e)
	return true
}
