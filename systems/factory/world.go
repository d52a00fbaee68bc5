package factory

import (
	"math/rand"

	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCell is the resolv grid cell size.
const spaceCell = 16

// spawnDrop lifts the first spawn a little above the planet surface.
const spawnDrop = 4

type WorldOptions struct {
	ViewHeight float64
	Clock      components.Clock
	Rng        *rand.Rand
}

// CreateWorld builds every entity of a level: level data, collision space,
// camera, clock, planets, platforms, bubbles, the player on the home planet
// and the screen manager.
func CreateWorld(ecs *ecs.ECS, level *leveldata.Level, opts WorldOptions) *donburi.Entry {
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	worldHeight := level.WorldHeight()

	CreateLevel(ecs, level, rng)
	CreateSpace(ecs, int(level.Width), int(worldHeight), spaceCell, spaceCell)
	CreateCamera(ecs, opts.ViewHeight, worldHeight)
	CreateClock(ecs, opts.Clock)

	for _, p := range level.Planets {
		CreatePlanet(ecs, p)
	}
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p, rng)
	}
	for _, b := range level.Bubbles {
		CreateBubble(ecs, b, level, rng)
	}

	home := level.Planets[0]
	player := CreatePlayer(ecs, 0, 0)
	data := components.Player.Get(player)
	data.RespawnAt(home.X-data.W/2, home.Y-home.Radius-data.H-spawnDrop)
	syncBody(player, data)

	CreateScreens(ecs, level)
	return player
}

func syncBody(entry *donburi.Entry, player *components.PlayerData) {
	body := components.Object.Get(entry)
	body.X, body.Y = player.X, player.Y
	body.Update()
}
