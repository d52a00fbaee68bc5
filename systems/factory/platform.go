package factory

import (
	"math/rand"

	"github.com/automoto/skyfolio/archetypes"
	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/automoto/skyfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, spawn leveldata.PlatformSpawn, rng *rand.Rand) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	components.Platform.Set(platform, components.NewPlatform(spawn.Name, spawn.X, spawn.Y, spawn.W, spawn.H, rng))

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

func CreatePlanet(ecs *ecs.ECS, spawn leveldata.PlanetSpawn) *donburi.Entry {
	planet := archetypes.Planet.Spawn(ecs)
	components.Planet.Set(planet, components.NewPlanet(spawn.Name, spawn.X, spawn.Y, spawn.Radius))
	return planet
}
