package factory

import (
	"math/rand"

	"github.com/automoto/skyfolio/archetypes"
	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		WorldHeight:  level.WorldHeight(),
		Rng:          rng,
	})
	return entry
}
