package factory

import (
	"github.com/automoto/skyfolio/archetypes"
	"github.com/automoto/skyfolio/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers a body with the world's collision space, if any.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Add(obj)
}
