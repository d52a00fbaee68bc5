package factory

import (
	"github.com/automoto/skyfolio/archetypes"
	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	data := components.NewPlayer(x, y)
	components.Player.Set(player, data)

	obj := resolv.NewObject(x, y, data.W, data.H, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Animation.Set(player, components.NewAnimationData(
		cfg.PlayerAnimations,
		cfg.Player.FrameIntervalMs,
		cfg.Player.FrameWidth,
		cfg.Player.FrameHeight,
	))

	return player
}
