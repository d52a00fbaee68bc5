package factory

import (
	"github.com/automoto/skyfolio/archetypes"
	"github.com/automoto/skyfolio/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, viewHeight, worldHeight float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		ViewHeight:  viewHeight,
		WorldHeight: worldHeight,
	})
	return camera
}

// CreateClock adds the frame clock. A nil source uses wall time.
func CreateClock(ecs *ecs.ECS, source components.Clock) *donburi.Entry {
	if source == nil {
		source = components.SystemClock{}
	}
	clock := archetypes.Clock.Spawn(ecs)
	components.FrameClock.Set(clock, &components.ClockData{Source: source})
	return clock
}
