package systems

import (
	"github.com/automoto/skyfolio/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock samples the frame delta. Must run before every other system.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.FrameClock.First(e.World)
	if !ok {
		return
	}
	components.FrameClock.Get(entry).Tick()
}
