package systems

import (
	"github.com/automoto/skyfolio/events"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScreens resolves the current screen from the player's top edge and
// publishes ScreenChanged when it changes, and once for the first frame.
func UpdateScreens(e *ecs.ECS) {
	screens, ok := screensOf(e)
	if !ok {
		return
	}
	_, player, ok := playerOf(e)
	if !ok {
		return
	}

	changed := screens.Update(player.Y)
	if !changed && screens.Announced {
		return
	}
	screens.Announced = true
	events.ScreenChangedEvent.Publish(e.World, events.ScreenChanged{ID: screens.CurrentID()})
}
