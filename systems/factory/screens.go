package factory

import (
	"github.com/automoto/skyfolio/archetypes"
	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/automoto/skyfolio/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScreens builds the screen manager. Entering a screen applies its
// gravity and integration mode to the player.
func CreateScreens(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	screens := make([]components.WorldScreen, 0, len(level.Screens))
	for _, s := range level.Screens {
		screens = append(screens, components.WorldScreen{
			ID:      s.ID,
			Title:   s.Title,
			YStart:  s.YStart,
			Height:  s.Height,
			Gravity: s.Gravity,
			Precise: s.Precise,
			OnEnter: func() { enterScreen(ecs.World, s) },
			OnExit:  func() { log.Debug("exit screen", "id", s.ID) },
		})
	}

	entry := archetypes.Screens.Spawn(ecs)
	components.ScreenManager.Set(entry, components.NewScreenManager(screens))
	return entry
}

func enterScreen(w donburi.World, s leveldata.Screen) {
	log.Debug("enter screen", "id", s.ID, "gravity", s.Gravity, "precise", s.Precise)

	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	player.Gravity = cfg.Player.Gravity
	if s.Gravity > 0 {
		player.Gravity = s.Gravity
	}
	player.Precise = s.Precise || cfg.Physics.ForcePrecise
}
