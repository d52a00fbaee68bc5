package systems

import (
	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/automoto/skyfolio/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type NavOptions struct {
	Smooth bool
}

// GoToScreen scrolls to a screen. A smooth request eases the camera and
// snaps the player on arrival; otherwise both happen immediately. Unknown
// ids are ignored.
func GoToScreen(e *ecs.ECS, id string, opts NavOptions) bool {
	screens, ok := screensOf(e)
	if !ok {
		return false
	}
	camera, ok := cameraOf(e)
	if !ok {
		return false
	}
	screen, ok := screens.ByID(id)
	if !ok {
		log.Warn("unknown screen", "id", id)
		return false
	}

	desired := camera.Clamp(screen.YStart)
	log.Debug("navigate", "screen", id, "scroll", desired, "smooth", opts.Smooth)

	if opts.Smooth {
		camera.NavigateTo(desired, id)
		return true
	}
	camera.JumpTo(desired)
	SnapSpawnToScreen(e, id)
	return true
}

// SnapSpawnToScreen places the player on the first collidable platform that
// lies fully inside the screen band, or on the screen's fallback anchor, and
// plays the spawn effect. It does nothing when neither exists.
func SnapSpawnToScreen(e *ecs.ECS, id string) bool {
	screens, ok := screensOf(e)
	if !ok {
		return false
	}
	screen, ok := screens.ByID(id)
	if !ok {
		return false
	}
	entry, player, ok := playerOf(e)
	if !ok {
		return false
	}

	x, y, found := platformSpawnIn(e, screen, player)
	if !found {
		x, y, found = anchorSpawnFor(e, id, player)
	}
	if !found {
		log.Debug("no spawn point on screen", "screen", id)
		return false
	}

	player.RespawnAt(x, y)
	player.StartSpawnFx(components.SpawnFadePop, cfg.SpawnFx.SnapDurationMs)
	syncPlayerBody(entry, player)
	return true
}

func platformSpawnIn(e *ecs.ECS, screen *components.WorldScreen, player *components.PlayerData) (float64, float64, bool) {
	var x, y float64
	found := false
	top, bottom := screen.YStart, screen.YStart+screen.Height

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		if found {
			return
		}
		p := components.Platform.Get(entry)
		if !p.IsCollidable() || !p.Bounds().InsideBand(top, bottom) {
			return
		}
		x = p.X + p.W/2 - player.W/2
		y = p.Y - player.H
		found = true
	})
	return x, y, found
}

func anchorSpawnFor(e *ecs.ECS, id string, player *components.PlayerData) (float64, float64, bool) {
	level, ok := levelOf(e)
	if !ok {
		return 0, 0, false
	}
	anchor, ok := level.CurrentLevel.AnchorFor(id)
	if !ok {
		return 0, 0, false
	}

	switch anchor.Kind {
	case leveldata.AnchorPlanetTop:
		planet, ok := level.HomePlanet()
		if !ok {
			return 0, 0, false
		}
		return planet.X - player.W/2, planet.Y - planet.Radius - player.H, true
	default:
		return anchor.X - player.W/2, anchor.Y - player.H, true
	}
}
