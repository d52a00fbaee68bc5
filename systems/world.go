package systems

import (
	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/shared/gamemath"
	"github.com/automoto/skyfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// deltaMs is the elapsed time of the current frame.
func deltaMs(e *ecs.ECS) float64 {
	entry, ok := components.FrameClock.First(e.World)
	if !ok {
		return 0
	}
	return components.FrameClock.Get(entry).DeltaMs
}

func playerOf(e *ecs.ECS) (*donburi.Entry, *components.PlayerData, bool) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Player.Get(entry), true
}

func cameraOf(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

func levelOf(e *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(entry)
	return level, level.CurrentLevel != nil
}

func screensOf(e *ecs.ECS) (*components.ScreenManagerData, bool) {
	entry, ok := components.ScreenManager.First(e.World)
	if !ok {
		return nil, false
	}
	return components.ScreenManager.Get(entry), true
}

func scrollOf(e *ecs.ECS) float64 {
	if cam, ok := cameraOf(e); ok {
		return cam.ScrollY
	}
	return 0
}

// syncBody moves a resolv body onto the authoritative bounds.
func syncBody(o *resolv.Object, r gamemath.Rect) {
	o.X, o.Y = r.X, r.Y
	o.W, o.H = r.W, r.H
	o.Update()
}

// syncPlayerBody keeps the player's resolv body on the player box.
func syncPlayerBody(entry *donburi.Entry, player *components.PlayerData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	if body := components.Object.Get(entry); body.Object != nil {
		syncBody(body.Object, player.Bounds())
	}
}
